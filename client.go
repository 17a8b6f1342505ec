package airtablemock

import (
	"go.uber.org/zap"
)

// maxPageSize is the page cap of the real service; it is also the default
// when no limit is given.
const maxPageSize = 100

// Client emulates one base of the real service. It holds no data of its
// own: every client reads and writes the process-global registry, so two
// clients with the same base ID observe the same tables.
type Client struct {
	BaseID string
	APIKey string
}

// New returns a client for one base. The API key is accepted and ignored,
// so production constructor calls work unchanged.
func New(baseID, apiKey string) *Client {
	return &Client{BaseID: baseID, APIKey: apiKey}
}

// ListOptions control one List call.
type ListOptions struct {
	// Limit caps the page size. Zero and anything above 100 become 100,
	// the server-side maximum.
	Limit int

	// Offset skips that many records. It applies after filtering; feeding
	// back RecordPage.Offset walks the filtered records without gaps.
	Offset int

	// FilterByFormula keeps only records matching the formula.
	FilterByFormula string

	// View filters through a view created with CreateView.
	View string
}

// RecordPage is one page of records. Offset is the start of the next page
// and is only set when more filtered records remain past this one.
type RecordPage struct {
	Records []Record `json:"records"`
	Offset  int      `json:"offset,omitempty"`
}

// List returns one page of the table's records in insertion order, after
// view and formula filtering.
func (c *Client) List(tableName string, opts ListOptions) (*RecordPage, error) {
	matched, err := store.matching(c.BaseID, tableName, opts.View, opts.FilterByFormula)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := &RecordPage{Records: matched[offset:end]}
	if page.Records == nil {
		page.Records = []Record{}
	}
	if end < len(matched) {
		page.Offset = end
	}
	return page, nil
}

// Get returns a single record by ID.
func (c *Client) Get(tableName, recordID string) (Record, error) {
	return store.getRecord(c.BaseID, tableName, recordID)
}

// IterateOptions control one Iterate call.
type IterateOptions struct {
	// BatchSize is accepted for signature compatibility and ignored: the
	// real client uses it to size its HTTP pages, and the mock has none.
	BatchSize int

	FilterByFormula string
	View            string
}

// Iterate returns every matching record of the table, without pagination.
func (c *Client) Iterate(tableName string, opts IterateOptions) ([]Record, error) {
	if opts.BatchSize != 0 {
		logger.Info("the batch size is ignored in airtablemock", zap.Int("batch_size", opts.BatchSize))
	}
	return store.matching(c.BaseID, tableName, opts.View, opts.FilterByFormula)
}

// Create stores the fields as a new record under a fresh random ID and
// returns the stored record. The table is created on the fly if needed.
func (c *Client) Create(tableName string, fields map[string]any) (Record, error) {
	return store.createRecord(c.BaseID, tableName, fields)
}

// Update merges the given fields into the record, keeping the others.
func (c *Client) Update(tableName, recordID string, fields map[string]any) (Record, error) {
	return store.updateRecord(c.BaseID, tableName, recordID, fields, false)
}

// UpdateAll replaces the whole field set of the record.
func (c *Client) UpdateAll(tableName, recordID string, fields map[string]any) (Record, error) {
	return store.updateRecord(c.BaseID, tableName, recordID, fields, true)
}

// DeleteResult mirrors the payload the real service sends back on delete.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *Client) Delete(tableName, recordID string) (DeleteResult, error) {
	if err := store.deleteRecord(c.BaseID, tableName, recordID); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{ID: recordID, Deleted: true}, nil
}

// CreateView saves a named view of the table; List and Iterate calls can
// then filter through it with the View option.
func (c *Client) CreateView(tableName, viewName, formulaText string) error {
	return store.createView(c.BaseID, tableName, viewName, formulaText)
}
