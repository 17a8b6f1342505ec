package airtablemock

import (
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"

	"github.com/bayesimpact/airtablemock/formula"
)

// Record is one row of a table: the generated ID plus the user fields.
type Record = formula.Record

const (
	// idSpace bounds the random part of generated record IDs.
	idSpace = int64(1) << 40

	// idAttempts is how many colliding draws are retried before giving up.
	idAttempts = 30
)

// table keeps records in insertion order; updating one keeps its position.
type table struct {
	order  []string
	fields map[string]map[string]any
}

func newTable() *table {
	return &table{fields: make(map[string]map[string]any)}
}

func (t *table) insert(id string, fields map[string]any) {
	if _, ok := t.fields[id]; !ok {
		t.order = append(t.order, id)
	}
	t.fields[id] = fields
}

func (t *table) remove(id string) {
	delete(t.fields, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// freshID draws random IDs until one is free in this table.
func (t *table) freshID() (string, error) {
	for attempt := 0; attempt < idAttempts; attempt++ {
		id := fmt.Sprintf("rec%x", idRandom.Int63n(idSpace))
		if _, taken := t.fields[id]; !taken {
			return id, nil
		}
	}
	return "", ErrNoFreeRecordID
}

// records returns a copy of every record, in insertion order.
func (t *table) records() []Record {
	records := make([]Record, 0, len(t.order))
	for _, id := range t.order {
		records = append(records, Record{ID: id, Fields: cloneFields(t.fields[id])})
	}
	return records
}

// cloneFields copies in both directions between callers and the registry, so
// nobody mutates stored state through a shared map. A nil map becomes an
// empty one; stored field sets are always writable.
func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return maps.Clone(fields)
}

type base struct {
	tables map[string]*table
	views  map[string]map[string]formula.Predicate
}

func newBase() *base {
	return &base{
		tables: make(map[string]*table),
		views:  make(map[string]map[string]formula.Predicate),
	}
}

// registry is the process-global store shared by every client, like the
// single account all real clients with the same credentials talk to.
type registry struct {
	mu    sync.Mutex
	bases map[string]*base
}

var store = &registry{bases: make(map[string]*base)}

// lookupTable returns the table or the 404 the real service would send.
// The caller must hold r.mu.
func (r *registry) lookupTable(baseID, tableName string) (*table, error) {
	if b, ok := r.bases[baseID]; ok {
		if t, ok := b.tables[tableName]; ok {
			return t, nil
		}
	}
	logger.Warn(
		"the table does not exist yet, create it with CreateEmptyTable or by creating a first record",
		zap.String("base", baseID), zap.String("table", tableName))
	return nil, errTableNotFound(baseID, tableName)
}

// ensureTable returns the table, creating the base and the table as needed.
// The caller must hold r.mu.
func (r *registry) ensureTable(baseID, tableName string) *table {
	b, ok := r.bases[baseID]
	if !ok {
		b = newBase()
		r.bases[baseID] = b
	}
	t, ok := b.tables[tableName]
	if !ok {
		t = newTable()
		b.tables[tableName] = t
	}
	return t
}

// anyViews reports whether a view was created in any base since the last
// Clear. The caller must hold r.mu.
func (r *registry) anyViews() bool {
	for _, b := range r.bases {
		for _, views := range b.views {
			if len(views) > 0 {
				return true
			}
		}
	}
	return false
}

// viewPredicate resolves a view name. While no view exists anywhere the name
// is ignored with a warning, so code under test may select views the
// fixtures never defined; once there are views, an unknown name is a 422
// like on the real service. The caller must hold r.mu.
func (r *registry) viewPredicate(baseID, tableName, viewName string) (formula.Predicate, error) {
	if !r.anyViews() {
		logger.Warn("The view field is ignored as no views were created in airtablemock.")
		return nil, nil
	}
	if b, ok := r.bases[baseID]; ok {
		if predicate, ok := b.views[tableName][viewName]; ok {
			return predicate, nil
		}
	}
	return nil, errUnknownView(baseID, tableName, viewName)
}

// matching returns the records that pass the named view and the formula, in
// insertion order. Filtering happens before any pagination.
func (r *registry) matching(baseID, tableName, viewName, formulaText string) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupTable(baseID, tableName)
	if err != nil {
		return nil, err
	}

	var predicates []formula.Predicate
	if viewName != "" {
		viewPred, err := r.viewPredicate(baseID, tableName, viewName)
		if err != nil {
			return nil, err
		}
		if viewPred != nil {
			predicates = append(predicates, viewPred)
		}
	}
	if formulaText != "" {
		predicate, err := compiledFormula(formulaText)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, predicate)
	}

	var matched []Record
	for _, record := range t.records() {
		keep := true
		for _, predicate := range predicates {
			if !predicate.Evaluate(record) {
				keep = false
				break
			}
		}
		if keep {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (r *registry) getRecord(baseID, tableName, recordID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupTable(baseID, tableName)
	if err != nil {
		return Record{}, err
	}
	fields, ok := t.fields[recordID]
	if !ok {
		return Record{}, errRecordNotFound(baseID, tableName, recordID)
	}
	return Record{ID: recordID, Fields: cloneFields(fields)}, nil
}

// createRecord stores the fields under a fresh random ID, creating the table
// on the fly like the real service does on a first insert.
func (r *registry) createRecord(baseID, tableName string, fields map[string]any) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.ensureTable(baseID, tableName)
	id, err := t.freshID()
	if err != nil {
		return Record{}, err
	}
	t.insert(id, cloneFields(fields))
	return Record{ID: id, Fields: cloneFields(fields)}, nil
}

func (r *registry) updateRecord(baseID, tableName, recordID string, fields map[string]any, replace bool) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupTable(baseID, tableName)
	if err != nil {
		return Record{}, err
	}
	current, ok := t.fields[recordID]
	if !ok {
		return Record{}, errRecordNotFound(baseID, tableName, recordID)
	}
	if replace {
		current = cloneFields(fields)
		t.fields[recordID] = current
	} else {
		for key, value := range fields {
			current[key] = value
		}
	}
	return Record{ID: recordID, Fields: cloneFields(current)}, nil
}

func (r *registry) deleteRecord(baseID, tableName, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupTable(baseID, tableName)
	if err != nil {
		return err
	}
	if _, ok := t.fields[recordID]; !ok {
		return errRecordNotFound(baseID, tableName, recordID)
	}
	t.remove(recordID)
	return nil
}

func (r *registry) createEmptyTable(baseID, tableName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bases[baseID]
	if !ok {
		b = newBase()
		r.bases[baseID] = b
	}
	if _, exists := b.tables[tableName]; exists {
		return fmt.Errorf("table %q in base %q: %w", tableName, baseID, ErrTableExists)
	}
	b.tables[tableName] = newTable()
	return nil
}

// createView compiles the formula once and saves the predicate under the
// view name. The table must exist already.
func (r *registry) createView(baseID, tableName, viewName, formulaText string) error {
	predicate, err := compiledFormula(formulaText)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookupTable(baseID, tableName); err != nil {
		return err
	}
	b := r.bases[baseID]
	views, ok := b.views[tableName]
	if !ok {
		views = make(map[string]formula.Predicate)
		b.views[tableName] = views
	}
	views[viewName] = predicate
	return nil
}

func (r *registry) clearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.bases)
}

// CreateEmptyTable registers an empty table, so that reading it succeeds
// with no records instead of failing with a 404. It fails with
// ErrTableExists when the table is already there.
func CreateEmptyTable(baseID, tableName string) error {
	return store.createEmptyTable(baseID, tableName)
}

// CreateView saves a named, formula-filtered view of a table for the whole
// process; any client of the base can then select it by name. Most callers
// use the Client.CreateView shorthand instead.
func CreateView(baseID, tableName, viewName, formulaText string) error {
	return store.createView(baseID, tableName, viewName, formulaText)
}

// Clear drops every base, table, view and record. Existing clients stay
// valid; they simply observe an empty account again. Test suites call this
// between cases.
func Clear() {
	store.clearAll()
}
