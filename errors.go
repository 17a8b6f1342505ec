package airtablemock

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	// ErrTableExists is returned by CreateEmptyTable when the table is
	// already registered.
	ErrTableExists = errors.New("table already exists")

	// ErrNoFreeRecordID is returned when 30 random draws in a row produced
	// record IDs that are all taken. With a realistic table size this only
	// happens when the random source was replaced by a constant one.
	ErrNoFreeRecordID = errors.New("could not generate a new random record ID")
)

// RequestError is the error the emulated HTTP API raises, formatted the way
// the real client libraries format theirs so that tests matching on the
// message keep passing against the mock.
type RequestError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%d Client Error: %s for url: %s", e.StatusCode, e.Status, e.URL)
}

// tableURL rebuilds the URL the real service would serve this table under.
func tableURL(baseID, tableName string) string {
	return fmt.Sprintf("%s/%s/%s", GetConfig().APIEndpoint, baseID, tableName)
}

func errTableNotFound(baseID, tableName string) error {
	return &RequestError{
		StatusCode: http.StatusNotFound,
		Status:     http.StatusText(http.StatusNotFound),
		URL:        tableURL(baseID, tableName),
	}
}

func errRecordNotFound(baseID, tableName, recordID string) error {
	return &RequestError{
		StatusCode: http.StatusNotFound,
		Status:     http.StatusText(http.StatusNotFound),
		URL:        tableURL(baseID, tableName) + "/" + recordID,
	}
}

// errUnknownView uses path escaping, not query escaping: the real service
// shows a space as %20 in the reported URL.
func errUnknownView(baseID, tableName, viewName string) error {
	return &RequestError{
		StatusCode: http.StatusUnprocessableEntity,
		Status:     http.StatusText(http.StatusUnprocessableEntity),
		URL:        tableURL(baseID, tableName) + "?view=" + url.PathEscape(viewName),
	}
}
