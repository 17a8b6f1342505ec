package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperator reports a comparison operator token the compiler has
	// no implementation for. The grammar's operator set is closed, so seeing
	// this error means the grammar and the compiler disagree.
	ErrUnknownOperator = errors.New("unknown comparison operator")

	// ErrUnknownFunction is the function-token counterpart of
	// ErrUnknownOperator.
	ErrUnknownFunction = errors.New("unknown formula function")
)

// UnsupportedFormulaError reports a formula that does not match the supported
// grammar subset, either because it is malformed or because it uses a feature
// of the real formula language the mock does not implement. It is a hard
// failure; the engine never falls back to a best-effort interpretation.
type UnsupportedFormulaError struct {
	Formula string
	Err     error
}

func (e *UnsupportedFormulaError) Error() string {
	return fmt.Sprintf("unsupported formula %q", e.Formula)
}

func (e *UnsupportedFormulaError) Unwrap() error { return e.Err }
