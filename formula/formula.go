// Package formula implements the filter formula language understood by the
// table mock: comparisons between record fields and literals with the
// operators =, !=, <, <=, > and >=, combined with the binary AND and OR
// functions.
//
// A formula string is turned into a reusable predicate in two steps:
//
//  1. Parsing. The grammar is matched against the whole input and produces a
//     syntax tree with literals already decoded.
//  2. Compilation. One bottom-up pass over the tree builds value getters for
//     the operands, picks a comparison function per operator and combines
//     sub-predicates for AND/OR.
//
// The resulting Predicate holds only decoded literals and field names. It is
// immutable, never fails, and is safe for concurrent use.
package formula

// Record is the (id, fields) pair a predicate evaluates against. Only Fields
// is read; a missing field resolves to the null value. The JSON shape matches
// the records of the emulated API.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Predicate is the executable form of a formula. Evaluate is total: it
// returns a boolean for every record and never panics, no matter what the
// field values are.
type Predicate interface {
	Evaluate(record Record) bool
}

// Compile parses the formula and compiles it into a Predicate. It returns an
// *UnsupportedFormulaError when the formula does not match the supported
// grammar subset; there is no best-effort mode. The predicate may be cached
// and reused for any number of records.
func Compile(text string) (Predicate, error) {
	node, err := parseFormula(text)
	if err != nil {
		return nil, &UnsupportedFormulaError{Formula: text, Err: err}
	}
	return compileNode(node)
}
