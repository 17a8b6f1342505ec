package formula

import "fmt"

// valueGetter resolves one operand against a record.
type valueGetter func(Record) any

// compileNode lowers a syntax tree into a predicate in a single bottom-up
// pass. The returned predicate re-reads nothing from the tree.
func compileNode(node exprNode) (Predicate, error) {
	switch n := node.(type) {
	case comparisonNode:
		left, err := operandGetter(n.left)
		if err != nil {
			return nil, err
		}
		right, err := operandGetter(n.right)
		if err != nil {
			return nil, err
		}
		compare, err := comparisonFor(n.op)
		if err != nil {
			return nil, err
		}
		return comparisonPredicate{left: left, right: right, compare: compare}, nil
	case callNode:
		left, err := compileNode(n.left)
		if err != nil {
			return nil, err
		}
		right, err := compileNode(n.right)
		if err != nil {
			return nil, err
		}
		switch n.fn {
		case "AND":
			return andPredicate{left: left, right: right}, nil
		case "OR":
			return orPredicate{left: left, right: right}, nil
		}
		return nil, fmt.Errorf("%q: %w", n.fn, ErrUnknownFunction)
	}
	return nil, fmt.Errorf("unexpected syntax node %T", node)
}

// operandGetter builds the getter for one operand: field references read the
// record at evaluation time, literals return the value decoded at parse time.
func operandGetter(op operandNode) (valueGetter, error) {
	switch n := op.(type) {
	case fieldRefNode:
		return func(r Record) any { return r.Fields[n.name] }, nil
	case numberNode:
		return func(Record) any { return n.value }, nil
	case stringNode:
		return func(Record) any { return n.value }, nil
	}
	return nil, fmt.Errorf("unexpected operand node %T", op)
}

// comparisonFor maps an operator token to its comparison function. The
// grammar's operator set is closed, so the fallthrough error signals a
// grammar/compiler mismatch, not bad input.
func comparisonFor(op string) (func(a, b any) bool, error) {
	switch op {
	case "=":
		return valueEqual, nil
	case "!=":
		return func(a, b any) bool { return !valueEqual(a, b) }, nil
	case "<":
		return valueLess, nil
	case "<=":
		return func(a, b any) bool { return valueLess(a, b) || valueEqual(a, b) }, nil
	case ">":
		return func(a, b any) bool { return valueLess(b, a) }, nil
	case ">=":
		return func(a, b any) bool { return valueLess(b, a) || valueEqual(a, b) }, nil
	}
	return nil, fmt.Errorf("%q: %w", op, ErrUnknownOperator)
}

type comparisonPredicate struct {
	left    valueGetter
	right   valueGetter
	compare func(a, b any) bool
}

func (p comparisonPredicate) Evaluate(record Record) bool {
	return p.compare(p.left(record), p.right(record))
}

type andPredicate struct{ left, right Predicate }

func (p andPredicate) Evaluate(record Record) bool {
	return p.left.Evaluate(record) && p.right.Evaluate(record)
}

type orPredicate struct{ left, right Predicate }

func (p orPredicate) Evaluate(record Record) bool {
	return p.left.Evaluate(record) || p.right.Evaluate(record)
}
