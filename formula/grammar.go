package formula

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Token rules, tried in order. AND and OR must come before Field so they lex
// as function tokens; in operand position the grammar still accepts them as
// field names. Blank is a real token: the grammar spells out exactly where
// whitespace may appear, so it is not elided.
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Function", `AND\b|OR\b`},
	{"Field", `[A-Za-z_]\w*`},
	{"Number", `-?[0-9]+(\.[0-9]+)?`},
	{"String", `"(\\.|[^"\\])*"`},
	{"Operator", `!=|<=|>=|=|<|>`},
	{"Punct", `[(),]`},
	{"Blank", `\s+`},
})

var formulaParser = participle.MustBuild[formulaExpression](
	participle.Lexer(formulaLexer),
	participle.UseLookahead(2),
)

// Parse structs. The comparison branch is tried first, so AND/OR followed by
// an operator is read as a comparison against a field of that name rather
// than a malformed function call.
type formulaExpression struct {
	Comparison *formulaComparison `parser:"@@"`
	Call       *formulaCall       `parser:"| @@"`
}

type formulaComparison struct {
	Left  *formulaOperand `parser:"@@"`
	Op    string          `parser:"Blank? @Operator Blank?"`
	Right *formulaOperand `parser:"@@"`
}

type formulaCall struct {
	Func  string             `parser:"@Function '('"`
	Left  *formulaExpression `parser:"@@ ','"`
	Right *formulaExpression `parser:"Blank? @@ ')'"`
}

type formulaOperand struct {
	Number *float64 `parser:"@Number"`
	String *string  `parser:"| @String"`
	Field  *string  `parser:"| @Field | @Function"`
}

// parseFormula matches the whole input against the grammar and returns the
// syntax tree with literals decoded.
func parseFormula(text string) (exprNode, error) {
	parsed, err := formulaParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return parsed.toNode()
}

func (e *formulaExpression) toNode() (exprNode, error) {
	if e.Comparison != nil {
		return e.Comparison.toNode()
	}
	return e.Call.toNode()
}

func (c *formulaComparison) toNode() (exprNode, error) {
	left, err := c.Left.toOperand()
	if err != nil {
		return nil, err
	}
	right, err := c.Right.toOperand()
	if err != nil {
		return nil, err
	}
	return comparisonNode{left: left, op: c.Op, right: right}, nil
}

func (c *formulaCall) toNode() (exprNode, error) {
	left, err := c.Left.toNode()
	if err != nil {
		return nil, err
	}
	right, err := c.Right.toNode()
	if err != nil {
		return nil, err
	}
	return callNode{fn: c.Func, left: left, right: right}, nil
}

func (o *formulaOperand) toOperand() (operandNode, error) {
	switch {
	case o.Number != nil:
		return numberNode{value: *o.Number}, nil
	case o.String != nil:
		// The token is a quoted JSON string including its escapes; decode it
		// the way the emulated API does.
		var s string
		if err := json.Unmarshal([]byte(*o.String), &s); err != nil {
			return nil, fmt.Errorf("string literal %s: %w", *o.String, err)
		}
		return stringNode{value: s}, nil
	default:
		return fieldRefNode{name: *o.Field}, nil
	}
}

// Syntax tree. Immutable once built; discarded after compilation.
type exprNode interface{ isExpr() }

type comparisonNode struct {
	left  operandNode
	op    string
	right operandNode
}

type callNode struct {
	fn    string
	left  exprNode
	right exprNode
}

func (comparisonNode) isExpr() {}
func (callNode) isExpr()       {}

type operandNode interface{ isOperand() }

type fieldRefNode struct{ name string }
type numberNode struct{ value float64 }
type stringNode struct{ value string }

func (fieldRefNode) isOperand() {}
func (numberNode) isOperand()   {}
func (stringNode) isOperand()   {}
