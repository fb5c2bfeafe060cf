package ast

import (
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/bignum"
)

// --- primary-value family (spec §3) ---

// Identifier is a name reference, resolved to a *symtab.Symbol.
type Identifier struct {
	Base
	Name string
}

func (i *Identifier) exprNode()      {}
func (i *Identifier) String() string { return i.Name }

// IntegerLiteral is a decimal or based integer literal; Big is set only
// when the value overflows 64 bits.
type IntegerLiteral struct {
	Base
	Value int64
	Big   *bignum.Int
}

func (n *IntegerLiteral) exprNode() {}
func (n *IntegerLiteral) String() string {
	if n.Big != nil {
		return n.Big.String()
	}
	return itoa(n.Value)
}

// RealLiteral is a decimal or based float literal.
type RealLiteral struct {
	Base
	Value float64
}

func (n *RealLiteral) exprNode()      {}
func (n *RealLiteral) String() string { return ftoa(n.Value) }

// CharLiteral is a 'c' character literal; Value is the character's
// ordinal position.
type CharLiteral struct {
	Base
	Value int64
}

func (n *CharLiteral) exprNode()      {}
func (n *CharLiteral) String() string { return "'" + string(rune(n.Value)) + "'" }

// StringLiteral is a delimited string literal with escapes already
// decoded.
type StringLiteral struct {
	Base
	Value string
}

func (n *StringLiteral) exprNode()      {}
func (n *StringLiteral) String() string { return `"` + n.Value + `"` }

// NullLiteral is the NULL access-value literal.
type NullLiteral struct{ Base }

func (n *NullLiteral) exprNode()      {}
func (n *NullLiteral) String() string { return "null" }

// OthersChoice is the OTHERS keyword used in aggregates, case
// alternatives, and exception handler choice lists.
type OthersChoice struct{ Base }

func (n *OthersChoice) exprNode()      {}
func (n *OthersChoice) String() string { return "others" }

// --- compound-expression family (spec §3) ---

// BinaryExpr is a binary operator application. Op is the operator's token
// spelling ("+", "and then", ...).
type BinaryExpr struct {
	Base
	Op          string
	Left, Right Expr
}

func (n *BinaryExpr) exprNode() {}
func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

// UnaryExpr is a prefix operator application ("+", "-", "not", "abs").
type UnaryExpr struct {
	Base
	Op      string
	Operand Expr
}

func (n *UnaryExpr) exprNode()      {}
func (n *UnaryExpr) String() string { return "(" + n.Op + " " + n.Operand.String() + ")" }

// AttributeExpr is Prefix'Designator[(Args)].
type AttributeExpr struct {
	Base
	Prefix     Expr
	Designator string
	Args       []Expr
}

func (n *AttributeExpr) exprNode() {}
func (n *AttributeExpr) String() string {
	s := n.Prefix.String() + "'" + n.Designator
	if len(n.Args) > 0 {
		s += "(" + joinExprs(n.Args) + ")"
	}
	return s
}

// QualifiedExpr is Prefix'(Expr), a qualified expression.
type QualifiedExpr struct {
	Base
	Prefix Expr
	Value  Expr
}

func (n *QualifiedExpr) exprNode()      {}
func (n *QualifiedExpr) String() string { return n.Prefix.String() + "'(" + n.Value.String() + ")" }

// CallExpr is Callee(Args); resolved post-parse to an IndexedExpr if the
// callee turns out to name an array type (spec §4.5/§4.8).
type CallExpr struct {
	Base
	Callee Expr
	Args   []*Association
}

func (n *CallExpr) exprNode() {}
func (n *CallExpr) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// IndexedExpr is Prefix(Index, ...), produced either directly by the
// parser or by rewriting a CallExpr during resolution.
type IndexedExpr struct {
	Base
	Prefix  Expr
	Indices []Expr
}

func (n *IndexedExpr) exprNode() {}
func (n *IndexedExpr) String() string {
	return n.Prefix.String() + "(" + joinExprs(n.Indices) + ")"
}

// SliceExpr is Prefix(Low .. High).
type SliceExpr struct {
	Base
	Prefix    Expr
	Low, High Expr
}

func (n *SliceExpr) exprNode() {}
func (n *SliceExpr) String() string {
	return n.Prefix.String() + "(" + n.Low.String() + " .. " + n.High.String() + ")"
}

// SelectedExpr is Prefix.Selector.
type SelectedExpr struct {
	Base
	Prefix   Expr
	Selector string
}

func (n *SelectedExpr) exprNode()      {}
func (n *SelectedExpr) String() string { return n.Prefix.String() + "." + n.Selector }

// AllocatorExpr is "new Subtype['(Qualified)]".
type AllocatorExpr struct {
	Base
	SubtypeName string
	Qualifier   Expr // optional
}

func (n *AllocatorExpr) exprNode() {}
func (n *AllocatorExpr) String() string {
	if n.Qualifier != nil {
		return "new " + n.SubtypeName + "'(" + n.Qualifier.String() + ")"
	}
	return "new " + n.SubtypeName
}

// DereferenceExpr is Prefix.all.
type DereferenceExpr struct {
	Base
	Prefix Expr
}

func (n *DereferenceExpr) exprNode()      {}
func (n *DereferenceExpr) String() string { return n.Prefix.String() + ".all" }

// AggregateExpr is a parenthesized positional/named aggregate.
type AggregateExpr struct {
	Base
	Elements []*Association
}

func (n *AggregateExpr) exprNode() {}
func (n *AggregateExpr) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Association is one aggregate/call element: either positional (Choices
// nil) or named ("choice => Value").
type Association struct {
	Base
	Choices []Expr // nil for positional
	Value   Expr
}

func (n *Association) exprNode() {}
func (n *Association) String() string {
	if len(n.Choices) == 0 {
		return n.Value.String()
	}
	parts := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ") + " => " + n.Value.String()
}

// RangeExpr is Low .. High, used in constraints, for-loops, and choices.
type RangeExpr struct {
	Base
	Low, High Expr
}

func (n *RangeExpr) exprNode()      {}
func (n *RangeExpr) String() string { return n.Low.String() + " .. " + n.High.String() }

func joinExprs(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func ftoa(v float64) string {
	// minimal, stable formatting without pulling in strconv's full
	// feature set for a debug pretty-printer.
	neg := v < 0
	if neg {
		v = -v
	}
	intPart := int64(v)
	frac := v - float64(intPart)
	s := itoa(intPart) + "."
	for i := 0; i < 6 && frac > 0; i++ {
		frac *= 10
		d := int64(frac)
		s += itoa(d)
		frac -= float64(d)
	}
	if neg {
		s = "-" + s
	}
	return s
}
