// Package interp implements the core's tree-walking evaluator: call
// frames, control-flow unwinding, and exception propagation over an
// already-resolved AST (§4.9). A node-kind dispatch evaluates
// expressions and statements, a bounded call stack backs subprogram
// calls, and a raise/handler mechanism implements exception
// propagation, all built around a single tagged Value struct per
// SPEC_FULL.md §5's literal reading of §3 ("a tagged variant with kind
// and the associated type descriptor") rather than a Value-interface-
// per-kind design.
package interp

import (
	"strconv"

	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// Kind tags which variant of runtime value a Value holds (spec §3
// "Runtime value").
type Kind int

const (
	KindNone Kind = iota
	KindInteger
	KindReal
	KindAccess
	KindArray
	KindRecord
	KindString
	KindFile
	KindTask
	KindException
)

// StringObj is a mutable byte buffer indexed from 1, shared by every
// Value copy that references it (spec §3: "String carries a byte slice
// indexed starting at 1").
type StringObj struct {
	Bytes []byte
}

// ArrayObj is an element buffer plus the bounds it was built with (§3
// "Array"). Copies of a Value sharing the same *ArrayObj observe each
// other's element writes, matching Ada's array reference semantics.
type ArrayObj struct {
	Elements  []Value
	Low, High int64
}

// RecordField is one (component-name, value-cell) pair (spec §3
// "Record"). Cell is a pointer so component writes are visible through
// every Value that shares this *RecordObj.
type RecordField struct {
	Name string
	Cell *Value
}

// RecordObj is a record value's backing storage: an ordered vector of
// named cells.
type RecordObj struct {
	Fields []RecordField
}

// Value is the core's tagged runtime value (spec §3). Integer carries
// every ordinal-encoded kind (boolean, character, enumeration) as a
// 64-bit signed value, per spec: "Integer kind carries a 64-bit signed
// value and is used for boolean, character, and enumeration values
// (encoding is their ordinal position)."
type Value struct {
	Kind Kind
	Type *types.Type

	Int  int64
	Real float64

	Str *StringObj
	Arr *ArrayObj
	Rec *RecordObj
	Ref *Value // access value's designated cell; nil means null

	ExcName string // set when Kind == KindException
	ExcMsg  string
}

// None is the zero/no-value result, used for procedure calls and
// statements that don't produce a value.
var None = Value{Kind: KindNone}

// NewInteger wraps an ordinal-encoded value (integer, boolean,
// character, or enumeration literal) of type t.
func NewInteger(v int64, t *types.Type) Value {
	return Value{Kind: KindInteger, Type: t, Int: v}
}

// NewReal wraps an IEEE-754 double of type t.
func NewReal(v float64, t *types.Type) Value {
	return Value{Kind: KindReal, Type: t, Real: v}
}

// NewString wraps a fresh, independently-owned string buffer.
func NewString(s string, t *types.Type) Value {
	return Value{Kind: KindString, Type: t, Str: &StringObj{Bytes: []byte(s)}}
}

// Bool constructs a boolean-typed Value from a Go bool, 1 for true and 0
// for false per the ordinal encoding.
func Bool(b bool, boolType *types.Type) Value {
	if b {
		return NewInteger(1, boolType)
	}
	return NewInteger(0, boolType)
}

// Truthy reports whether v (expected boolean-typed) represents true.
func Truthy(v Value) bool { return v.Int != 0 }

// Text renders v as the text TEXT_IO-style output procedures would write:
// a decimal image for integer/real values (boolean, character and
// enumeration values are integers here, so they print as their ordinal;
// spec §9's open question on enumeration IMAGE: this core returns the
// ordinal, not the literal name), the buffer's raw bytes for a string,
// the characters of an array whose element type is CHARACTER, and the
// empty string for any other value.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		if v.Str == nil {
			return ""
		}
		return string(v.Str.Bytes)
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindReal:
		return strconv.FormatFloat(v.Real, 'f', -1, 64)
	case KindArray:
		if v.Arr != nil && v.Type != nil && v.Type.ElementType != nil && v.Type.ElementType.Kind == types.Character {
			buf := make([]byte, len(v.Arr.Elements))
			for i, e := range v.Arr.Elements {
				buf[i] = byte(e.Int)
			}
			return string(buf)
		}
	}
	return ""
}
