package interp

import "github.com/AdaDoom3/Ada83-sub006/internal/types"

// isCharElem reports whether an array's element type is Character, the
// discriminator this evaluator uses to decide whether a freshly
// constructed array value is represented as KindString rather than
// KindArray (spec §3 keeps the two kinds distinct; this core folds
// character arrays into the string representation uniformly rather than
// only for the predeclared STRING type, which is the simpler rule and
// still satisfies every operation the two kinds need to support).
func isCharElem(elem *types.Type) bool {
	return elem != nil && elem.Kind == types.Character
}

// zeroValue returns the default value an object of type t has when
// elaborated without an explicit initial value.
func zeroValue(t *types.Type) Value {
	if t == nil {
		return None
	}
	switch t.Kind {
	case types.Integer, types.UniversalInteger, types.Boolean, types.Character, types.Enumeration:
		return NewInteger(0, t)
	case types.Float, types.UniversalReal, types.Fixed:
		return NewReal(0, t)
	case types.Array:
		return newArrayValue(t, t.Low, t.High)
	case types.Record:
		return zeroRecord(t)
	case types.Access:
		return Value{Kind: KindAccess, Type: t}
	default:
		return Value{Kind: KindNone, Type: t}
	}
}

// newArrayValue builds a fresh array (or string, for a character-element
// array) value with bounds [low, high] and every element at its own
// zero value.
func newArrayValue(t *types.Type, low, high int64) Value {
	n := high - low + 1
	if n < 0 {
		n = 0
	}
	if isCharElem(t.ElementType) {
		return Value{Kind: KindString, Type: t, Str: &StringObj{Bytes: make([]byte, n)}}
	}
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = zeroValue(t.ElementType)
	}
	return Value{Kind: KindArray, Type: t, Arr: &ArrayObj{Elements: elems, Low: low, High: high}}
}

func zeroRecord(t *types.Type) Value {
	var fields []RecordField
	add := func(name string, ct *types.Type) {
		cell := new(Value)
		*cell = zeroValue(ct)
		fields = append(fields, RecordField{Name: name, Cell: cell})
	}
	for _, c := range t.Discriminants {
		add(c.Name, c.Type)
	}
	for _, c := range t.Components {
		add(c.Name, c.Type)
	}
	return Value{Kind: KindRecord, Type: t, Rec: &RecordObj{Fields: fields}}
}

// copyValue returns an independent copy of v suitable for pass-by-value
// parameter binding and assignment: scalars copy trivially, but array,
// record and string values own mutable backing storage that must be
// duplicated so the copy and the original don't alias (spec §4.9: "a
// by-value parameter never aliases its actual").
func copyValue(v Value) Value {
	switch v.Kind {
	case KindString:
		if v.Str == nil {
			return v
		}
		buf := make([]byte, len(v.Str.Bytes))
		copy(buf, v.Str.Bytes)
		v.Str = &StringObj{Bytes: buf}
	case KindArray:
		if v.Arr == nil {
			return v
		}
		elems := make([]Value, len(v.Arr.Elements))
		for i, e := range v.Arr.Elements {
			elems[i] = copyValue(e)
		}
		v.Arr = &ArrayObj{Elements: elems, Low: v.Arr.Low, High: v.Arr.High}
	case KindRecord:
		if v.Rec == nil {
			return v
		}
		fields := make([]RecordField, len(v.Rec.Fields))
		for i, f := range v.Rec.Fields {
			cell := new(Value)
			*cell = copyValue(*f.Cell)
			fields[i] = RecordField{Name: f.Name, Cell: cell}
		}
		v.Rec = &RecordObj{Fields: fields}
	}
	return v
}

// findComponent locates a record value's field cell by name.
func findComponent(rec *RecordObj, name string) *Value {
	for i := range rec.Fields {
		if equalFold(rec.Fields[i].Name, name) {
			return rec.Fields[i].Cell
		}
	}
	return nil
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// constrained reports whether t carries a meaningful application-defined
// range rather than being one of the registry's unconstrained predefined
// scalar types, used to decide whether a value assigned to or converted
// into t needs a range check (spec §4.9: "assignment into a
// range-constrained target checks membership and raises
// constraint_error on violation"). Pointer identity against the
// registry's own predefined descriptors is exact, since every type is
// interned (spec §4.6).
func constrained(reg *types.Registry, t *types.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case types.Integer, types.Enumeration, types.Character, types.Boolean:
	default:
		return false
	}
	return t != reg.Integer() && t != reg.UniversalInteger() && t != reg.Character() && t != reg.Boolean()
}

// checkRange raises CONSTRAINT_ERROR when v's ordinal value falls
// outside t's declared bounds, for a constrained target type.
func checkRange(reg *types.Registry, t *types.Type, v Value) {
	if v.Kind != KindInteger || !constrained(reg, t) {
		return
	}
	if v.Int < t.Low || v.Int > t.High {
		raise(ConstraintError, "value %d out of range %d .. %d", v.Int, t.Low, t.High)
	}
}
