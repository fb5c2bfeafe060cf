package types

import "testing"

func TestRegistryPredefinedTypesDistinct(t *testing.T) {
	r := NewRegistry()
	if r.Integer() == r.Float() {
		t.Fatal("expected distinct descriptors")
	}
	if r.Integer().Kind != Integer {
		t.Fatalf("got %v", r.Integer().Kind)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	a, ok := r.Lookup("INTEGER")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	b, _ := r.Lookup("integer")
	if a != b {
		t.Fatal("expected same pointer for case variants")
	}
}

func TestCompatibleUniversalIntegerWithInteger(t *testing.T) {
	r := NewRegistry()
	if !Compatible(r.UniversalInteger(), r.Integer()) {
		t.Fatal("expected universal_integer compatible with integer")
	}
	if Compatible(r.UniversalInteger(), r.Float()) {
		t.Fatal("did not expect universal_integer compatible with float")
	}
}

func TestCompatibleParentType(t *testing.T) {
	r := NewRegistry()
	derived := New(Integer, "Small_Int")
	derived.ParentType = r.Integer()
	if !Compatible(derived, r.Integer()) {
		t.Fatal("expected derived type compatible with parent")
	}
	if !Compatible(r.Integer(), derived) {
		t.Fatal("expected parent compatible with derived type")
	}
}

func TestFreezeRecordComputesOffsets(t *testing.T) {
	r := NewRegistry()
	rec := New(Record, "Point")
	rec.Components = []*Component{
		{Name: "X", Type: r.Integer()},
		{Name: "Y", Type: r.Integer()},
	}
	Freeze(rec)
	if rec.Components[0].Offset != 0 {
		t.Fatalf("got %d", rec.Components[0].Offset)
	}
	if rec.Components[1].Offset != 8 {
		t.Fatalf("got %d", rec.Components[1].Offset)
	}
	if rec.Size != 16 {
		t.Fatalf("got %d", rec.Size)
	}
}

func TestFreezeArrayComputesSize(t *testing.T) {
	r := NewRegistry()
	arr := New(Array, "Vector")
	arr.ElementType = r.Integer()
	arr.Low, arr.High = 1, 10
	Freeze(arr)
	if arr.Size != 80 {
		t.Fatalf("got %d", arr.Size)
	}
}

func TestFreezeEmptyArrayIsZeroSized(t *testing.T) {
	r := NewRegistry()
	arr := New(Array, "Empty")
	arr.ElementType = r.Integer()
	arr.Low, arr.High = 5, 1
	Freeze(arr)
	if arr.Size != 0 {
		t.Fatalf("got %d", arr.Size)
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	r := NewRegistry()
	rec := New(Record, "R")
	rec.Components = []*Component{{Name: "X", Type: r.Integer()}}
	Freeze(rec)
	size := rec.Size
	Freeze(rec)
	if rec.Size != size {
		t.Fatal("second freeze changed size")
	}
}
