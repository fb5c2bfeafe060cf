package symtab

import (
	"testing"

	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

func TestDefineAndLookupCaseInsensitive(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	tab.Define("Count", KindVariable, intTy, nil, ident.Loc{})

	sym := tab.Lookup("COUNT")
	if sym == nil || sym.Name != "Count" {
		t.Fatalf("got %+v", sym)
	}
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	outer := tab.Define("X", KindVariable, intTy, nil, ident.Loc{})

	tab.PushScope()
	inner := tab.Define("X", KindVariable, intTy, nil, ident.Loc{})
	if got := tab.Lookup("X"); got != inner {
		t.Fatalf("expected inner symbol, got %+v", got)
	}

	tab.PopScope()
	if got := tab.Lookup("X"); got != outer {
		t.Fatalf("expected outer symbol after pop, got %+v", got)
	}
}

func TestUseVisibilityIsIdempotent(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	pkg := tab.Define("Pkg", KindPackage, nil, nil, ident.Loc{})
	visible := tab.Define("Helper", KindProcedure, intTy, nil, ident.Loc{})
	visible.Visibility = 0 // not directly visible until used

	tab.Use(pkg, []*Symbol{visible})
	tab.Use(pkg, []*Symbol{visible})
	if visible.Visibility&UseVisible == 0 {
		t.Fatal("expected use-visible bit set")
	}
}

func TestOverloadResolutionPrefersArityMatch(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	floatTy := types.New(types.Float, "float")

	one := tab.Define("F", KindFunction, nil, nil, ident.Loc{})
	two := tab.Define("F", KindFunction, nil, nil, ident.Loc{})

	candidates := []Candidate{
		{Symbol: one, ParamTypes: []*types.Type{intTy}, ReturnType: intTy},
		{Symbol: two, ParamTypes: []*types.Type{intTy, floatTy}, ReturnType: intTy},
	}

	got := Resolve(candidates, []*types.Type{intTy, floatTy}, intTy)
	if got != two {
		t.Fatalf("expected two-arg overload, got %+v", got)
	}
}

func TestOverloadResolutionExcludesZeroScore(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	floatTy := types.New(types.Float, "float")
	f := tab.Define("F", KindFunction, nil, nil, ident.Loc{})

	candidates := []Candidate{
		{Symbol: f, ParamTypes: []*types.Type{floatTy}, ReturnType: floatTy},
	}
	got := Resolve(candidates, []*types.Type{intTy}, floatTy)
	if got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestLookupAllReturnsEveryHomograph(t *testing.T) {
	tab := New()
	intTy := types.New(types.Integer, "integer")
	one := tab.Define("F", KindFunction, intTy, nil, ident.Loc{})
	two := tab.Define("F", KindFunction, intTy, nil, ident.Loc{})

	got := tab.LookupAll("f")
	if len(got) != 2 {
		t.Fatalf("expected 2 homographs, got %d", len(got))
	}
	if got[0] != two || got[1] != one {
		t.Fatalf("expected most-recently-defined first, got %+v", got)
	}
}

func TestExceptionsTracksDeclarationOrder(t *testing.T) {
	tab := New()
	a := tab.Define("E1", KindException, nil, nil, ident.Loc{})
	b := tab.Define("E2", KindException, nil, nil, ident.Loc{})
	got := tab.Exceptions()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("got %+v", got)
	}
}
