package ir

import (
	"bytes"
	"testing"

	"github.com/AdaDoom3/Ada83-sub006/internal/parser"
	"github.com/AdaDoom3/Ada83-sub006/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
)

func emitSource(t *testing.T, source string) string {
	t.Helper()
	cu := parser.Parse(source, "p.ada")
	r := semantic.New(source, "p.ada")
	r.Analyze(cu)

	var buf bytes.Buffer
	if err := Emit(&buf, cu); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	return buf.String()
}

// TestEmitSumLoop snapshots IR for scenario #2 (spec §8): a FOR loop
// accumulating a running sum.
func TestEmitSumLoop(t *testing.T) {
	src := `procedure P is X : INTEGER := 0; begin for I in 1..5 loop X := X + I; end loop; PUT(X'IMAGE); end P;`
	snaps.MatchSnapshot(t, "sum_loop", emitSource(t, src))
}

// TestEmitRecursiveFactorial snapshots IR for scenario #6: a recursive
// function call nested inside an if/else.
func TestEmitRecursiveFactorial(t *testing.T) {
	src := `procedure P is function F(N:INTEGER) return INTEGER is begin if N<=1 then return 1; else return N*F(N-1); end if; end F; begin PUT(F(5)'IMAGE); end P;`
	snaps.MatchSnapshot(t, "recursive_factorial", emitSource(t, src))
}

func TestEmitIfElse(t *testing.T) {
	src := `procedure P is begin if 2+2=4 then PUT_LINE("ok"); else PUT_LINE("bad"); end if; end P;`
	snaps.MatchSnapshot(t, "if_else", emitSource(t, src))
}
