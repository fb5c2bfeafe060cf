package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AdaDoom3/Ada83-sub006/internal/parser"
	"github.com/AdaDoom3/Ada83-sub006/internal/semantic"
)

func runSource(t *testing.T, source string) (string, *Unhandled) {
	t.Helper()
	cu := parser.Parse(source, "p.ada")
	r := semantic.New(source, "p.ada")
	r.Analyze(cu)

	main := r.Symbols.Lookup("P")
	if main == nil {
		t.Fatalf("no library procedure P found")
	}

	var out bytes.Buffer
	ctx := New(r.Symbols, r.Types, &out, strings.NewReader(""))
	unhandled := Run(ctx, main)
	ctx.Flush()
	return out.String(), unhandled
}

func TestRunHelloWorld(t *testing.T) {
	out, unhandled := runSource(t, `procedure P is begin PUT_LINE("hi"); end P;`)
	if unhandled != nil {
		t.Fatalf("unexpected unhandled exception: %v", unhandled)
	}
	if out != "hi\n" {
		t.Errorf("output = %q, want %q", out, "hi\n")
	}
}

func TestRunSumLoop(t *testing.T) {
	out, unhandled := runSource(t, `procedure P is X : INTEGER := 0; begin for I in 1..5 loop X := X + I; end loop; PUT(X'IMAGE); end P;`)
	if unhandled != nil {
		t.Fatalf("unexpected unhandled exception: %v", unhandled)
	}
	if out != "15" {
		t.Errorf("output = %q, want %q", out, "15")
	}
}

func TestRunDivideByZeroRaisesConstraintError(t *testing.T) {
	_, unhandled := runSource(t, `procedure P is X : INTEGER := 1/0; begin null; end P;`)
	if unhandled == nil {
		t.Fatalf("expected an unhandled CONSTRAINT_ERROR, got none")
	}
	if unhandled.Name != ConstraintError {
		t.Errorf("exception name = %q, want %q", unhandled.Name, ConstraintError)
	}
}

// TestInOutWritebackThroughNestedCall exercises a two-level call nest
// (the top-level procedure's own frame, then a nested procedure's call
// frame) and checks that an in out actual is written back into the
// caller's frame rather than being lost or stashed as a stray global:
// the writeback must run once the callee's frame has already been
// popped, since the caller is itself a call frame, not the top level.
func TestInOutWritebackThroughNestedCall(t *testing.T) {
	src := `procedure P is
		X : INTEGER := 10;
		procedure Bump(N : in out INTEGER) is begin N := N + 1; end Bump;
		procedure Twice is begin Bump(X); Bump(X); end Twice;
	begin
		Twice;
		PUT(X'IMAGE);
	end P;`
	out, unhandled := runSource(t, src)
	if unhandled != nil {
		t.Fatalf("unexpected unhandled exception: %v", unhandled)
	}
	if out != "12" {
		t.Errorf("output = %q, want %q", out, "12")
	}
}

// TestActualEvaluatedInCallerScope exercises the same two-level nesting
// for argument evaluation: the actual passed to Bump (Get_Base + 0)
// resolves a caller-local variable, which must be visible while
// evaluating the call's arguments even though the call itself happens
// from inside Twice's own frame.
func TestActualEvaluatedInCallerScope(t *testing.T) {
	src := `procedure P is
		function Square(N : INTEGER) return INTEGER is begin return N * N; end Square;
		procedure Show(N : INTEGER) is begin PUT(N'IMAGE); end Show;
		procedure Relay is
			Base : INTEGER := 4;
		begin
			Show(Square(Base));
		end Relay;
	begin
		Relay;
	end P;`
	out, unhandled := runSource(t, src)
	if unhandled != nil {
		t.Fatalf("unexpected unhandled exception: %v", unhandled)
	}
	if out != "16" {
		t.Errorf("output = %q, want %q", out, "16")
	}
}

func TestRunRecursiveFactorial(t *testing.T) {
	src := `procedure P is function F(N:INTEGER) return INTEGER is begin if N<=1 then return 1; else return N*F(N-1); end if; end F; begin PUT(F(5)'IMAGE); end P;`
	out, unhandled := runSource(t, src)
	if unhandled != nil {
		t.Fatalf("unexpected unhandled exception: %v", unhandled)
	}
	if out != "120" {
		t.Errorf("output = %q, want %q", out, "120")
	}
}
