package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// scenarioPrograms are the six literal end-to-end programs from spec §8,
// used here as golden-snapshot fixtures for the token stream each one
// lexes into.
var scenarioPrograms = []struct {
	name   string
	source string
}{
	{"hello", `procedure P is begin PUT_LINE("hi"); end P;`},
	{"sum_loop", `procedure P is X : INTEGER := 0; begin for I in 1..5 loop X := X + I; end loop; PUT(X'IMAGE); end P;`},
	{"if_else", `procedure P is begin if 2+2=4 then PUT_LINE("ok"); else PUT_LINE("bad"); end if; end P;`},
	{"divide_by_zero", `procedure P is X : INTEGER := 1/0; begin null; end P;`},
	{"enum_image", `procedure P is type Color is (Red, Green, Blue); C : Color := Green; begin PUT(Color'IMAGE(C)); end P;`},
	{"recursive_factorial", `procedure P is function F(N:INTEGER) return INTEGER is begin if N<=1 then return 1; else return N*F(N-1); end if; end F; begin PUT(F(5)'IMAGE); end P;`},
}

func TestLexScenarioPrograms(t *testing.T) {
	for _, tc := range scenarioPrograms {
		t.Run(tc.name, func(t *testing.T) {
			l := New(tc.source, tc.name+".ada")
			var sb strings.Builder
			for {
				tok := l.Next()
				fmt.Fprintf(&sb, "%-14s %q\n", tok.Kind, tok.Lit)
				if tok.Kind == EOF || tok.Kind == ILLEGAL {
					break
				}
			}
			snaps.MatchSnapshot(t, tc.name, sb.String())
		})
	}
}
