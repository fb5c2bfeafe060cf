package parser

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

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

// TestParseScenarioPrograms snapshots the pretty-printed AST of each of
// the six end-to-end scenario programs from spec §8.
func TestParseScenarioPrograms(t *testing.T) {
	for _, tc := range scenarioPrograms {
		t.Run(tc.name, func(t *testing.T) {
			cu := Parse(tc.source, tc.name+".ada")

			var sb strings.Builder
			for _, w := range cu.WithClauses {
				sb.WriteString(w.String())
				sb.WriteByte('\n')
			}
			for _, u := range cu.UseClauses {
				sb.WriteString(u.String())
				sb.WriteByte('\n')
			}
			sb.WriteString(cu.Library.String())
			sb.WriteByte('\n')

			snaps.MatchSnapshot(t, tc.name, sb.String())
		})
	}
}
