package diag

import (
	"strings"
	"testing"

	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
)

func TestFormatPointsAtColumn(t *testing.T) {
	src := "procedure P is\nX : INTEGER := Y;\nbegin\nend P;"
	d := New(ident.Loc{File: "p.adb", Line: 2, Col: 16}, src, "undefined identifier %q", "Y")
	out := d.Format(false)
	if !strings.Contains(out, "p.adb:2:16") {
		t.Fatalf("expected location header, got %q", out)
	}
	if !strings.Contains(out, "X : INTEGER := Y;") {
		t.Fatalf("expected source line, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret, got %q", out)
	}
}

func TestFormatAll(t *testing.T) {
	d1 := New(ident.Loc{File: "a", Line: 1, Col: 1}, "x", "first")
	d2 := New(ident.Loc{File: "a", Line: 2, Col: 1}, "x\ny", "second")
	out := FormatAll([]*Diagnostic{d1, d2}, false)
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("expected both messages, got %q", out)
	}
}
