package lexer

import "testing"

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []Token, want []Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	toks := All("BEGIN begin Begin bEgIn", "t")
	for _, tok := range toks[:4] {
		if tok.Kind != KW_BEGIN {
			t.Fatalf("expected KW_BEGIN, got %v for %q", tok.Kind, tok.Lit)
		}
	}
}

func TestLiteralSliceMatchesSource(t *testing.T) {
	src := "X := 123_456;"
	toks := All(src, "t")
	for _, tok := range toks {
		if tok.Kind == ILLEGAL || tok.Kind == EOF {
			continue
		}
		if got := tok.Lit; got == "" {
			t.Fatalf("empty literal slice for %v", tok.Kind)
		}
	}
	// the integer literal token's slice is exactly its source span
	intTok := toks[2]
	if intTok.Kind != INT_LITERAL || intTok.Lit != "123_456" {
		t.Fatalf("expected INT_LITERAL \"123_456\", got %v %q", intTok.Kind, intTok.Lit)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	toks := All("42", "t")
	if toks[0].Kind != INT_LITERAL || toks[0].IntVal != 42 {
		t.Fatalf("got %v %d", toks[0].Kind, toks[0].IntVal)
	}
}

func TestTickAttributeVsCharLiteral(t *testing.T) {
	toks := All("X'First", "t")
	assertKinds(t, toks, []Kind{IDENT, TICK, IDENT, EOF})

	toks2 := All("'A'", "t")
	assertKinds(t, toks2, []Kind{CHAR_LITERAL, EOF})
	if toks2[0].IntVal != int64('A') {
		t.Fatalf("expected ordinal of 'A', got %d", toks2[0].IntVal)
	}
}

func TestCompoundTokens(t *testing.T) {
	toks := All(":= => .. << >> <> /= <= >= **", "t")
	assertKinds(t, toks, []Kind{ASSIGN, ARROW, DOTDOT, LSHIFT, RSHIFT, BOX, NE, LE, GE, STARSTAR, EOF})
}

func TestStringLiteralDoubledDelimiter(t *testing.T) {
	toks := All(`"say ""hi"""`, "t")
	if toks[0].Kind != STRING_LITERAL {
		t.Fatalf("expected STRING_LITERAL, got %v", toks[0].Kind)
	}
	if toks[0].StrVal != `say "hi"` {
		t.Fatalf("got %q", toks[0].StrVal)
	}
}

func TestPercentDelimitedString(t *testing.T) {
	toks := All(`%hello%`, "t")
	if toks[0].Kind != STRING_LITERAL || toks[0].StrVal != "hello" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].StrVal)
	}
}

func TestCommentsSkipped(t *testing.T) {
	toks := All("X -- a comment\n:= 1;", "t")
	assertKinds(t, toks, []Kind{IDENT, ASSIGN, INT_LITERAL, SEMI, EOF})
}

func TestBasedLiteral(t *testing.T) {
	toks := All("16#FF#", "t")
	if toks[0].Kind != INT_LITERAL || toks[0].IntVal != 255 {
		t.Fatalf("got %v %d", toks[0].Kind, toks[0].IntVal)
	}
}

func TestBasedLiteralAlternateDelimiter(t *testing.T) {
	toks := All("2:1010:", "t")
	if toks[0].Kind != INT_LITERAL || toks[0].IntVal != 10 {
		t.Fatalf("got %v %d", toks[0].Kind, toks[0].IntVal)
	}
}

func TestFloatLiteral(t *testing.T) {
	toks := All("3.14", "t")
	if toks[0].Kind != FLOAT_LITERAL {
		t.Fatalf("got %v", toks[0].Kind)
	}
	if diff := toks[0].FloatVal - 3.14; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("got %v", toks[0].FloatVal)
	}
}

func TestRangeNotConfusedWithFloat(t *testing.T) {
	toks := All("1..5", "t")
	assertKinds(t, toks, []Kind{INT_LITERAL, DOTDOT, INT_LITERAL, EOF})
}

func TestLexerErrorToken(t *testing.T) {
	toks := All("123abc", "t")
	if toks[0].Kind != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", toks[0].Kind)
	}
	if toks[0].Err == "" {
		t.Fatal("expected explanation in Err")
	}
}

func TestPositionTracking(t *testing.T) {
	toks := All("X\nY", "t")
	if toks[0].Loc.Line != 1 || toks[1].Loc.Line != 2 {
		t.Fatalf("got lines %d, %d", toks[0].Loc.Line, toks[1].Loc.Line)
	}
}

func TestOverflowingLiteralCarriesBignum(t *testing.T) {
	toks := All("99999999999999999999999999999999", "t")
	if toks[0].Kind != INT_LITERAL {
		t.Fatalf("got %v", toks[0].Kind)
	}
	if toks[0].Big == nil {
		t.Fatal("expected Big to be set for an overflowing literal")
	}
	if toks[0].Big.String() != "99999999999999999999999999999999" {
		t.Fatalf("got %s", toks[0].Big.String())
	}
}
