// Package lexer turns a byte buffer into a stream of tokens for the
// source language's recursive-descent parser. See spec §4.4.
package lexer

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/bignum"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
)

// Kind is a token's category, drawn from a closed enumeration of special,
// literal, delimiter, operator, and reserved-word kinds (spec §3).
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// literals
	IDENT
	INT_LITERAL
	FLOAT_LITERAL
	CHAR_LITERAL
	STRING_LITERAL

	// delimiters / punctuation
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [ (unused by the grammar proper, accepted for robustness)
	RBRACKET // ]
	COMMA    // ,
	SEMI     // ;
	COLON    // :
	DOT      // .
	TICK     // '
	AT       // @ (representation clause address mark; parsed, discarded)
	BOX      // <>
	ARROW    // =>
	DOTDOT   // ..
	ASSIGN   // :=

	// operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	AMP      // &
	EQ       // =
	NE       // /=
	LT       // <
	LE       // <=
	GT       // >
	GE       // >=
	LSHIFT   // <<
	RSHIFT   // >>
	STARSTAR // **
	PIPE     // | (choice-list separator)

	reservedBegin
	// reserved words, ~63 lowercase forms per spec §4.4
	KW_ABORT
	KW_ABS
	KW_ACCEPT
	KW_ACCESS
	KW_ALL
	KW_AND
	KW_ARRAY
	KW_AT
	KW_BEGIN
	KW_BODY
	KW_CASE
	KW_CONSTANT
	KW_DECLARE
	KW_DELAY
	KW_DELTA
	KW_DIGITS
	KW_DO
	KW_ELSE
	KW_ELSIF
	KW_END
	KW_ENTRY
	KW_EXCEPTION
	KW_EXIT
	KW_FOR
	KW_FUNCTION
	KW_GENERIC
	KW_GOTO
	KW_IF
	KW_IN
	KW_IS
	KW_LIMITED
	KW_LOOP
	KW_MOD
	KW_NEW
	KW_NOT
	KW_NULL
	KW_OF
	KW_OR
	KW_OTHERS
	KW_OUT
	KW_PACKAGE
	KW_PRAGMA
	KW_PRIVATE
	KW_PROCEDURE
	KW_RAISE
	KW_RANGE
	KW_RECORD
	KW_REM
	KW_RENAMES
	KW_RETURN
	KW_REVERSE
	KW_SELECT
	KW_SEPARATE
	KW_SUBTYPE
	KW_TASK
	KW_TERMINATE
	KW_THEN
	KW_TYPE
	KW_USE
	KW_WHEN
	KW_WHILE
	KW_WITH
	KW_XOR
	reservedEnd
)

// keywords maps the lower-cased reserved-word spelling to its Kind. Any
// identifier whose case-folded text doesn't appear here stays IDENT (spec
// §4.4: "any non-match becomes a generic identifier token").
var keywords = map[string]Kind{
	"abort": KW_ABORT, "abs": KW_ABS, "accept": KW_ACCEPT, "access": KW_ACCESS,
	"all": KW_ALL, "and": KW_AND, "array": KW_ARRAY, "at": KW_AT,
	"begin": KW_BEGIN, "body": KW_BODY, "case": KW_CASE, "constant": KW_CONSTANT,
	"declare": KW_DECLARE, "delay": KW_DELAY, "delta": KW_DELTA, "digits": KW_DIGITS,
	"do": KW_DO, "else": KW_ELSE, "elsif": KW_ELSIF, "end": KW_END,
	"entry": KW_ENTRY, "exception": KW_EXCEPTION, "exit": KW_EXIT, "for": KW_FOR,
	"function": KW_FUNCTION, "generic": KW_GENERIC, "goto": KW_GOTO, "if": KW_IF,
	"in": KW_IN, "is": KW_IS, "limited": KW_LIMITED, "loop": KW_LOOP,
	"mod": KW_MOD, "new": KW_NEW, "not": KW_NOT, "null": KW_NULL,
	"of": KW_OF, "or": KW_OR, "others": KW_OTHERS, "out": KW_OUT,
	"package": KW_PACKAGE, "pragma": KW_PRAGMA, "private": KW_PRIVATE,
	"procedure": KW_PROCEDURE, "raise": KW_RAISE, "range": KW_RANGE,
	"record": KW_RECORD, "rem": KW_REM, "renames": KW_RENAMES, "return": KW_RETURN,
	"reverse": KW_REVERSE, "select": KW_SELECT, "separate": KW_SEPARATE,
	"subtype": KW_SUBTYPE, "task": KW_TASK, "terminate": KW_TERMINATE,
	"then": KW_THEN, "type": KW_TYPE, "use": KW_USE, "when": KW_WHEN,
	"while": KW_WHILE, "with": KW_WITH, "xor": KW_XOR,
}

// names holds a human-readable label per Kind, used by diagnostics and the
// lex subcommand's token dump.
var names = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", IDENT: "IDENT", INT_LITERAL: "INT",
	FLOAT_LITERAL: "FLOAT", CHAR_LITERAL: "CHAR", STRING_LITERAL: "STRING",
	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]", COMMA: ",",
	SEMI: ";", COLON: ":", DOT: ".", TICK: "'", AT: "@", BOX: "<>",
	ARROW: "=>", DOTDOT: "..", ASSIGN: ":=", PLUS: "+", MINUS: "-",
	STAR: "*", SLASH: "/", AMP: "&", EQ: "=", NE: "/=", LT: "<", LE: "<=",
	GT: ">", GE: ">=", LSHIFT: "<<", RSHIFT: ">>", STARSTAR: "**", PIPE: "|",
}

// String renders a Kind's name for diagnostics and debug dumps.
func (k Kind) String() string {
	if k > reservedBegin && k < reservedEnd {
		for text, kw := range keywords {
			if kw == k {
				return text
			}
		}
	}
	if n, ok := names[k]; ok {
		return n
	}
	return "?"
}

// IsReserved reports whether k is one of the ~63 reserved words.
func (k Kind) IsReserved() bool {
	return k > reservedBegin && k < reservedEnd
}

// lookupKeyword returns the Kind for a case-folded identifier spelling, or
// IDENT if it isn't reserved.
func lookupKeyword(folded string) Kind {
	if k, ok := keywords[folded]; ok {
		return k
	}
	return IDENT
}

// Token is a single lexical unit: its kind, source location, exact source
// text, and (for numeric/character literals) the decoded semantic value
// (spec §3).
type Token struct {
	Kind     Kind
	Loc      ident.Loc
	Lit      string // exact source span ("literal slice")
	StrVal   string // decoded text for STRING_LITERAL (delimiters stripped, doubling collapsed)
	IntVal   int64
	FloatVal float64
	Big      *bignum.Int // set only when the literal overflows 64 bits
	Err      string      // set when Kind == ILLEGAL
}
