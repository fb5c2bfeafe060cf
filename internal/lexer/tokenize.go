package lexer

// All drains the lexer into a slice of tokens, including the trailing EOF
// token, for callers (tests, the lex subcommand) that want the whole
// stream at once rather than pulling Next() one token at a time.
func All(input, file string) []Token {
	l := New(input, file)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}
