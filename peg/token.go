package peg

type TokenKind string

const (
	// TokenKindID is an identifier: a rule name or a terminal name.
	TokenKindID = TokenKind("id")

	// TokenKindLiteral is a quoted literal. The token text holds the
	// unescaped characters; quoting is applied at render time.
	TokenKindLiteral = TokenKind("literal")

	// TokenKindSym is a single structural symbol, or the two-character
	// lookahead-and-commit operator "&&".
	TokenKindSym = TokenKind("symbol")
)

type Token struct {
	Kind TokenKind
	Text string
}

func NewIDToken(text string) Token {
	return Token{
		Kind: TokenKindID,
		Text: text,
	}
}

func NewLiteralToken(text string) Token {
	return Token{
		Kind: TokenKindLiteral,
		Text: text,
	}
}

func NewSymbolToken(text string) Token {
	return Token{
		Kind: TokenKindSym,
		Text: text,
	}
}

// IsSym reports whether a token is the structural symbol sym.
func (t Token) IsSym(sym string) bool {
	return t.Kind == TokenKindSym && t.Text == sym
}
