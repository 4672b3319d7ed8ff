package peg

import "strings"

func isIDHead(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIDChar(c byte) bool {
	return isIDHead(c) || c >= '0' && c <= '9'
}

// structural symbols recognized by TokenizeExpr. Any other non-space,
// non-identifier, non-quote character is dropped.
const symChars = "()[]|*+?.=&!~"

// TokenizeExpr splits a rule body into expression tokens: identifiers,
// quoted literals, and structural symbols. The two-character operator
// "&&" is kept as one token. Quoted literals are unescaped; only "\\"
// and an escaped quote character are recognized as escape sequences,
// anything else after a backslash is kept verbatim. Unrecognized
// characters are skipped, never reported; the caller is expected to
// produce some output for any input.
func TokenizeExpr(src string) []Token {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isIDHead(c):
			j := i + 1
			for j < len(src) && isIDChar(src[j]) {
				j++
			}
			toks = append(toks, NewIDToken(src[i:j]))
			i = j
		case c == '\'' || c == '"':
			text, rest := scanLiteral(src[i+1:], c)
			toks = append(toks, NewLiteralToken(text))
			i = len(src) - len(rest)
		case c == '&' && i+1 < len(src) && src[i+1] == '&':
			toks = append(toks, NewSymbolToken("&&"))
			i += 2
		case strings.IndexByte(symChars, c) >= 0:
			toks = append(toks, NewSymbolToken(string(c)))
			i++
		default:
			i++
		}
	}
	return toks
}

// scanLiteral consumes a quoted span up to the closing quote character
// and returns the unescaped text and the remainder of the input after
// the closing quote. An unterminated literal runs to the end of the
// input.
func scanLiteral(src string, quote byte) (string, string) {
	var b strings.Builder
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			n := src[i+1]
			if n == '\\' || n == quote {
				b.WriteByte(n)
			} else {
				b.WriteByte(c)
				b.WriteByte(n)
			}
			i += 2
			continue
		}
		if c == quote {
			return b.String(), src[i+1:]
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), ""
}
