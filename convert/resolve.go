package convert

import (
	"github.com/cinfer/gram2gbnf/gbnf"
	"github.com/cinfer/gram2gbnf/peg"
)

// isTerminalName reports whether an identifier follows the terminal
// naming convention: identifier characters only, every letter
// uppercase, at least one letter. The token table is consulted before
// this heuristic ever runs; it exists only for terminals the table file
// omits.
func isTerminalName(name string) bool {
	hasLetter := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9' || c == '_':
		default:
			return false
		}
	}
	return hasLetter
}

// resolve binds every remaining identifier: a known rule name becomes
// the converted rule reference, a literal-backed terminal becomes its
// quoted literal, any other terminal becomes a synthesized terminal
// reference and is recorded as used, and anything unrecognized passes
// through untouched.
func (c *Converter) resolve(toks []peg.Token) []peg.Token {
	out := make([]peg.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != peg.TokenKindID {
			out = append(out, t)
			continue
		}
		name := t.Text
		if c.rules.Contains(name) && !peg.IsDiagnosticRule(name) {
			out = append(out, peg.NewIDToken(gbnf.RuleName(name)))
			continue
		}
		if lit, ok := c.table.Literal(name); ok {
			// even though the reference is replaced inline, the
			// terminal was dereferenced, so a production is still
			// synthesized for it
			c.used[name] = struct{}{}
			out = append(out, peg.NewLiteralToken(lit))
			continue
		}
		if c.table.Contains(name) || isTerminalName(name) {
			c.used[name] = struct{}{}
			out = append(out, peg.NewIDToken(gbnf.TerminalRuleName(name)))
			continue
		}
		out = append(out, t)
	}
	return out
}
