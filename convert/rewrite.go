package convert

import (
	"fmt"

	"github.com/cinfer/gram2gbnf/peg"
)

// Every rewrite in this file is total. When a pass meets a construct it
// cannot make sense of, it degrades to some well-formed output instead
// of failing; the converter records the degradation as a warning.

// stripLabels removes named-capture bindings: `label=expr` keeps only
// expr, and `label[Type]=expr` additionally drops the bracketed type
// annotation, matched with balanced brackets. An identifier followed by
// a bracket group with no `=` after it is not a label at all, so the
// original tokens are preserved. An unterminated annotation is dropped
// to the end of the expression while the label identifier is kept as an
// ordinary symbol; a label without an assignment never occurs in
// well-formed input, so the kept text is inert.
func stripLabels(toks []peg.Token) ([]peg.Token, []string) {
	var notes []string
	var out []peg.Token
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Kind == peg.TokenKindID && i+1 < len(toks) {
			next := toks[i+1]
			if next.IsSym("=") {
				i += 2
				continue
			}
			if next.IsSym("[") {
				end, ok := matchGroup(toks, i+1, "[", "]")
				if !ok {
					notes = append(notes, fmt.Sprintf("unterminated annotation on %v dropped", t.Text))
					out = append(out, t)
					i = len(toks)
					continue
				}
				if end+1 < len(toks) && toks[end+1].IsSym("=") {
					i = end + 2
					continue
				}
				out = append(out, t)
				i++
				continue
			}
		}
		out = append(out, t)
		i++
	}
	return out, notes
}

// stripLookahead deletes the lookahead, commit, and cut operators. They
// have no counterpart in the target dialect; removing just the operator
// makes the converted rule accept a superset of the source language.
func stripLookahead(toks []peg.Token) []peg.Token {
	var out []peg.Token
	for _, t := range toks {
		if t.IsSym("&&") || t.IsSym("&") || t.IsSym("!") || t.IsSym("~") {
			continue
		}
		out = append(out, t)
	}
	return out
}

// desugarOptional rewrites `[ X ]` to `( X )?`, innermost groups first.
// A bracket with no partner is dropped.
func desugarOptional(toks []peg.Token) []peg.Token {
	var out []peg.Token
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.IsSym("["):
			end, ok := matchGroup(toks, i, "[", "]")
			if !ok {
				i++
				continue
			}
			out = append(out, peg.NewSymbolToken("("))
			out = append(out, desugarOptional(toks[i+1:end])...)
			out = append(out, peg.NewSymbolToken(")"), peg.NewSymbolToken("?"))
			i = end + 1
		case t.IsSym("]"):
			i++
		default:
			out = append(out, t)
			i++
		}
	}
	return out
}

// desugarSeparator rewrites separated repetition: `s.e+` becomes
// `e ( s e )*` and `s.e*` becomes `( e ( s e )* )?`. Both operands may
// be parenthesized sub-expressions, found by balanced-paren scanning. A
// dot that is not part of this form is dropped.
func desugarSeparator(toks []peg.Token) []peg.Token {
	var out []peg.Token
	i := 0
	for i < len(toks) {
		if !toks[i].IsSym(".") {
			out = append(out, toks[i])
			i++
			continue
		}
		sep, rest := takeTrailingOperand(out)
		elem, n := leadingOperand(toks[i+1:])
		star := false
		quantified := false
		if len(elem) > 0 && i+1+n < len(toks) {
			if q := toks[i+1+n]; q.IsSym("+") || q.IsSym("*") {
				quantified = true
				star = q.IsSym("*")
			}
		}
		if len(sep) == 0 || len(elem) == 0 || !quantified {
			i++
			continue
		}
		sep = append([]peg.Token(nil), sep...)
		elem = desugarSeparator(append([]peg.Token(nil), elem...))
		out = append(rest, buildSeparated(sep, elem, star)...)
		i += n + 2
	}
	return out
}

func buildSeparated(sep, elem []peg.Token, star bool) []peg.Token {
	var out []peg.Token
	out = append(out, elem...)
	out = append(out, peg.NewSymbolToken("("))
	out = append(out, sep...)
	out = append(out, elem...)
	out = append(out, peg.NewSymbolToken(")"), peg.NewSymbolToken("*"))
	if star {
		wrapped := []peg.Token{peg.NewSymbolToken("(")}
		wrapped = append(wrapped, out...)
		wrapped = append(wrapped, peg.NewSymbolToken(")"), peg.NewSymbolToken("?"))
		return wrapped
	}
	return out
}

// sanitize repairs whatever the earlier passes could not express: a `)`
// with no open group, a quantifier with nothing to quantify, unmatched
// `(` tokens, empty groups, and any leftover bracket, assignment, or dot
// symbols. It reports whether it changed anything.
func sanitize(toks []peg.Token) ([]peg.Token, bool) {
	repaired := false
	for {
		out, changed := sanitizeOnce(toks)
		if !changed {
			return out, repaired
		}
		repaired = true
		toks = out
	}
}

func sanitizeOnce(toks []peg.Token) ([]peg.Token, bool) {
	changed := false
	var out []peg.Token
	depth := 0
	for _, t := range toks {
		switch {
		case t.IsSym("("):
			depth++
			out = append(out, t)
		case t.IsSym(")"):
			if depth == 0 {
				changed = true
				continue
			}
			depth--
			out = append(out, t)
		case t.IsSym("?"), t.IsSym("*"), t.IsSym("+"):
			if len(out) == 0 || out[len(out)-1].IsSym("(") || out[len(out)-1].IsSym("|") {
				changed = true
				continue
			}
			out = append(out, t)
		case t.IsSym("["), t.IsSym("]"), t.IsSym("="), t.IsSym("."):
			changed = true
		default:
			out = append(out, t)
		}
	}

	if depth > 0 {
		changed = true
		var open []int
		for i, t := range out {
			if t.IsSym("(") {
				open = append(open, i)
			} else if t.IsSym(")") {
				open = open[:len(open)-1]
			}
		}
		unmatched := map[int]struct{}{}
		for _, i := range open {
			unmatched[i] = struct{}{}
		}
		var kept []peg.Token
		for i, t := range out {
			if _, ok := unmatched[i]; ok {
				continue
			}
			kept = append(kept, t)
		}
		out = kept
	}

	for i := 0; i+1 < len(out); i++ {
		if out[i].IsSym("(") && out[i+1].IsSym(")") {
			out = append(out[:i], out[i+2:]...)
			changed = true
			i--
		}
	}

	return out, changed
}

// dropDiagnosticRefs removes references to rules that exist only for
// error reporting in the source grammar; they have no emitted
// production to point at.
func dropDiagnosticRefs(toks []peg.Token) ([]peg.Token, []string) {
	var notes []string
	var out []peg.Token
	for _, t := range toks {
		if t.Kind == peg.TokenKindID && peg.IsDiagnosticRule(t.Text) {
			notes = append(notes, fmt.Sprintf("dropped reference to diagnostic rule %v", t.Text))
			continue
		}
		out = append(out, t)
	}
	return out, notes
}

// tidyAlternation collapses consecutive alternation bars and trims bars
// at the start or end of the expression or of a group.
func tidyAlternation(toks []peg.Token) []peg.Token {
	var out []peg.Token
	for _, t := range toks {
		if t.IsSym("|") {
			if len(out) == 0 || out[len(out)-1].IsSym("|") || out[len(out)-1].IsSym("(") {
				continue
			}
			out = append(out, t)
			continue
		}
		if t.IsSym(")") && len(out) > 0 && out[len(out)-1].IsSym("|") {
			out = out[:len(out)-1]
		}
		out = append(out, t)
	}
	for len(out) > 0 && out[len(out)-1].IsSym("|") {
		out = out[:len(out)-1]
	}
	return out
}

// matchGroup returns the index of the token closing the group opened at
// open, scanning with a depth counter.
func matchGroup(toks []peg.Token, open int, openSym, closeSym string) (int, bool) {
	depth := 0
	for i := open; i < len(toks); i++ {
		if toks[i].IsSym(openSym) {
			depth++
		} else if toks[i].IsSym(closeSym) {
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// takeTrailingOperand splits the last operand off a token sequence: a
// trailing identifier or literal, or a trailing balanced paren group.
func takeTrailingOperand(toks []peg.Token) ([]peg.Token, []peg.Token) {
	if len(toks) == 0 {
		return nil, toks
	}
	last := toks[len(toks)-1]
	if last.Kind == peg.TokenKindID || last.Kind == peg.TokenKindLiteral {
		return toks[len(toks)-1:], toks[:len(toks)-1]
	}
	if last.IsSym(")") {
		depth := 0
		for i := len(toks) - 1; i >= 0; i-- {
			if toks[i].IsSym(")") {
				depth++
			} else if toks[i].IsSym("(") {
				depth--
				if depth == 0 {
					return toks[i:], toks[:i]
				}
			}
		}
	}
	return nil, toks
}

// leadingOperand returns the first operand of a token sequence and the
// number of tokens it spans.
func leadingOperand(toks []peg.Token) ([]peg.Token, int) {
	if len(toks) == 0 {
		return nil, 0
	}
	t := toks[0]
	if t.Kind == peg.TokenKindID || t.Kind == peg.TokenKindLiteral {
		return toks[:1], 1
	}
	if t.IsSym("(") {
		if end, ok := matchGroup(toks, 0, "(", ")"); ok {
			return toks[:end+1], end + 1
		}
	}
	return nil, 0
}
