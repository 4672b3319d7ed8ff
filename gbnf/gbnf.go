// Package gbnf holds everything specific to the target grammar
// dialect: production naming, literal quoting, the builtin terminal
// patterns, and the renderer.
package gbnf

import (
	"fmt"
	"strings"

	"github.com/cinfer/gram2gbnf/peg"
)

const (
	// RootRuleName is the entry production every emitted grammar
	// declares.
	RootRuleName = "root"

	// FallbackRuleName is the production substituted for rules whose
	// source form cannot be represented in the target dialect.
	FallbackRuleName = "fallback"

	terminalRulePrefix = "tok-"
)

// Rule is one converted production ready for rendering.
type Rule struct {
	Name   string
	Tokens []peg.Token
}

// RuleName converts a source rule name to the target dialect's naming
// convention: lowercase with dashes.
func RuleName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// TerminalRuleName returns the name of the synthesized production for a
// terminal, e.g. FSTRING_START -> tok-fstring-start.
func TerminalRuleName(name string) string {
	return terminalRulePrefix + RuleName(name)
}

// Quote renders literal text as a double-quoted target-dialect string.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ExprText serializes a converted expression, quoting literal tokens.
// Quantifiers attach to the token they follow.
func ExprText(toks []peg.Token) string {
	var b strings.Builder
	for i, t := range toks {
		quant := t.IsSym("*") || t.IsSym("+") || t.IsSym("?")
		if i > 0 && !quant {
			b.WriteByte(' ')
		}
		if t.Kind == peg.TokenKindLiteral {
			b.WriteString(Quote(t.Text))
		} else {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
