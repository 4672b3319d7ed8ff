package gbnf

import (
	"fmt"
	"strings"

	"github.com/cinfer/gram2gbnf/peg"
)

var headerLines = []string{
	"# Converted from a PEG grammar. The conversion is best-effort:",
	"# lookahead operators, cut, and semantic actions have no",
	"# counterpart in this dialect and were dropped, so this grammar",
	"# accepts a superset of the source language.",
}

// Render serializes the final grammar: header, root declaration,
// converted rules in source order, the fallback production, synthesized
// terminal productions sorted by name, and the static support block.
// The output is byte-deterministic for identical inputs.
func Render(start string, rules []Rule, table *peg.TokenTable, used []string) string {
	var b strings.Builder
	for _, l := range headerLines {
		fmt.Fprintln(&b, l)
	}
	fmt.Fprintf(&b, "%s ::= %s\n", RootRuleName, RuleName(start))
	for _, r := range rules {
		fmt.Fprintf(&b, "%s ::= %s\n", r.Name, ExprText(r.Tokens))
	}
	fmt.Fprintf(&b, "%s ::= tok-name | tok-number | tok-string\n", FallbackRuleName)
	for _, l := range TerminalRules(table, used) {
		fmt.Fprintln(&b, l)
	}
	for _, l := range supportRules {
		fmt.Fprintln(&b, l)
	}
	return b.String()
}
