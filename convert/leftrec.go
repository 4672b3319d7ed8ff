package convert

import (
	"github.com/cinfer/gram2gbnf/gbnf"
	"github.com/cinfer/gram2gbnf/peg"
)

// deniedRules are source rules whose shapes the target dialect cannot
// host: indentation-delimited suites, the statement machinery built on
// them, and comprehension clauses. They are forced to the fallback
// production without running the conversion pipeline.
var deniedRules = map[string]struct{}{
	"block":             {},
	"statements":        {},
	"statement":         {},
	"statement_newline": {},
	"simple_stmts":      {},
	"simple_stmt":       {},
	"compound_stmt":     {},
	"for_if_clauses":    {},
	"for_if_clause":     {},
	"listcomp":          {},
	"setcomp":           {},
	"genexp":            {},
	"dictcomp":          {},
}

func isDeniedRule(name string) bool {
	_, ok := deniedRules[name]
	return ok
}

// isDirectLeftRecursion reports whether a converted expression begins,
// optionally after a single leading group opener, with a reference to
// the rule itself. Only this outermost direct form is detected;
// indirect and mutual recursion pass through unchanged.
func isDirectLeftRecursion(convertedName string, toks []peg.Token) bool {
	i := 0
	if i < len(toks) && toks[i].IsSym("(") {
		i++
	}
	return i < len(toks) && toks[i].Kind == peg.TokenKindID && toks[i].Text == convertedName
}

func fallbackTokens() []peg.Token {
	return []peg.Token{peg.NewIDToken(gbnf.FallbackRuleName)}
}
