// Package convert rewrites extracted PEG rules into the target grammar
// dialect. The conversion is lossy: constructs the target cannot
// represent are dropped or replaced with a fallback so that the result
// over-generates rather than rejecting valid strings, and no input ever
// makes the conversion fail.
package convert

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/cinfer/gram2gbnf/gbnf"
	"github.com/cinfer/gram2gbnf/peg"
	"github.com/cinfer/gram2gbnf/warning"
)

type Converter struct {
	rules *peg.RuleSet
	table *peg.TokenTable
	used  map[string]struct{}
	warns warning.Warnings
}

func New(rules *peg.RuleSet, table *peg.TokenTable) *Converter {
	return &Converter{
		rules: rules,
		table: table,
		used:  map[string]struct{}{},
	}
}

// Convert rewrites every non-diagnostic rule, preserving source order.
func (c *Converter) Convert() []gbnf.Rule {
	var out []gbnf.Rule
	for _, r := range c.rules.Rules() {
		if peg.IsDiagnosticRule(r.Name) {
			continue
		}
		out = append(out, gbnf.Rule{
			Name:   gbnf.RuleName(r.Name),
			Tokens: c.convertRule(r),
		})
	}
	return out
}

func (c *Converter) convertRule(r *peg.Rule) []peg.Token {
	if isDeniedRule(r.Name) {
		c.note(r.Name, "not representable in the target dialect, emitted fallback")
		return fallbackTokens()
	}

	toks := peg.TokenizeExpr(r.Body)

	toks, notes := stripLabels(toks)
	c.notes(r.Name, notes)

	toks = stripLookahead(toks)
	toks = desugarOptional(toks)
	toks = desugarSeparator(toks)

	toks, repaired := sanitize(toks)
	if repaired {
		c.note(r.Name, "repaired malformed group structure")
	}

	toks, notes = dropDiagnosticRefs(toks)
	c.notes(r.Name, notes)

	toks = tidyAlternation(toks)
	// dropping diagnostic references and bars can leave empty groups
	// behind, so clean up once more
	toks, _ = sanitize(toks)
	toks = tidyAlternation(toks)

	toks = c.resolve(toks)

	if isDirectLeftRecursion(gbnf.RuleName(r.Name), toks) {
		c.note(r.Name, "direct left recursion, emitted fallback")
		return fallbackTokens()
	}
	if len(toks) == 0 {
		c.note(r.Name, "empty after conversion, emitted fallback")
		return fallbackTokens()
	}
	return toks
}

// UsedTerminals returns the terminals dereferenced by any converted
// rule, sorted.
func (c *Converter) UsedTerminals() []string {
	names := maps.Keys(c.used)
	slices.Sort(names)
	return names
}

func (c *Converter) Warnings() warning.Warnings {
	return c.warns
}

func (c *Converter) note(rule, reason string) {
	c.warns = append(c.warns, &warning.Warning{
		Rule:   rule,
		Reason: reason,
	})
}

func (c *Converter) notes(rule string, reasons []string) {
	for _, reason := range reasons {
		c.note(rule, reason)
	}
}
