package gbnf

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/cinfer/gram2gbnf/peg"
)

// baselineTerminals are lexical categories presumed necessary for any
// generated program text; productions for them are always emitted.
var baselineTerminals = []string{
	"NAME",
	"NUMBER",
	"STRING",
	"NEWLINE",
	"INDENT",
	"DEDENT",
}

// builtinPatterns approximate common lexical categories for terminals
// the lexicon does not define by an exact literal. The patterns may
// reference the support productions below.
var builtinPatterns = map[string]string{
	"NAME":           `[a-zA-Z_] [a-zA-Z0-9_]*`,
	"NUMBER":         `"-"? [0-9]+ ("." [0-9]+)?`,
	"STRING":         `"\"\"\"" tq-char* "\"\"\"" | "'''" tsq-char* "'''" | "\"" dq-char* "\"" | "'" sq-char* "'"`,
	"FSTRING_START":  `"f\"" | "f'"`,
	"FSTRING_MIDDLE": `[^{}\r\n]*`,
	"FSTRING_END":    `"\"" | "'"`,
	"NEWLINE":        `"\n" | "\r\n"`,
	"NL":             `"\n" | "\r\n"`,
	"INDENT":         `ws ws*`,
	"DEDENT":         `""`,
	"COMMENT":        `comment`,
	"TYPE_COMMENT":   `"# type:" [^\r\n]*`,
	"ENDMARKER":      `""`,
}

// unrestrictedPattern is the last-resort production body for terminals
// with neither a literal nor a builtin pattern: any non-newline run.
const unrestrictedPattern = `[^\r\n]+`

// supportRules back the builtin patterns. Emitted verbatim, in this
// order, at the end of every grammar.
var supportRules = []string{
	`ws ::= [ \t]`,
	`sq-char ::= [^'\r\n]`,
	`dq-char ::= [^"\r\n]`,
	`tq-char ::= [^"]`,
	`tsq-char ::= [^']`,
	`comment ::= "#" [^\r\n]*`,
}

// TerminalRules synthesizes one production per terminal in the union of
// used and the baseline set, sorted by terminal name. A literal from
// the table always wins over a builtin pattern.
func TerminalRules(table *peg.TokenTable, used []string) []string {
	set := map[string]struct{}{}
	for _, name := range used {
		set[name] = struct{}{}
	}
	for _, name := range baselineTerminals {
		set[name] = struct{}{}
	}

	names := maps.Keys(set)
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s ::= %s", TerminalRuleName(name), terminalPattern(table, name)))
	}
	return lines
}

func terminalPattern(table *peg.TokenTable, name string) string {
	if lit, ok := table.Literal(name); ok {
		return Quote(lit)
	}
	if pat, ok := builtinPatterns[name]; ok {
		return pat
	}
	return unrestrictedPattern
}
