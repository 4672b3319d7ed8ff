package peg

import (
	"bufio"
	"io"
	"strings"
)

// TokenTable maps terminal names to their literal text, when the
// lexicon defines one, and records the full set of known terminal
// names. It is built once and treated as immutable afterward.
type TokenTable struct {
	literals map[string]string
	names    map[string]struct{}
}

// LoadTokenTable reads a line-oriented terminal definition table. Each
// non-blank, non-comment line declares one terminal: the first
// whitespace-delimited field is the terminal name, and the first
// single-quoted span elsewhere on the line, if any, is its literal
// text. Malformed lines are skipped. This loader never fails; a read
// error simply ends the table at the last complete line.
func LoadTokenTable(src io.Reader) *TokenTable {
	t := &TokenTable{
		literals: map[string]string{},
		names:    map[string]struct{}{},
	}
	s := bufio.NewScanner(src)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		name := fields[0]
		if !isIdentifier(name) {
			continue
		}
		t.names[name] = struct{}{}
		rest := line[len(name):]
		if q := strings.IndexByte(rest, '\''); q >= 0 {
			// An empty span still counts: the terminal is
			// literal-backed and matches the empty string.
			lit, _ := scanLiteral(rest[q+1:], '\'')
			t.literals[name] = lit
		}
	}
	return t
}

// Literal returns the literal text for a terminal, if the lexicon
// defines the terminal by an exact string.
func (t *TokenTable) Literal(name string) (string, bool) {
	text, ok := t.literals[name]
	return text, ok
}

// Contains reports whether name is a known terminal, literal-backed or
// not.
func (t *TokenTable) Contains(name string) bool {
	_, ok := t.names[name]
	return ok
}

func isIdentifier(s string) bool {
	if s == "" || !isIDHead(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIDChar(s[i]) {
			return false
		}
	}
	return true
}
