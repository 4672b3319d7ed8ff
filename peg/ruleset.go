package peg

import (
	"bufio"
	"io"
	"strings"
)

// diagnosticRulePrefix marks rules that exist only to improve the
// source grammar's error messages. They are extracted so references to
// them can be recognized, but they have no generative content and are
// excluded from emission.
const diagnosticRulePrefix = "invalid_"

func IsDiagnosticRule(name string) bool {
	return strings.HasPrefix(name, diagnosticRulePrefix)
}

// Rule is a named production. Body holds the raw right-hand side as
// written in the source, with comments, semantic actions, and line
// breaks already stripped.
type Rule struct {
	Name string
	Body string
}

// RuleSet holds extracted rules in source order. Rule names are unique;
// when a name is redeclared the first declaration wins.
type RuleSet struct {
	rules []*Rule
	index map[string]*Rule
}

func (rs *RuleSet) Rules() []*Rule {
	return rs.rules
}

func (rs *RuleSet) Contains(name string) bool {
	_, ok := rs.index[name]
	return ok
}

// Start returns the name of the grammar's start rule: the first
// extracted rule that is not a diagnostic rule.
func (rs *RuleSet) Start() string {
	for _, r := range rs.rules {
		if !IsDiagnosticRule(r.Name) {
			return r.Name
		}
	}
	return ""
}

// ExtractRules splits raw grammar source into named rule bodies.
//
// The scan tracks semantic-action nesting ({ ... }) and quoted spans
// across line boundaries, so a brace or comment marker inside a string
// literal never corrupts the nesting depth. A rule header is a line
// whose content, at the top nesting level, begins with an identifier
// followed by an optional bracketed annotation, an optional
// parenthesized flag, and a colon; accumulation continues until the
// next header. Directive lines beginning with @ are discarded, and a
// directive opening a triple-quoted block discards the whole block.
func ExtractRules(src io.Reader) *RuleSet {
	e := &extractor{
		rs: &RuleSet{
			index: map[string]*Rule{},
		},
	}
	s := bufio.NewScanner(src)
	for s.Scan() {
		e.line(s.Text())
	}
	e.flush()
	return e.rs
}

type extractor struct {
	depth   int  // semantic-action brace depth
	quote   byte // active quote character, 0 when outside quotes
	trailer bool // inside a discarded triple-quoted directive block
	name    string
	frags   []string
	rs      *RuleSet
}

func (e *extractor) line(line string) {
	if e.trailer {
		if strings.Contains(line, "'''") {
			e.trailer = false
		}
		return
	}

	atTop := e.depth == 0 && e.quote == 0

	trimmed := strings.TrimSpace(line)
	if atTop && strings.HasPrefix(trimmed, "@") {
		if i := strings.Index(trimmed, "'''"); i >= 0 && !strings.Contains(trimmed[i+3:], "'''") {
			e.trailer = true
		}
		return
	}

	content := e.scan(line)
	if atTop {
		if name, rest, ok := splitRuleHeader(content); ok {
			e.flush()
			e.name = name
			if r := strings.TrimSpace(rest); r != "" {
				e.frags = append(e.frags, r)
			}
			return
		}
	}
	if e.name != "" {
		if c := strings.TrimSpace(content); c != "" {
			e.frags = append(e.frags, c)
		}
	}
}

// scan consumes one source line and returns the grammar content on it:
// everything outside semantic actions, with a top-level comment
// removed. Depth and quote state persist across calls; escape state is
// line-local.
func (e *extractor) scan(line string) string {
	var b strings.Builder
	esc := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if e.quote != 0 {
			if e.depth == 0 {
				b.WriteByte(c)
			}
			if esc {
				esc = false
			} else if c == '\\' {
				esc = true
			} else if c == e.quote {
				e.quote = 0
			}
			continue
		}
		switch {
		case c == '#' && e.depth == 0:
			return b.String()
		case c == '\'' || c == '"':
			e.quote = c
			if e.depth == 0 {
				b.WriteByte(c)
			}
		case c == '{':
			e.depth++
		case c == '}':
			if e.depth > 0 {
				e.depth--
			}
		case e.depth == 0:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (e *extractor) flush() {
	if e.name == "" {
		e.frags = nil
		return
	}
	if _, exists := e.rs.index[e.name]; !exists {
		r := &Rule{
			Name: e.name,
			Body: strings.Join(e.frags, " "),
		}
		e.rs.rules = append(e.rs.rules, r)
		e.rs.index[r.Name] = r
	}
	e.name = ""
	e.frags = nil
}

// splitRuleHeader recognizes `name: ...`, `name[type]: ...`, and
// `name (flag): ...` headers and returns the rule name and the first
// body fragment after the colon. A line beginning with | is always an
// alternative continuation, never a header.
func splitRuleHeader(content string) (string, string, bool) {
	s := strings.TrimSpace(content)
	if s == "" || s[0] == '|' || !isIDHead(s[0]) {
		return "", "", false
	}
	j := 1
	for j < len(s) && isIDChar(s[j]) {
		j++
	}
	name := s[:j]
	r := s[j:]
	if strings.HasPrefix(r, "[") {
		depth := 0
		k := 0
		for ; k < len(r); k++ {
			if r[k] == '[' {
				depth++
			} else if r[k] == ']' {
				depth--
				if depth == 0 {
					k++
					break
				}
			}
		}
		if depth != 0 {
			return "", "", false
		}
		r = r[k:]
	}
	r = strings.TrimLeft(r, " \t")
	if strings.HasPrefix(r, "(") {
		k := strings.IndexByte(r, ')')
		if k < 0 {
			return "", "", false
		}
		r = strings.TrimLeft(r[k+1:], " \t")
	}
	if !strings.HasPrefix(r, ":") {
		return "", "", false
	}
	return name, r[1:], true
}
