package peg

import (
	"strings"
	"testing"
)

func TestExtractRules(t *testing.T) {
	rule := func(name, body string) *Rule {
		return &Rule{
			Name: name,
			Body: body,
		}
	}

	tests := []struct {
		caption string
		src     string
		rules   []*Rule
	}{
		{
			caption: "a rule header is an identifier followed by a colon",
			src: `expr: expr PLUS term | term
term: NAME
`,
			rules: []*Rule{
				rule("expr", "expr PLUS term | term"),
				rule("term", "NAME"),
			},
		},
		{
			caption: "continuation lines starting with | accumulate into the current rule",
			src: `a:
    | b c
    | d
`,
			rules: []*Rule{
				rule("a", "| b c | d"),
			},
		},
		{
			caption: "comments are stripped before header recognition",
			src: `# leading comment
a: b # trailing comment
`,
			rules: []*Rule{
				rule("a", "b"),
			},
		},
		{
			caption: "a semantic action may span lines and contain braces inside string literals",
			src: `a: b { foo("}"); } c
    | d {
        bar('{');
    } e
b: X
`,
			rules: []*Rule{
				rule("a", "b  c | d e"),
				rule("b", "X"),
			},
		},
		{
			caption: "quoted spans protect comment markers and braces in rule bodies",
			src: `x: '#' y '{'
y: NAME
`,
			rules: []*Rule{
				rule("x", "'#' y '{'"),
				rule("y", "NAME"),
			},
		},
		{
			caption: "a triple-quoted directive block is discarded wholesale",
			src: `@subheader '''
header: looks { like } rules
'''
start: NAME
@memoize
`,
			rules: []*Rule{
				rule("start", "NAME"),
			},
		},
		{
			caption: "a directive closing its triple quote on the same line is discarded alone",
			src: `@header '''foo'''
a: b
`,
			rules: []*Rule{
				rule("a", "b"),
			},
		},
		{
			caption: "a header may carry a return-type annotation and a flag",
			src: `a[expr_ty] (memo): b
c[asdl_seq*]: d
`,
			rules: []*Rule{
				rule("a", "b"),
				rule("c", "d"),
			},
		},
		{
			caption: "the first declaration of a name wins",
			src: `a: b
a: c
`,
			rules: []*Rule{
				rule("a", "b"),
			},
		},
		{
			caption: "diagnostic rules are extracted but recognizable",
			src: `invalid_a: x
b: y
`,
			rules: []*Rule{
				rule("invalid_a", "x"),
				rule("b", "y"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			rs := ExtractRules(strings.NewReader(tt.src))
			rules := rs.Rules()
			if len(rules) != len(tt.rules) {
				t.Fatalf("unexpected rule count; want: %v, got: %v", len(tt.rules), len(rules))
			}
			for i, want := range tt.rules {
				if rules[i].Name != want.Name {
					t.Errorf("unexpected rule name; want: %v, got: %v", want.Name, rules[i].Name)
				}
				if rules[i].Body != want.Body {
					t.Errorf("unexpected body for %v; want: %q, got: %q", want.Name, want.Body, rules[i].Body)
				}
				if !rs.Contains(want.Name) {
					t.Errorf("the rule set must contain %v", want.Name)
				}
			}
		})
	}
}

func TestRuleSet_Start(t *testing.T) {
	rs := ExtractRules(strings.NewReader(`invalid_a: x
b: y
`))
	if rs.Start() != "b" {
		t.Fatalf("the start rule must skip diagnostic rules; want: b, got: %v", rs.Start())
	}

	empty := ExtractRules(strings.NewReader("# nothing\n"))
	if empty.Start() != "" {
		t.Fatalf("an empty grammar has no start rule; got: %v", empty.Start())
	}
}

func TestIsDiagnosticRule(t *testing.T) {
	if !IsDiagnosticRule("invalid_arguments") {
		t.Errorf("invalid_arguments must be recognized as a diagnostic rule")
	}
	if IsDiagnosticRule("arguments") {
		t.Errorf("arguments must not be recognized as a diagnostic rule")
	}
}
