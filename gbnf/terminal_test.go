package gbnf

import (
	"strings"
	"testing"

	"github.com/cinfer/gram2gbnf/peg"
)

func TestRuleName(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "expr", want: "expr"},
		{src: "del_stmt", want: "del-stmt"},
		{src: "FSTRING_START", want: "fstring-start"},
	}
	for _, tt := range tests {
		if got := RuleName(tt.src); got != tt.want {
			t.Errorf("unexpected rule name for %v; want: %v, got: %v", tt.src, tt.want, got)
		}
	}
	if got := TerminalRuleName("FSTRING_START"); got != "tok-fstring-start" {
		t.Errorf("unexpected terminal rule name; want: tok-fstring-start, got: %v", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "+", want: `"+"`},
		{src: `\`, want: `"\\"`},
		{src: `"`, want: `"\""`},
		{src: "\n", want: `"\n"`},
		{src: "\r\t", want: `"\r\t"`},
		{src: "\x01", want: `""`},
		{src: "del", want: `"del"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.src); got != tt.want {
			t.Errorf("unexpected quoting for %q; want: %v, got: %v", tt.src, tt.want, got)
		}
	}
}

func TestTerminalRules(t *testing.T) {
	table := peg.LoadTokenTable(strings.NewReader("PLUS '+'\nNAME\n"))

	lines := TerminalRules(table, []string{"PLUS", "NAME", "WEIRD"})

	want := []string{
		`tok-dedent ::= ""`,
		`tok-indent ::= ws ws*`,
		`tok-name ::= [a-zA-Z_] [a-zA-Z0-9_]*`,
		`tok-newline ::= "\n" | "\r\n"`,
		`tok-number ::= "-"? [0-9]+ ("." [0-9]+)?`,
		`tok-plus ::= "+"`,
		`tok-string ::= "\"\"\"" tq-char* "\"\"\"" | "'''" tsq-char* "'''" | "\"" dq-char* "\"" | "'" sq-char* "'"`,
		`tok-weird ::= [^\r\n]+`,
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected production count; want: %v, got: %v (%v)", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("unexpected production at %v; want: %q, got: %q", i, w, lines[i])
		}
	}
}

// A terminal the lexicon defines by an exact string must never fall
// back to a builtin pattern.
func TestTerminalRules_LiteralWins(t *testing.T) {
	table := peg.LoadTokenTable(strings.NewReader("NAME 'n'\n"))
	for _, line := range TerminalRules(table, nil) {
		if strings.HasPrefix(line, "tok-name ") {
			if line != `tok-name ::= "n"` {
				t.Fatalf("literal must win over the builtin pattern; got: %q", line)
			}
			return
		}
	}
	t.Fatalf("tok-name production not emitted")
}

// A terminal declared with an empty literal matches the empty string
// rather than the unrestricted fallback pattern.
func TestTerminalRules_EmptyLiteral(t *testing.T) {
	table := peg.LoadTokenTable(strings.NewReader("TYPE_IGNORE ''\n"))
	for _, line := range TerminalRules(table, []string{"TYPE_IGNORE"}) {
		if strings.HasPrefix(line, "tok-type-ignore ") {
			if line != `tok-type-ignore ::= ""` {
				t.Fatalf("an empty literal must yield the empty string; got: %q", line)
			}
			return
		}
	}
	t.Fatalf("tok-type-ignore production not emitted")
}
