package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinfer/gram2gbnf/convert"
	"github.com/cinfer/gram2gbnf/gbnf"
	"github.com/cinfer/gram2gbnf/peg"
)

var rootFlags = struct {
	start *string
	quiet *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "gram2gbnf <grammar> <tokens> <output>",
	Short: "Convert a PEG grammar into a GBNF grammar for constrained decoding",
	Long: `gram2gbnf converts a pegen-style PEG grammar into the simplified GBNF
dialect a constrained-decoding engine consumes. The conversion is
best-effort: lookahead, cut, and semantic actions are dropped, so the
emitted grammar accepts a superset of the source language.`,
	Example:       `  gram2gbnf python.gram Tokens python.gbnf`,
	Args:          cobra.ExactArgs(3),
	RunE:          runConvert,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.start = rootCmd.Flags().StringP("start", "s", "", "start rule (default: the grammar's first rule)")
	rootFlags.quiet = rootCmd.Flags().BoolP("quiet", "q", false, "suppress conversion warnings")
}

func Execute() error {
	return rootCmd.Execute()
}

func runConvert(cmd *cobra.Command, args []string) error {
	grmSrc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}
	tokSrc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("cannot read token table: %w", err)
	}

	rules := peg.ExtractRules(bytes.NewReader(grmSrc))
	table := peg.LoadTokenTable(bytes.NewReader(tokSrc))

	start := *rootFlags.start
	if start == "" {
		start = rules.Start()
		if start == "" {
			return fmt.Errorf("%v contains no rules", args[0])
		}
	} else if !rules.Contains(start) || peg.IsDiagnosticRule(start) {
		return fmt.Errorf("start rule %v is not defined in %v", start, args[0])
	}

	c := convert.New(rules, table)
	converted := c.Convert()

	if !*rootFlags.quiet {
		for _, w := range c.Warnings() {
			fmt.Fprintln(os.Stderr, w)
		}
	}

	out := gbnf.Render(start, converted, table, c.UsedTerminals())
	err = os.WriteFile(args[2], []byte(out), 0644)
	if err != nil {
		return fmt.Errorf("cannot write grammar: %w", err)
	}
	return nil
}
