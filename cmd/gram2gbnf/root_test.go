package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	grmPath := filepath.Join(dir, "test.gram")
	tokPath := filepath.Join(dir, "Tokens")
	outPath := filepath.Join(dir, "test.gbnf")

	err := os.WriteFile(grmPath, []byte(`expr: expr PLUS term | term
term: NAME
`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(tokPath, []byte("NAME\nPLUS '+'\n"), 0600)
	require.NoError(t, err)

	rootCmd.SetArgs([]string{grmPath, tokPath, outPath})
	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(out), "root ::= expr")
	require.Contains(t, string(out), "expr ::= fallback")
	require.Contains(t, string(out), `tok-plus ::= "+"`)

	rootCmd.SetArgs([]string{grmPath, tokPath, outPath})
	require.NoError(t, rootCmd.Execute())
	again, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, string(out), string(again))
}

func TestRunConvert_UnknownStart(t *testing.T) {
	dir := t.TempDir()
	grmPath := filepath.Join(dir, "test.gram")
	tokPath := filepath.Join(dir, "Tokens")
	outPath := filepath.Join(dir, "test.gbnf")

	err := os.WriteFile(grmPath, []byte("term: NAME\ninvalid_term: NAME NAME\n"), 0600)
	require.NoError(t, err)
	err = os.WriteFile(tokPath, []byte("NAME\n"), 0600)
	require.NoError(t, err)

	defer func() {
		*rootFlags.start = ""
	}()

	rootCmd.SetArgs([]string{"--start", "missing", grmPath, tokPath, outPath})
	require.ErrorContains(t, rootCmd.Execute(), "missing")
	_, err = os.Stat(outPath)
	require.True(t, os.IsNotExist(err), "no output must be written for an unknown start rule")

	*rootFlags.start = "invalid_term"
	rootCmd.SetArgs([]string{grmPath, tokPath, outPath})
	require.Error(t, rootCmd.Execute())
}

func TestRunConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{
		filepath.Join(dir, "nope.gram"),
		filepath.Join(dir, "nope.tokens"),
		filepath.Join(dir, "out.gbnf"),
	})
	require.Error(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "out.gbnf"))
	require.True(t, os.IsNotExist(err), "no partial output must be written")
}
