package main

import (
	"bytes"
	"strings"
	"testing"

	"throbber/pkg/symbols"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("THROBBER_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOncePrintsFullGlyphAndLabel(t *testing.T) {
	out, err := execute(t, "once", "--set", "ascii", "--mode", "full", "--label", "hi", "--width", "10")
	require.NoError(t, err)
	require.Equal(t, "* hi\n", out)
}

func TestOnceTruncatesLabelToWidth(t *testing.T) {
	out, err := execute(t, "once", "--set", "ascii", "--mode", "full", "--label", "a long label", "--width", "6")
	require.NoError(t, err)
	require.Equal(t, "* a lo\n", out)
}

func TestOnceSeedIsRepeatable(t *testing.T) {
	first, err := execute(t, "once", "--set", "clock", "--seed", "42", "--width", "4")
	require.NoError(t, err)
	second, err := execute(t, "once", "--set", "clock", "--seed", "42", "--width", "4")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Contains(t, symbols.Clock.Symbols, strings.TrimSpace(first))
}

func TestOnceRejectsUnknownSetAndMode(t *testing.T) {
	_, err := execute(t, "once", "--set", "nope")
	require.ErrorContains(t, err, "unknown symbol set")

	_, err = execute(t, "once", "--mode", "sideways")
	require.ErrorContains(t, err, "unknown mode")
}

func TestListShowsEveryNamedSet(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range symbols.Names() {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "FRAMES")

	out, err = execute(t, "list", "--names")
	require.NoError(t, err)
	require.Equal(t, symbols.Names(), strings.Fields(out))
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "throbber-demo dev\n", out)
}

func TestRootRejectsTooShortTick(t *testing.T) {
	_, err := execute(t, "--tick", "5ms")
	require.ErrorContains(t, err, "too short")
}

func TestRootRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "--mode", "sideways")
	require.ErrorContains(t, err, "unknown mode")
}
