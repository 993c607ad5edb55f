package symbols

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogSetsHaveFrames(t *testing.T) {
	seen := map[string]bool{}
	for _, ns := range Catalog {
		require.NotEmpty(t, ns.Name)
		require.False(t, seen[ns.Name], "duplicate catalog name %s", ns.Name)
		seen[ns.Name] = true

		require.NotEmpty(t, ns.Set.Full, ns.Name)
		require.NotEmpty(t, ns.Set.Empty, ns.Name)
		require.NotZero(t, ns.Set.Len(), ns.Name)
		for i, frame := range ns.Set.Symbols {
			require.NotEmpty(t, frame, "%s frame %d", ns.Name, i)
		}
	}
}

func TestLookupAcceptsSpellings(t *testing.T) {
	for _, name := range []string{"BRAILLE_SIX", "braille-six", "BrailleSix", " braille six "} {
		set, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, BrailleSix, set, name)
	}

	_, ok := Lookup("no-such-set")
	require.False(t, ok)

	_, ok = Lookup("")
	require.False(t, ok)
}

func TestNamesFollowCatalogOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, len(Catalog))
	require.Equal(t, "ASCII", names[0])
	require.Equal(t, "CLOCK", names[11])
}

func TestWhichUseParseAndCycle(t *testing.T) {
	for _, w := range []WhichUse{Full, Empty, Spin} {
		parsed, ok := ParseWhichUse(w.String())
		require.True(t, ok)
		require.Equal(t, w, parsed)
	}

	_, ok := ParseWhichUse("sideways")
	require.False(t, ok)

	require.Equal(t, Empty, Full.Next())
	require.Equal(t, Spin, Empty.Next())
	require.Equal(t, Full, Spin.Next())
	require.Equal(t, "unknown", WhichUse(42).String())
}

func TestSpinnerCopiesFrames(t *testing.T) {
	s := ASCII.Spinner(0)
	require.Equal(t, time.Second/10, s.FPS)
	require.Equal(t, ASCII.Symbols, s.Frames)

	s.Frames[0] = "X"
	require.Equal(t, "|", ASCII.Symbols[0])

	degenerate := Set{Full: "#", Empty: "."}.Spinner(time.Second)
	require.Equal(t, []string{"."}, degenerate.Frames)
}
