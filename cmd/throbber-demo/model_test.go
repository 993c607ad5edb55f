package main

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"
	"time"

	"throbber/pkg/common"
	"throbber/pkg/config"
	"throbber/pkg/gui/components"
	"throbber/pkg/symbols"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testPrefs() config.DemoState {
	return config.DemoState{Columns: 3, TickMillis: 100, Mode: "spin"}
}

func newTestModel(t *testing.T) model {
	t.Helper()
	m := newModel(testPrefs(), rand.New(rand.NewPCG(1, 2)))
	m.save = func(config.DemoState) error { return nil }
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func indexes(m model) []int {
	out := make([]int, len(m.states))
	for i, s := range m.states {
		out[i] = s.Index()
	}
	return out
}

func TestViewShowsLoaderUntilSized(t *testing.T) {
	m := newTestModel(t)
	require.Contains(t, m.View(), "starting...")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
	require.True(t, m.ready)

	view := m.View()
	require.Contains(t, view, "throbber gallery")
	require.Contains(t, view, "ASCII")
	require.Contains(t, view, "BRAILLE_SIX")
	require.Contains(t, view, "quit")
	require.Equal(t, 12, lipgloss.Height(view))
}

func TestTickAdvancesUnlessPaused(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	m, cmd := send(t, m, tickMsg(time.Now()))
	require.NotNil(t, cmd)
	for i, idx := range indexes(m) {
		require.Equal(t, 1, idx, "state %d", i)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.paused)

	m, cmd = send(t, m, tickMsg(time.Now()))
	require.NotNil(t, cmd, "ticking continues while paused")
	for _, idx := range indexes(m) {
		require.Equal(t, 1, idx)
	}
}

func TestStepKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, runes("l"))
	require.Equal(t, 2, m.states[0].Index())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 1, m.states[0].Index())

	m, _ = send(t, m, runes("h"))
	m, _ = send(t, m, runes("h"))
	require.Equal(t, -1, m.states[0].Index())

	before := indexes(m)
	m, _ = send(t, m, runes("r"))
	require.NotEqual(t, before, indexes(m))
}

func TestModeAndColumnKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	require.Equal(t, symbols.Spin, m.use)

	m, _ = send(t, m, runes("m"))
	require.Equal(t, symbols.Full, m.use)

	m, _ = send(t, m, runes("+"))
	require.Equal(t, 4, m.layout.GetColumns())

	for range 10 {
		m, _ = send(t, m, runes("-"))
	}
	require.Equal(t, 1, m.layout.GetColumns())

	view := m.View()
	require.Contains(t, view, "* ASCII")
}

func TestHelpToggleGrowsFooter(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	short := m.layout.Footer().Height

	m, _ = send(t, m, runes("?"))
	require.True(t, m.footer.ShowAll())
	require.Greater(t, m.layout.Footer().Height, short)
	require.Equal(t, 20, lipgloss.Height(m.View()))
}

func TestQuitSavesPreferences(t *testing.T) {
	m := newTestModel(t)

	var saved *config.DemoState
	m.save = func(d config.DemoState) error {
		saved = &d
		return nil
	}

	m, _ = send(t, m, runes("+"))
	m, _ = send(t, m, runes("m"))
	_, cmd := send(t, m, runes("q"))

	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)

	require.NotNil(t, saved)
	require.Equal(t, config.DemoState{Columns: 4, TickMillis: 100, Mode: "full"}, *saved)
}

func TestLoaderTicksStopAfterResize(t *testing.T) {
	m := newTestModel(t)
	id := m.loader.ID()

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Nil(t, cmd)

	m, cmd = send(t, m, components.LoaderTickMsg{ID: id})
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.loader.State().Index())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	_, cmd = send(t, m, components.LoaderTickMsg{ID: id})
	require.Nil(t, cmd)
	require.False(t, strings.Contains(m.View(), "starting..."))
}

func TestModelUsesSharedKeyMap(t *testing.T) {
	m := newTestModel(t)
	require.Same(t, common.GlobalKeys, m.keys)
}
