package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings of the throbber gallery.
type GlobalKeyMap struct {
	Quit        key.Binding // q, Ctrl+C - quit application
	Keybindings key.Binding // ? - toggle full help

	// Animation control
	Pause      key.Binding // space - pause or resume ticking
	StepNext   key.Binding // →, l - step every throbber forward
	StepPrev   key.Binding // ←, h - step every throbber back
	RandomStep key.Binding // r - jump every throbber to a random frame
	CycleMode  key.Binding // m - cycle full / empty / spin

	// Grid
	MoreColumns  key.Binding // + - add a grid column
	FewerColumns key.Binding // - - remove a grid column
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),

		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		StepNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "step"),
		),
		StepPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "step back"),
		),
		RandomStep: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),

		MoreColumns: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more columns"),
		),
		FewerColumns: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer columns"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.StepNext, k.CycleMode, k.Keybindings, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.StepNext, k.StepPrev, k.RandomStep},
		{k.CycleMode, k.MoreColumns, k.FewerColumns},
		{k.Keybindings, k.Quit},
	}
}

// GlobalKeys is the static instance of global keybindings
var GlobalKeys = NewGlobalKeyMap()
