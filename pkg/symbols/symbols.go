// Package symbols holds the glyph sets a throbber animates through.
//
// Each Set carries a glyph for the "full" state, one for the "empty" state and
// the ordered frames used while spinning. The sets are plain data and must be
// treated as read-only.
package symbols

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Set is one throbber symbol set.
type Set struct {
	Full    string
	Empty   string
	Symbols []string
}

// Len returns the number of animation frames.
func (s Set) Len() int {
	return len(s.Symbols)
}

// Spinner converts the set into a bubbles spinner so it can be used with
// spinner.Model. A zero fps falls back to ten frames per second.
func (s Set) Spinner(fps time.Duration) spinner.Spinner {
	if fps <= 0 {
		fps = time.Second / 10
	}
	frames := s.Symbols
	if len(frames) == 0 {
		frames = []string{s.Empty}
	}
	return spinner.Spinner{
		Frames: append([]string(nil), frames...),
		FPS:    fps,
	}
}

// WhichUse selects which glyph of a Set gets rendered.
type WhichUse int

const (
	// Full always renders Set.Full.
	Full WhichUse = iota
	// Empty always renders Set.Empty.
	Empty
	// Spin steps through Set.Symbols.
	Spin
)

// String returns the string representation of the use mode
func (w WhichUse) String() string {
	switch w {
	case Full:
		return "full"
	case Empty:
		return "empty"
	case Spin:
		return "spin"
	default:
		return "unknown"
	}
}

// Next cycles Full -> Empty -> Spin -> Full.
func (w WhichUse) Next() WhichUse {
	switch w {
	case Full:
		return Empty
	case Empty:
		return Spin
	default:
		return Full
	}
}

// ParseWhichUse maps "full", "empty" or "spin" to a WhichUse.
func ParseWhichUse(s string) (WhichUse, bool) {
	switch normalizeName(s) {
	case "full":
		return Full, true
	case "empty":
		return Empty, true
	case "spin":
		return Spin, true
	}
	return Spin, false
}

const (
	// wideBlank keeps the empty glyph as wide as the double-width sets.
	wideBlank  = "　"
	oghamSpace = "\u1680"
)

var (
	ASCII = Set{
		Full:    "*",
		Empty:   " ",
		Symbols: []string{"|", "/", "-", "\\"},
	}

	BoxDrawing = Set{
		Full:    "┼",
		Empty:   wideBlank,
		Symbols: []string{"│", "╱", "─", "╲"},
	}

	Arrow = Set{
		Full:    "↔",
		Empty:   wideBlank,
		Symbols: []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"},
	}

	DoubleArrow = Set{
		Full:    "⇔",
		Empty:   wideBlank,
		Symbols: []string{"⇑", "⇗", "⇒", "⇘", "⇓", "⇙", "⇐", "⇖"},
	}

	VerticalBlock = Set{
		Full:    "█",
		Empty:   wideBlank,
		Symbols: []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
	}

	HorizontalBlock = Set{
		Full:    "█",
		Empty:   wideBlank,
		Symbols: []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
	}

	QuadrantBlock = Set{
		Full:    "█",
		Empty:   wideBlank,
		Symbols: []string{"▝", "▗", "▖", "▘"},
	}

	QuadrantBlockCrack = Set{
		Full:    "█",
		Empty:   wideBlank,
		Symbols: []string{"▙", "▛", "▜", "▟"},
	}

	WhiteSquare = Set{
		Full:    "⊞",
		Empty:   wideBlank,
		Symbols: []string{"◳", "◲", "◱", "◰"},
	}

	WhiteCircle = Set{
		Full:    "⊕",
		Empty:   wideBlank,
		Symbols: []string{"◷", "◶", "◵", "◴"},
	}

	BlackCircle = Set{
		Full:    "●",
		Empty:   wideBlank,
		Symbols: []string{"◑", "◒", "◐", "◓"},
	}

	Clock = Set{
		Full:  "🕛",
		Empty: wideBlank,
		Symbols: []string{
			"🕛", "🕧", "🕐", "🕜", "🕑", "🕝", "🕒", "🕞", "🕓", "🕟", "🕔", "🕠", "🕕", "🕡",
			"🕖", "🕢", "🕗", "🕣", "🕘", "🕤", "🕙", "🕥", "🕚", "🕦",
		},
	}

	BrailleOne = Set{
		Full:    "⠿",
		Empty:   wideBlank,
		Symbols: []string{"⠈", "⠐", "⠠", "⠄", "⠂", "⠁"},
	}

	BrailleSix = Set{
		Full:    "⠿",
		Empty:   wideBlank,
		Symbols: []string{"⠷", "⠯", "⠟", "⠻", "⠽", "⠾"},
	}

	BrailleEight = Set{
		Full:    "⣿",
		Empty:   wideBlank,
		Symbols: []string{"⣷", "⣯", "⣟", "⡿", "⢿", "⣻", "⣽", "⣾"},
	}

	BrailleDouble = Set{
		Full:    "⠿",
		Empty:   wideBlank,
		Symbols: []string{"⠘", "⠰", "⠤", "⠆", "⠃", "⠉"},
	}

	BrailleSixDouble = Set{
		Full:    "⠿",
		Empty:   wideBlank,
		Symbols: []string{"⠧", "⠏", "⠛", "⠹", "⠼", "⠶"},
	}

	BrailleEightDouble = Set{
		Full:    "⣿",
		Empty:   wideBlank,
		Symbols: []string{"⣧", "⣏", "⡟", "⠿", "⢻", "⣹", "⣼", "⣶"},
	}

	OghamA = Set{
		Full:    "ᚔ",
		Empty:   wideBlank,
		Symbols: []string{oghamSpace, "ᚐ", "ᚑ", "ᚒ", "ᚓ", "ᚔ"},
	}

	OghamB = Set{
		Full:    "ᚅ",
		Empty:   wideBlank,
		Symbols: []string{oghamSpace, "ᚁ", "ᚂ", "ᚃ", "ᚄ", "ᚅ"},
	}

	OghamC = Set{
		Full:    "ᚊ",
		Empty:   wideBlank,
		Symbols: []string{oghamSpace, "ᚆ", "ᚇ", "ᚈ", "ᚉ", "ᚊ"},
	}

	Parenthesis = Set{
		Full:    "∙",
		Empty:   wideBlank,
		Symbols: []string{"◜", "◠", "◝", "◞", "◡", "◟"},
	}

	Canadian = Set{
		Full:    "᐀",
		Empty:   wideBlank,
		Symbols: []string{"ᔐ", "ᯇ", "ᔑ", "ᯇ"},
	}

	// BlinkingCursor is a simple on/off cursor.
	BlinkingCursor = Set{
		Full:    "█",
		Empty:   "░",
		Symbols: []string{"█", "░"},
	}
)
