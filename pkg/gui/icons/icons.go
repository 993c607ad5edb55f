// Package icons provides status icons for the demo, using Nerd Fonts when
// the terminal likely has them and plain Unicode otherwise.
package icons

import (
	"os"
	"strings"

	"throbber/pkg/symbols"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

var (
	Running = Icon{
		NerdFont: "\uf04b", // Nerd Font play
		Fallback: "▶",
	}

	Paused = Icon{
		NerdFont: "\uf04c", // Nerd Font pause
		Fallback: "‖",
	}

	ModeFull = Icon{
		NerdFont: "\uf111", // Nerd Font filled circle
		Fallback: "●",
	}

	ModeEmpty = Icon{
		NerdFont: "\uf10c", // Nerd Font empty circle
		Fallback: "○",
	}

	ModeSpin = Icon{
		NerdFont: "\uf110", // Nerd Font spinner
		Fallback: "↻",
	}
)

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Terminals that are commonly configured with a Nerd Font
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// Status returns the running or paused icon.
func Status(paused bool) string {
	if paused {
		return Paused.Get()
	}
	return Running.Get()
}

// Mode returns the icon for a use mode.
func Mode(use symbols.WhichUse) string {
	switch use {
	case symbols.Full:
		return ModeFull.Get()
	case symbols.Empty:
		return ModeEmpty.Get()
	default:
		return ModeSpin.Get()
	}
}
