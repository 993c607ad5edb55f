package icons

import (
	"testing"

	"throbber/pkg/symbols"
)

func TestIconsFollowNerdFontOverride(t *testing.T) {
	SetNerdFonts(false)
	if got := Status(true); got != Paused.Fallback {
		t.Fatalf("Status(true) = %q want %q", got, Paused.Fallback)
	}
	if got := Mode(symbols.Full); got != ModeFull.Fallback {
		t.Fatalf("Mode(Full) = %q want %q", got, ModeFull.Fallback)
	}

	SetNerdFonts(true)
	if got := Status(false); got != Running.NerdFont {
		t.Fatalf("Status(false) = %q want %q", got, Running.NerdFont)
	}
	if got := Mode(symbols.Spin); got != ModeSpin.NerdFont {
		t.Fatalf("Mode(Spin) = %q want %q", got, ModeSpin.NerdFont)
	}
}
