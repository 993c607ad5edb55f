package common

import (
	"strings"

	"throbber/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width  int
	help   help.Model
	keyMap *GlobalKeyMap
	status string
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor))

	footerStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.AccentColor))
)

// NewFooter creates a new footer component
func NewFooter(keyMap *GlobalKeyMap) *Footer {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerSeparatorStyle
	h.Styles.FullKey = footerKeyStyle
	h.Styles.FullDesc = footerDescStyle
	h.Styles.FullSeparator = footerSeparatorStyle

	return &Footer{
		help:   h,
		keyMap: keyMap,
	}
}

// SetSize updates the footer width
func (f *Footer) SetSize(width int) {
	f.width = width
	f.help.Width = width
}

// SetShowAll switches between the one-line and the full help
func (f *Footer) SetShowAll(show bool) {
	f.help.ShowAll = show
}

// ShowAll reports whether the full help is shown
func (f *Footer) ShowAll() bool {
	return f.help.ShowAll
}

// SetStatus sets the text shown at the right end of the footer
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// Height returns the number of rows View will produce
func (f *Footer) Height() int {
	if f.width == 0 || f.keyMap == nil {
		return 0
	}
	return lipgloss.Height(f.View())
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 || f.keyMap == nil {
		return ""
	}

	shortcuts := f.help.View(f.keyMap)
	if f.help.ShowAll {
		return shortcuts
	}

	status := footerStatusStyle.Render(f.status)
	statusWidth := ansi.PrintableRuneWidth(status)
	shortcutsWidth := ansi.PrintableRuneWidth(shortcuts)

	// Status wins when space is short; shortcuts are cut with an ellipsis.
	room := f.width - statusWidth - 1
	if f.status == "" {
		room = f.width
	}
	if room <= 0 {
		return truncate.StringWithTail(status, uint(f.width), "…")
	}
	if shortcutsWidth > room {
		shortcuts = truncate.StringWithTail(shortcuts, uint(room), "…")
		shortcutsWidth = ansi.PrintableRuneWidth(shortcuts)
	}
	if f.status == "" {
		return shortcuts
	}

	gap := max(f.width-shortcutsWidth-statusWidth, 1)
	return shortcuts + strings.Repeat(" ", gap) + status
}
