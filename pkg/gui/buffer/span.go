package buffer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Widths are measured without East Asian ambiguous widening so box drawing and
// braille glyphs stay one cell wide regardless of the user's locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return widthCond.StringWidth(s)
}

// RuneWidth returns the number of cells r occupies.
func RuneWidth(r rune) int {
	return widthCond.RuneWidth(r)
}

// Span is a run of text rendered with a single style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Raw returns an unstyled span.
func Raw(content string) Span {
	return Span{Content: content, Style: lipgloss.NewStyle()}
}

// Styled returns a span rendered with style.
func Styled(content string, style lipgloss.Style) Span {
	return Span{Content: content, Style: style}
}

// Width returns the display width of the span's content.
func (s Span) Width() int {
	return StringWidth(s.Content)
}
