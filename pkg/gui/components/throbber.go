package components

import (
	"throbber/pkg/gui/buffer"
	"throbber/pkg/symbols"

	"github.com/charmbracelet/lipgloss"
)

// Surface is the cell surface a Throbber renders into. *buffer.Buffer
// implements it.
type Surface interface {
	SetStyle(area buffer.Rect, style lipgloss.Style)
	SetString(x, y int, s string, style lipgloss.Style, maxWidth int) (int, int)
}

// Throbber is a compact widget that shows activity: one animated glyph
// followed by an optional label.
//
// Configure it with the chained setters, each of which returns a modified
// copy:
//
//	components.New().
//		ThrobberStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))).
//		ThrobberSet(symbols.Clock).
//		Label("Running...")
type Throbber struct {
	label         *buffer.Span
	style         lipgloss.Style
	throbberStyle lipgloss.Style
	set           symbols.Set
	use           symbols.WhichUse
	rng           Rand
}

// New returns a spinning BrailleSix throbber without a label.
func New() Throbber {
	return Throbber{
		style:         lipgloss.NewStyle(),
		throbberStyle: lipgloss.NewStyle(),
		set:           symbols.BrailleSix,
		use:           symbols.Spin,
	}
}

// Label sets an unstyled label.
func (t Throbber) Label(text string) Throbber {
	span := buffer.Raw(text)
	t.label = &span
	return t
}

// LabelSpan sets a label with its own style.
func (t Throbber) LabelSpan(span buffer.Span) Throbber {
	t.label = &span
	return t
}

// Style sets the style applied to the whole area.
func (t Throbber) Style(style lipgloss.Style) Throbber {
	t.style = style
	return t
}

// ThrobberStyle sets the style of the glyph.
func (t Throbber) ThrobberStyle(style lipgloss.Style) Throbber {
	t.throbberStyle = style
	return t
}

// ThrobberSet selects the symbol set.
func (t Throbber) ThrobberSet(set symbols.Set) Throbber {
	t.set = set
	return t
}

// UseType selects which glyph of the set is shown.
func (t Throbber) UseType(use symbols.WhichUse) Throbber {
	t.use = use
	return t
}

// Rand sets the random source used when rendering without a state.
func (t Throbber) Rand(rng Rand) Throbber {
	t.rng = rng
	return t
}

// Set returns the configured symbol set.
func (t Throbber) Set() symbols.Set {
	return t.set
}

// Use returns the configured use mode.
func (t Throbber) Use() symbols.WhichUse {
	return t.use
}

// Render draws a throbber at a random frame. Use it for one-shot output where
// no animation state is kept.
func (t Throbber) Render(area buffer.Rect, surf Surface) {
	t.RenderStateful(area, surf, nil)
}

// RenderStateful draws the frame selected by state into area. In Spin mode the
// state is normalized against the set's length. A nil state renders a random
// frame.
//
// An area less than one row tall is left untouched, an empty frame list
// falls back to the set's empty glyph and a label that does not fit is cut at
// the area's right edge.
func (t Throbber) RenderStateful(area buffer.Rect, surf Surface, state *State) {
	if area.Height < 1 {
		return
	}
	surf.SetStyle(area, t.style)

	glyph := t.Symbol(state)
	col, row := surf.SetString(area.Left(), area.Top(), glyph+" ", t.throbberStyle, area.Width)

	if t.label == nil || col >= area.Right() {
		return
	}
	surf.SetString(col, row, t.label.Content, t.label.Style, area.Right()-col)
}

// Symbol returns the glyph RenderStateful would draw for state. In Spin mode
// it normalizes state in place against the set's length, so the state's index
// is left in [0, Len()). Full and Empty modes leave state untouched. A nil
// state picks a random frame.
func (t Throbber) Symbol(state *State) string {
	switch t.use {
	case symbols.Full:
		return t.set.Full
	case symbols.Empty:
		return t.set.Empty
	default:
		if state == nil {
			state = t.randomState()
		}
		n := t.set.Len()
		state.Normalize(n)
		if i := state.Index(); i >= 0 && i < n {
			return t.set.Symbols[i]
		}
		return t.set.Empty
	}
}

func (t Throbber) randomState() *State {
	state := NewState(t.rng)
	state.Step(0)
	return state
}

// View renders the throbber into a single row of width cells and returns it
// as a styled string.
func (t Throbber) View(state *State, width int) string {
	if width <= 0 {
		return ""
	}
	buf := buffer.New(buffer.NewRect(0, 0, width, 1))
	t.RenderStateful(buf.Area(), buf, state)
	return buf.Render()
}
