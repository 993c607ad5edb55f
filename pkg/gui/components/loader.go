package components

import (
	"sync/atomic"
	"time"

	"throbber/pkg/gui/buffer"
	"throbber/pkg/symbols"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLoaderInterval blinks the default cursor every 500ms.
const DefaultLoaderInterval = 500 * time.Millisecond

var lastLoaderID int64

func nextLoaderID() int {
	return int(atomic.AddInt64(&lastLoaderID, 1))
}

// LoaderTickMsg advances the loader whose ID matches.
type LoaderTickMsg struct {
	ID   int
	Time time.Time
}

// Loader renders an animated throbber with a label inside a Bubble Tea
// program. It owns its State and advances it once per tick.
type Loader struct {
	id       int
	throbber Throbber
	state    *State
	label    string
	interval time.Duration
	stopped  bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithThrobber replaces the default blinking cursor throbber.
func WithThrobber(t Throbber) LoaderOption {
	return func(l *Loader) {
		l.throbber = t
	}
}

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithState lets the caller share an existing animation state.
func WithState(s *State) LoaderOption {
	return func(l *Loader) {
		if s != nil {
			l.state = s
		}
	}
}

// NewLoader returns a loader configured with the blinking cursor throbber.
func NewLoader(label string, opts ...LoaderOption) *Loader {
	l := &Loader{
		id:       nextLoaderID(),
		throbber: New().ThrobberSet(symbols.BlinkingCursor),
		state:    NewState(nil),
		label:    label,
		interval: DefaultLoaderInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID identifies the loader's tick messages.
func (l *Loader) ID() int {
	if l == nil {
		return 0
	}
	return l.id
}

// State returns the loader's animation state.
func (l *Loader) State() *State {
	if l == nil {
		return nil
	}
	return l.state
}

// SetLabel updates the loader label.
func (l *Loader) SetLabel(label string) {
	if l == nil {
		return
	}
	l.label = label
}

// TickCmd starts the animation.
func (l *Loader) TickCmd() tea.Cmd {
	if l == nil {
		return nil
	}
	l.stopped = false
	return l.tick()
}

// Stop halts the animation after the tick in flight.
func (l *Loader) Stop() {
	if l == nil {
		return
	}
	l.stopped = true
}

func (l *Loader) tick() tea.Cmd {
	id := l.id
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return LoaderTickMsg{ID: id, Time: t}
	})
}

// Update advances the animation when receiving this loader's tick messages.
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	if l == nil {
		return nil
	}

	switch tick := msg.(type) {
	case LoaderTickMsg:
		if tick.ID != l.id || l.stopped {
			return nil
		}
		l.state.Advance()
		return l.tick()
	}

	return nil
}

// View renders the throbber and label.
func (l *Loader) View() string {
	if l == nil {
		return ""
	}

	t := l.throbber
	if l.label != "" {
		t = t.Label(l.label)
	}
	glyphWidth := buffer.StringWidth(t.Symbol(l.state))
	width := glyphWidth + 1 + buffer.StringWidth(l.label)
	if l.label == "" {
		width = glyphWidth
	}
	return t.View(l.state, width)
}
