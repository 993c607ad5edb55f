package main

import (
	"fmt"
	"time"

	"throbber/internal/debug"
	"throbber/pkg/common"
	"throbber/pkg/config"
	"throbber/pkg/gui/buffer"
	"throbber/pkg/gui/components"
	"throbber/pkg/gui/icons"
	"throbber/pkg/gui/layout"
	"throbber/pkg/gui/theme"
	"throbber/pkg/symbols"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const titleLabel = "throbber gallery, press ? for keys"

type tickMsg time.Time

var (
	titleThrobberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.DefaultThrobber)).
				Bold(true)

	titleLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.AccentColor)).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ThrobberRunning))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ThrobberPaused))
)

type model struct {
	layout *layout.Layout     // Grid of one cell per symbol set
	footer *common.Footer     // Key help and status line
	keys   *common.GlobalKeyMap
	loader *components.Loader // Shown until the first window size arrives

	states []*components.State // One animation state per catalog entry
	use    symbols.WhichUse
	tick   time.Duration
	paused bool
	ready  bool

	rng  components.Rand               // Random source for the title and random steps
	save func(config.DemoState) error // Persists preferences on quit
}

// newModel builds the gallery. A nil rng uses the process-wide source.
func newModel(prefs config.DemoState, rng components.Rand) model {
	prefs = prefs.Normalized()
	keys := common.GlobalKeys

	states := make([]*components.State, len(symbols.Catalog))
	for i := range states {
		states[i] = components.NewState(rng)
	}

	m := model{
		layout: layout.NewLayout(0, 0, prefs.Columns, len(symbols.Catalog)),
		footer: common.NewFooter(keys),
		keys:   keys,
		loader: components.NewLoader("starting..."),
		states: states,
		use:    prefs.UseMode(),
		tick:   prefs.Tick(),
		rng:    rng,
		save:   config.SetDemoState,
	}
	m.updateStatus()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loader.TickCmd(), m.tickCmd())
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) prefs() config.DemoState {
	return config.DemoState{
		Columns:    m.layout.GetColumns(),
		TickMillis: int(m.tick / time.Millisecond),
		Mode:       m.use.String(),
	}
}

func (m *model) updateStatus() {
	m.footer.SetStatus(fmt.Sprintf("%s %s %s %s", icons.Status(m.paused), icons.Mode(m.use), m.use, m.tick))
}

func (m *model) resizeFooter() {
	m.layout.SetFooterRows(m.footer.Height())
}

func (m model) step(amount int) {
	for _, s := range m.states {
		s.Step(amount)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.footer.SetSize(msg.Width)
		m.resizeFooter()
		if !m.ready {
			m.ready = true
			m.loader.Stop()
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			for _, s := range m.states {
				s.Advance()
			}
		}
		return m, m.tickCmd()

	case components.LoaderTickMsg:
		return m, m.loader.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.save != nil {
			if err := m.save(m.prefs()); err != nil {
				debug.DebugLog("failed to save preferences: %v", err)
			}
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.StepNext):
		m.step(1)

	case key.Matches(msg, m.keys.StepPrev):
		m.step(-1)

	case key.Matches(msg, m.keys.RandomStep):
		m.step(0)

	case key.Matches(msg, m.keys.CycleMode):
		m.use = m.use.Next()

	case key.Matches(msg, m.keys.MoreColumns):
		m.layout.SetColumns(m.layout.GetColumns() + 1)

	case key.Matches(msg, m.keys.FewerColumns):
		if cols := m.layout.GetColumns(); cols > 1 {
			m.layout.SetColumns(cols - 1)
		}

	case key.Matches(msg, m.keys.Keybindings):
		m.footer.SetShowAll(!m.footer.ShowAll())
		m.resizeFooter()

	default:
		return m, nil
	}

	m.updateStatus()
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return m.loader.View()
	}

	buf := buffer.New(m.layout.Body())

	components.New().
		LabelSpan(buffer.Styled(titleLabel, titleLabelStyle)).
		ThrobberStyle(titleThrobberStyle).
		Rand(m.rng).
		Render(m.layout.Title(), buf)

	glyphStyle := runningStyle
	if m.paused {
		glyphStyle = pausedStyle
	}
	base := components.New().
		ThrobberStyle(glyphStyle).
		UseType(m.use)

	for i, cell := range m.layout.Cells() {
		entry := symbols.Catalog[i]
		base.ThrobberSet(entry.Set).
			LabelSpan(buffer.Styled(entry.Name, nameStyle)).
			RenderStateful(cell, buf, m.states[i])
	}

	body := buf.Render()
	footer := m.footer.View()
	if footer == "" {
		return body
	}
	if m.layout.Body().IsEmpty() {
		return footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
