// Package tui is the terminal presentation adapter.
//
// The model is a pure consumer of core snapshots: it pulls the latest state
// whenever the notifier fires and renders it. User intents (select, hide) are
// published onto the event bus; the model never mutates history or
// visibility itself, the next snapshot reflects whatever the core decided.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipstash/clipstash/internal/core"
	"github.com/clipstash/clipstash/internal/event"
)

const previewWidth = 50

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	itemStyle     = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Padding(1, 2)
	helpStyle     = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0, 1)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Hide   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "paste")),
	Hide:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// snapshotMsg carries a fresh core snapshot into the update loop.
type snapshotMsg core.Snapshot

// Model is the bubbletea model for the history list.
type Model struct {
	bus   *event.Bus
	state *event.Notifier[core.Snapshot]

	snap   core.Snapshot
	cursor int
}

// NewModel creates the presentation model pulling from state and publishing
// intents to bus.
func NewModel(bus *event.Bus, state *event.Notifier[core.Snapshot]) Model {
	return Model{bus: bus, state: state, snap: state.Latest()}
}

// waitForChange blocks until the core publishes a new snapshot.
func (m Model) waitForChange() tea.Msg {
	<-m.state.Changed()
	return snapshotMsg(m.state.Latest())
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = core.Snapshot(msg)
		if m.cursor >= len(m.snap.Entries) {
			m.cursor = max(0, len(m.snap.Entries)-1)
		}
		return m, m.waitForChange

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if !m.snap.Visible {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.snap.Entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			m.bus.Publish(event.EntrySelected{Index: m.cursor})
		case key.Matches(msg, keys.Hide):
			m.bus.Publish(event.ToggleRequested{})
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.snap.Visible {
		return helpStyle.Render("clipstash hidden — press the global hotkey to show")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Clipboard History"))
	b.WriteString("\n\n")

	if len(m.snap.Entries) == 0 {
		b.WriteString(emptyStyle.Render("No clipboard history yet. Copy some text!"))
	} else {
		for i, e := range m.snap.Entries {
			line := fmt.Sprintf("%2d  %s", i, e.Preview(previewWidth))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render(line))
			} else {
				b.WriteString(itemStyle.Render(line))
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter paste · esc hide · q quit"))
	return b.String()
}

// Run drives the presentation event loop until ctx is cancelled or the user
// quits.
func Run(ctx context.Context, bus *event.Bus, state *event.Notifier[core.Snapshot]) error {
	p := tea.NewProgram(NewModel(bus, state), tea.WithAltScreen())

	stop := context.AfterFunc(ctx, p.Quit)
	defer stop()

	_, err := p.Run()
	return err
}
