package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstash/clipstash/internal/core"
	"github.com/clipstash/clipstash/internal/entry"
	"github.com/clipstash/clipstash/internal/event"
)

func visibleModel(entries ...string) Model {
	list := make([]entry.Entry, len(entries))
	for i, c := range entries {
		list[i] = entry.Entry{Content: c}
	}
	bus := event.NewBus()
	state := event.NewNotifier(core.Snapshot{Entries: list, Visible: true})
	return NewModel(bus, state)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	m := visibleModel("a", "b", "c")

	next, _ := m.Update(keyMsg("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor, "cursor must not go above the first entry")

	for i := 0; i < 5; i++ {
		next, _ = m.Update(keyMsg("j"))
		m = next.(Model)
	}
	assert.Equal(t, 2, m.cursor, "cursor must stop at the last entry")
}

func TestEnterPublishesSelection(t *testing.T) {
	m := visibleModel("a", "b")
	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	m.Update(keyMsg("enter"))

	ev, err := m.bus.Receive(t.Context())
	require.NoError(t, err)
	assert.Equal(t, event.EntrySelected{Index: 1}, ev)
}

func TestEscPublishesToggle(t *testing.T) {
	m := visibleModel("a")
	m.Update(keyMsg("esc"))

	ev, err := m.bus.Receive(t.Context())
	require.NoError(t, err)
	assert.Equal(t, event.ToggleRequested{}, ev)
}

func TestKeysIgnoredWhileHidden(t *testing.T) {
	bus := event.NewBus()
	state := event.NewNotifier(core.Snapshot{Visible: false})
	m := NewModel(bus, state)

	m.Update(keyMsg("enter"))
	m.Update(keyMsg("j"))
	assert.Equal(t, 0, bus.Pending())
}

func TestSnapshotClampsCursor(t *testing.T) {
	m := visibleModel("a", "b", "c")
	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	require.Equal(t, 2, m.cursor)

	// History shrank underneath the cursor.
	next, _ = m.Update(snapshotMsg(core.Snapshot{
		Entries: []entry.Entry{{Content: "only"}},
		Visible: true,
	}))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestViewHiddenRendersPlaceholder(t *testing.T) {
	bus := event.NewBus()
	state := event.NewNotifier(core.Snapshot{Visible: false})
	m := NewModel(bus, state)

	assert.Contains(t, m.View(), "hidden")
}

func TestViewListsEntries(t *testing.T) {
	m := visibleModel("hello", "multi\nline entry")
	out := m.View()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "multi↵line entry")
	assert.NotContains(t, out, "\nline entry\n")
}
