// Package history implements the bounded, deduplicated clipboard history.
//
// The history is newest-first and mutated only by the application core, so it
// carries no locking of its own. Every successful mutation is persisted; a
// failed persist is logged and the in-memory list stays authoritative.
package history

import (
	"log/slog"
	"strings"

	"github.com/clipstash/clipstash/internal/entry"
)

// DefaultMax is the default history capacity.
const DefaultMax = 50

// Saver persists the full entry list after a mutation.
// *storage.Store satisfies it.
type Saver interface {
	Save([]entry.Entry) error
}

// History is a bounded, newest-first list of clipboard entries with
// adjacent-duplicate suppression.
type History struct {
	entries []entry.Entry
	max     int
	saver   Saver
}

// New creates a History seeded with entries (typically storage.Load output),
// trimmed to max if the persisted list is larger than the configured bound.
func New(seed []entry.Entry, max int, saver Saver) *History {
	if max <= 0 {
		max = DefaultMax
	}
	if len(seed) > max {
		seed = seed[:max]
	}
	return &History{entries: seed, max: max, saver: saver}
}

// Record inserts content at the front and reports whether anything changed.
// Empty or whitespace-only content is ignored, as is content equal to the
// current newest entry. Older duplicates further back are left alone.
// An insertion past capacity evicts the oldest entry. The updated list is
// persisted; persist failures are logged, never propagated.
func (h *History) Record(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[0].Content == content {
		return false
	}

	h.entries = append([]entry.Entry{entry.New(content)}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}

	if h.saver != nil {
		if err := h.saver.Save(h.entries); err != nil {
			slog.Error("history persist failed", "err", err)
		}
	}
	slog.Debug("history entry recorded", "len", len(h.entries))
	return true
}

// Get returns the entry at index (newest = 0), reporting whether it exists.
func (h *History) Get(index int) (entry.Entry, bool) {
	if index < 0 || index >= len(h.entries) {
		return entry.Entry{}, false
	}
	return h.entries[index], true
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the list, newest first. Safe to hand to other
// goroutines via snapshots.
func (h *History) Entries() []entry.Entry {
	out := make([]entry.Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
