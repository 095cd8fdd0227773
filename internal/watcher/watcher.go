// Package watcher polls the system clipboard and publishes change events.
package watcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clipstash/clipstash/internal/clip"
	"github.com/clipstash/clipstash/internal/event"
)

// DefaultInterval is the default poll interval.
const DefaultInterval = 100 * time.Millisecond

// Watcher reads the clipboard on a fixed interval and emits ClipboardChanged
// when the text differs from the last observed value. Read failures are
// expected (another app may hold the clipboard) and only logged at debug.
type Watcher struct {
	clipboard clip.Clipboard
	bus       *event.Bus
	interval  time.Duration

	mu       sync.Mutex
	lastSeen string
}

// New creates a Watcher. interval <= 0 selects DefaultInterval.
func New(clipboard clip.Clipboard, bus *event.Bus, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{clipboard: clipboard, bus: bus, interval: interval}
}

// Prime records content as already observed so the next poll does not
// re-emit it. The core calls this after writing a selection back to the
// clipboard, which closes the race where two selections in quick succession
// let the poll loop observe an intermediate value.
func (w *Watcher) Prime(content string) {
	w.mu.Lock()
	w.lastSeen = content
	w.mu.Unlock()
}

// Run polls until ctx is cancelled. Call in its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	slog.Info("clipboard watcher started", "interval", w.interval)
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("clipboard watcher stopped")
			return
		case <-t.C:
			w.poll()
		}
	}
}

func (w *Watcher) poll() {
	content, err := w.clipboard.ReadText()
	if err != nil {
		slog.Debug("clipboard read failed", "err", err)
		return
	}
	if content == "" {
		return
	}

	w.mu.Lock()
	changed := content != w.lastSeen
	if changed {
		w.lastSeen = content
	}
	w.mu.Unlock()

	if changed {
		slog.Debug("clipboard change detected", "bytes", len(content))
		w.bus.Publish(event.ClipboardChanged{Content: content})
	}
}
