// Package core implements the application state machine.
//
// The core is the single consumer of the event bus and the only mutator of
// the history and the visibility flag. Events are applied strictly one at a
// time in bus order; each application runs to completion before the next
// event is taken, so no transition ever races another.
package core

import (
	"context"
	"log/slog"

	"github.com/clipstash/clipstash/internal/clip"
	"github.com/clipstash/clipstash/internal/entry"
	"github.com/clipstash/clipstash/internal/event"
	"github.com/clipstash/clipstash/internal/history"
	"github.com/clipstash/clipstash/internal/paste"
)

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Entries []entry.Entry `json:"entries"`
	Visible bool          `json:"visible"`
}

// Primer refreshes a producer's last-observed clipboard value after the core
// itself writes the clipboard. *watcher.Watcher satisfies it.
type Primer interface {
	Prime(content string)
}

// Core owns the history and window visibility.
type Core struct {
	bus      *event.Bus
	hist     *history.History
	clipbrd  clip.Clipboard
	injector paste.Injector
	primer   Primer
	state    *event.Notifier[Snapshot]

	visible bool
}

// New wires a Core. primer and injector may be nil (headless operation).
func New(bus *event.Bus, hist *history.History, clipbrd clip.Clipboard, injector paste.Injector, primer Primer) *Core {
	c := &Core{
		bus:      bus,
		hist:     hist,
		clipbrd:  clipbrd,
		injector: injector,
		primer:   primer,
	}
	c.state = event.NewNotifier(c.snapshot())
	return c
}

// State returns the latest-value notifier the presentation layer pulls from.
func (c *Core) State() *event.Notifier[Snapshot] { return c.state }

// Run consumes the bus until ctx is cancelled.
func (c *Core) Run(ctx context.Context) error {
	slog.Info("core event loop started", "history_len", c.hist.Len())
	for {
		ev, err := c.bus.Receive(ctx)
		if err != nil {
			slog.Debug("core event loop stopped", "reason", err)
			return err
		}
		c.apply(ev)
	}
}

// apply performs one state transition and publishes the resulting snapshot.
func (c *Core) apply(ev event.Event) {
	switch ev := ev.(type) {
	case event.ClipboardChanged:
		c.hist.Record(ev.Content)

	case event.HotkeyTriggered:
		c.toggle()

	case event.ToggleRequested:
		c.toggle()

	case event.EntrySelected:
		c.selectEntry(ev.Index)

	default:
		slog.Warn("unknown event dropped", "event", ev)
		return
	}
	c.state.Set(c.snapshot())
}

func (c *Core) toggle() {
	c.visible = !c.visible
	slog.Debug("visibility toggled", "visible", c.visible)
}

// selectEntry restores entry index to the clipboard, injects the paste
// keystroke, and hides the window. An out-of-range index is a no-op; a
// clipboard or injection failure abandons the rest of the sequence for this
// event but is never fatal.
func (c *Core) selectEntry(index int) {
	e, ok := c.hist.Get(index)
	if !ok {
		slog.Debug("selection out of range", "index", index)
		return
	}

	if err := c.clipbrd.WriteText(e.Content); err != nil {
		slog.Error("clipboard write failed", "err", err)
		return
	}
	if c.primer != nil {
		c.primer.Prime(e.Content)
	}
	slog.Info("history entry restored", "index", index)

	if c.injector != nil {
		if err := c.injector.Paste(); err != nil {
			slog.Error("paste injection failed", "err", err)
		}
	}
	c.visible = false
}

func (c *Core) snapshot() Snapshot {
	return Snapshot{Entries: c.hist.Entries(), Visible: c.visible}
}
