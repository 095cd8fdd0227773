// Package hotkey captures the fixed global show/hide shortcut.
//
// The binding is ctrl+shift+v (cmd+shift+v on macOS) and is not configurable.
// Key-down is the only state that produces an event; the core's toggle
// transition is idempotent against any duplicates the OS hook delivers.
package hotkey

import (
	"context"
	"log/slog"
	"runtime"

	hook "github.com/robotn/gohook"

	"github.com/clipstash/clipstash/internal/event"
)

// Binding returns the platform's fixed hotkey combination, key last.
func Binding() []string {
	mod := "ctrl"
	if runtime.GOOS == "darwin" {
		mod = "cmd"
	}
	return []string{mod, "shift", "v"}
}

// Listener owns the OS keyboard hook.
type Listener struct {
	bus *event.Bus
}

// New creates a Listener publishing to bus.
func New(bus *event.Bus) *Listener {
	return &Listener{bus: bus}
}

// Run registers the hook and blocks on the OS event stream until ctx is
// cancelled. Call in its own goroutine.
func (l *Listener) Run(ctx context.Context) {
	binding := Binding()
	slog.Info("global hotkey registered", "binding", binding)

	hook.Register(hook.KeyDown, binding, func(hook.Event) {
		slog.Debug("hotkey pressed")
		l.bus.Publish(event.HotkeyTriggered{})
	})

	stop := context.AfterFunc(ctx, hook.End)
	defer stop()

	s := hook.Start()
	<-hook.Process(s)
	slog.Debug("hotkey listener stopped")
}
