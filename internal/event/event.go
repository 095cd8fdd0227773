// Package event defines the domain events and the ordered bus that funnels
// them from producer goroutines into the application core.
//
// Three producers feed the bus: the clipboard watcher, the global hotkey
// listener, and user-intent dispatchers (TUI, IPC control channel). The core
// is the single consumer; the order the bus delivers events is the order the
// core applies them.
package event

// Event is a domain event carried on the Bus.
type Event interface{ isEvent() }

// ClipboardChanged is emitted by the watcher when the external clipboard
// holds new, non-empty text.
type ClipboardChanged struct {
	Content string
}

// HotkeyTriggered is emitted by the hotkey listener on each press.
type HotkeyTriggered struct{}

// EntrySelected is a user intent: restore history entry Index to the
// clipboard and paste it.
type EntrySelected struct {
	Index int
}

// ToggleRequested is a user intent: flip window visibility.
type ToggleRequested struct{}

func (ClipboardChanged) isEvent() {}
func (HotkeyTriggered) isEvent()  {}
func (EntrySelected) isEvent()    {}
func (ToggleRequested) isEvent()  {}
