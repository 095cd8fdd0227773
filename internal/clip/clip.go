// Package clip provides serialized access to the system clipboard.
//
// The watcher goroutine and the core's selection handler both go through the
// same Clipboard value; the system implementation holds an internal mutex so
// reads and writes never interleave. Neither caller holds the lock across a
// blocking call.
package clip

// Clipboard is the external clipboard collaborator.
type Clipboard interface {
	// ReadText returns the current clipboard text. An empty clipboard
	// reads as "", nil.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
