package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// system is the real clipboard backed by golang.design/x/clipboard.
// The mutex is the shared-resource lock between watcher and core.
type system struct {
	mu sync.Mutex
}

// NewSystem initializes the system clipboard. Failure here is a startup
// precondition failure; callers should abort.
func NewSystem() (Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return &system{}, nil
}

func (s *system) ReadText() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (s *system) WriteText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
