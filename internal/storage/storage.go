// Package storage persists the clipboard history as a JSON file.
//
// The on-disk format is a JSON array of entries, newest first. A missing or
// unparseable file is treated as an empty history — corruption is never a
// startup failure, only a logged warning.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/clipstash/clipstash/internal/entry"
)

const historyFile = "history.json"

// DefaultDir returns the platform-appropriate data directory for clipstash:
// $XDG_DATA_HOME/clipstash, or ~/.local/share/clipstash on Linux;
// ~/Library/Application Support and %AppData% double as the data location on
// macOS and Windows. The directory is not created here.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "clipstash"), nil
	}
	if runtime.GOOS == "linux" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data dir: %w", err)
		}
		return filepath.Join(home, ".local", "share", "clipstash"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(base, "clipstash"), nil
}

// Store reads and writes the history file under a fixed directory.
type Store struct {
	path string
}

// New creates a Store rooted at dir, creating the directory if needed.
// A dir that cannot be created is a startup precondition failure.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{path: filepath.Join(dir, historyFile)}, nil
}

// Path returns the full path of the history file.
func (s *Store) Path() string { return s.path }

// Load reads the persisted history. A missing file yields an empty slice; an
// unreadable or malformed file is logged and also yields an empty slice.
func (s *Store) Load() []entry.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("history file unreadable, starting empty", "path", s.path, "err", err)
		}
		return nil
	}
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("history file malformed, starting empty", "path", s.path, "err", err)
		return nil
	}
	return entries
}

// Save writes entries to the history file. The write goes to a temp file in
// the same directory followed by a rename, so a crash mid-write leaves either
// the old file or the new one.
func (s *Store) Save(entries []entry.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), historyFile+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
