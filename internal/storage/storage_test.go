package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstash/clipstash/internal/entry"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s.Load())
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o600))
	assert.Empty(t, s.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	entries := []entry.Entry{
		{Content: "newest", Timestamp: 200},
		{Content: "older\nwith newline", Timestamp: 100},
	}
	require.NoError(t, s.Save(entries))

	got := s.Load()
	require.Len(t, got, 2)
	assert.Equal(t, entries, got)
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save([]entry.Entry{{Content: "v1", Timestamp: 1}}))
	require.NoError(t, s.Save([]entry.Entry{{Content: "v2", Timestamp: 2}}))

	got := s.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].Content)

	// No temp files left behind.
	matches, err := filepath.Glob(filepath.Join(dir, "history.json.*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDefaultDirHonorsXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", filepath.Join("/", "tmp", "xdg-data"))

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/", "tmp", "xdg-data", "clipstash"), dir)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "clipstash")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
