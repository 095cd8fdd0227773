package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstash/clipstash/internal/entry"
)

// memSaver records every persisted list and can be made to fail.
type memSaver struct {
	saved [][]entry.Entry
	err   error
}

func (m *memSaver) Save(entries []entry.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, entries)
	return nil
}

func TestRecordBasics(t *testing.T) {
	tests := []struct {
		name     string
		records  []string
		wantLen  int
		wantTop  string
		inserted []bool
	}{
		{
			name:     "single record",
			records:  []string{"hello"},
			wantLen:  1,
			wantTop:  "hello",
			inserted: []bool{true},
		},
		{
			name:     "adjacent duplicate suppressed",
			records:  []string{"hello", "hello"},
			wantLen:  1,
			wantTop:  "hello",
			inserted: []bool{true, false},
		},
		{
			name:     "non-adjacent duplicate kept",
			records:  []string{"a", "b", "a"},
			wantLen:  3,
			wantTop:  "a",
			inserted: []bool{true, true, true},
		},
		{
			name:     "empty ignored",
			records:  []string{""},
			wantLen:  0,
			inserted: []bool{false},
		},
		{
			name:     "whitespace ignored",
			records:  []string{"   \t\n "},
			wantLen:  0,
			inserted: []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(nil, DefaultMax, &memSaver{})
			for i, content := range tt.records {
				got := h.Record(content)
				assert.Equal(t, tt.inserted[i], got, "record %d (%q)", i, content)
			}
			assert.Equal(t, tt.wantLen, h.Len())
			if tt.wantTop != "" {
				top, ok := h.Get(0)
				require.True(t, ok)
				assert.Equal(t, tt.wantTop, top.Content)
			}
		})
	}
}

func TestRecordNeverExceedsMax(t *testing.T) {
	h := New(nil, 10, &memSaver{})
	for i := 0; i < 100; i++ {
		h.Record(fmt.Sprintf("content-%d", i))
		assert.LessOrEqual(t, h.Len(), 10)
	}
	assert.Equal(t, 10, h.Len())
}

func TestRecordEvictsOldest(t *testing.T) {
	const max = 50
	h := New(nil, max, &memSaver{})
	for i := 0; i < max; i++ {
		require.True(t, h.Record(fmt.Sprintf("content-%d", i)))
	}
	require.Equal(t, max, h.Len())

	oldest, ok := h.Get(max - 1)
	require.True(t, ok)
	require.Equal(t, "content-0", oldest.Content)

	// 51st distinct entry evicts content-0.
	require.True(t, h.Record("content-50"))
	assert.Equal(t, max, h.Len())

	newest, ok := h.Get(0)
	require.True(t, ok)
	assert.Equal(t, "content-50", newest.Content)

	oldest, ok = h.Get(max - 1)
	require.True(t, ok)
	assert.Equal(t, "content-1", oldest.Content)
}

func TestGetBounds(t *testing.T) {
	h := New(nil, DefaultMax, &memSaver{})
	h.Record("only")

	_, ok := h.Get(-1)
	assert.False(t, ok)
	_, ok = h.Get(1)
	assert.False(t, ok)

	e, ok := h.Get(0)
	require.True(t, ok)
	assert.Equal(t, "only", e.Content)
}

func TestRecordPersistsEveryMutation(t *testing.T) {
	saver := &memSaver{}
	h := New(nil, DefaultMax, saver)

	h.Record("a")
	h.Record("a") // no-op, must not persist
	h.Record("b")

	require.Len(t, saver.saved, 2)
	assert.Equal(t, "b", saver.saved[1][0].Content)
	assert.Equal(t, "a", saver.saved[1][1].Content)
}

func TestRecordSurvivesPersistFailure(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	h := New(nil, DefaultMax, saver)

	// The in-memory list stays authoritative.
	assert.True(t, h.Record("a"))
	assert.Equal(t, 1, h.Len())
}

func TestNewTrimsOversizedSeed(t *testing.T) {
	seed := make([]entry.Entry, 20)
	for i := range seed {
		seed[i] = entry.Entry{Content: fmt.Sprintf("c%d", i)}
	}
	h := New(seed, 5, &memSaver{})
	assert.Equal(t, 5, h.Len())

	top, ok := h.Get(0)
	require.True(t, ok)
	assert.Equal(t, "c0", top.Content)
}
