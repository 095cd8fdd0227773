package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstash/clipstash/internal/event"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) ReadText() (string, error) { return f.text, f.err }
func (f *fakeClipboard) WriteText(t string) error  { f.text = t; return nil }

func drain(t *testing.T, bus *event.Bus) []event.Event {
	t.Helper()
	var out []event.Event
	for bus.Pending() > 0 {
		ev, err := bus.Receive(context.Background())
		require.NoError(t, err)
		out = append(out, ev)
	}
	return out
}

func TestPollEmitsOnlyOnChange(t *testing.T) {
	clipb := &fakeClipboard{text: "first"}
	bus := event.NewBus()
	w := New(clipb, bus, 0)

	w.poll()
	w.poll() // same content, no second event
	clipb.text = "second"
	w.poll()

	got := drain(t, bus)
	require.Len(t, got, 2)
	assert.Equal(t, event.ClipboardChanged{Content: "first"}, got[0])
	assert.Equal(t, event.ClipboardChanged{Content: "second"}, got[1])
}

func TestPollIgnoresEmptyAndErrors(t *testing.T) {
	clipb := &fakeClipboard{text: ""}
	bus := event.NewBus()
	w := New(clipb, bus, 0)

	w.poll()
	clipb.err = errors.New("clipboard busy")
	clipb.text = "something"
	w.poll()

	assert.Empty(t, drain(t, bus))

	// Loop continues after a transient failure.
	clipb.err = nil
	w.poll()
	got := drain(t, bus)
	require.Len(t, got, 1)
	assert.Equal(t, event.ClipboardChanged{Content: "something"}, got[0])
}

func TestPrimeSuppressesNextPoll(t *testing.T) {
	clipb := &fakeClipboard{}
	bus := event.NewBus()
	w := New(clipb, bus, 0)

	// The core wrote a selection back to the clipboard and primed us.
	w.Prime("restored")
	clipb.text = "restored"
	w.poll()

	assert.Empty(t, drain(t, bus))
}

func TestRunStopsOnCancel(t *testing.T) {
	clipb := &fakeClipboard{}
	bus := event.NewBus()
	w := New(clipb, bus, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancellation")
	}
}
