package event

import (
	"context"
	"sync"
)

// Bus is a many-producer, single-consumer FIFO event queue.
//
// Publish never blocks: the queue is unbounded so a slow consumer cannot
// stall the watcher's poll loop or the hotkey hook callback. Receive pops
// events in publish order, one at a time.
type Bus struct {
	mu     sync.Mutex
	queue  []Event
	signal chan struct{} // cap 1, coalesced wakeup
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{signal: make(chan struct{}, 1)}
}

// Publish appends ev to the queue and wakes the consumer. Safe for
// concurrent use by any number of producers.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	b.queue = append(b.queue, ev)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Receive returns the next event in FIFO order, blocking until one is
// available or ctx is cancelled.
func (b *Bus) Receive(ctx context.Context) (Event, error) {
	for {
		b.mu.Lock()
		if len(b.queue) > 0 {
			ev := b.queue[0]
			b.queue = b.queue[1:]
			b.mu.Unlock()
			return ev, nil
		}
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-b.signal:
		}
	}
}

// Pending returns the number of queued events. Intended for status reporting.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}
