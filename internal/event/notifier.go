package event

import "sync"

// Notifier is a latest-value broadcast cell: the core stores each new state
// snapshot, consumers pull the latest whenever the change channel fires.
// Intermediate values may be skipped; consumers always see the newest.
type Notifier[T any] struct {
	mu      sync.RWMutex
	latest  T
	changed chan struct{} // cap 1, coalesced
}

// NewNotifier returns a Notifier holding initial.
func NewNotifier[T any](initial T) *Notifier[T] {
	n := &Notifier[T]{changed: make(chan struct{}, 1)}
	n.latest = initial
	return n
}

// Set stores v as the latest value and signals consumers. Never blocks.
func (n *Notifier[T]) Set(v T) {
	n.mu.Lock()
	n.latest = v
	n.mu.Unlock()

	select {
	case n.changed <- struct{}{}:
	default:
	}
}

// Latest returns the most recently stored value.
func (n *Notifier[T]) Latest() T {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.latest
}

// Changed returns the channel that fires after Set. A single receive may
// cover several Sets; call Latest after each receive.
func (n *Notifier[T]) Changed() <-chan struct{} { return n.changed }
