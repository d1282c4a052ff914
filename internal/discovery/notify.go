package discovery

import "sync"

// notifier delivers snapshots to an observer in the order they were pushed.
// push is called under the owning controller's lock, so queue order is
// sequence order. drain is called after that lock is released; whichever
// caller finds the queue idle delivers everything queued, including
// snapshots pushed by other goroutines while it runs. An observer never
// sees an older snapshot after a newer one, and an observer that calls
// back into its controller does not deadlock.
type notifier[T any] struct {
	fn func(T)

	mu       sync.Mutex
	queue    []T
	draining bool
}

func newNotifier[T any](fn func(T)) *notifier[T] {
	return &notifier[T]{fn: fn}
}

func (n *notifier[T]) push(v T) {
	if n.fn == nil {
		return
	}
	n.mu.Lock()
	n.queue = append(n.queue, v)
	n.mu.Unlock()
}

func (n *notifier[T]) drain() {
	if n.fn == nil {
		return
	}

	n.mu.Lock()
	if n.draining {
		n.mu.Unlock()
		return
	}
	n.draining = true
	for len(n.queue) > 0 {
		v := n.queue[0]
		var zero T
		n.queue[0] = zero
		n.queue = n.queue[1:]
		n.mu.Unlock()

		n.fn(v)

		n.mu.Lock()
	}
	n.queue = nil
	n.draining = false
	n.mu.Unlock()
}
