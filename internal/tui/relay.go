package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// relay queues controller notifications and forwards them to the program
// in order. push never blocks, so controllers may be driven from Update.
type relay struct {
	mu    sync.Mutex
	queue []tea.Msg
	wake  chan struct{}
}

func newRelay() *relay {
	return &relay{wake: make(chan struct{}, 1)}
}

func (r *relay) push(msg tea.Msg) {
	r.mu.Lock()
	r.queue = append(r.queue, msg)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// run forwards queued messages to send until ctx is done.
func (r *relay) run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.wake:
		}

		r.mu.Lock()
		batch := r.queue
		r.queue = nil
		r.mu.Unlock()

		for _, msg := range batch {
			send(msg)
		}
	}
}
