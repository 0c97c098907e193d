// Package notification implements a one-shot, thread-safe cancellation
// latch, grounded on
// _examples/original_source/src/notification.h/.cc.
package notification

import "sync"

// Notification can be notified exactly once; HasBeenNotified is safe to
// poll from any goroutine. Used by the syntax parser to let a buffer edit
// cancel a parse that is already running in the background.
type Notification struct {
	mu       sync.Mutex
	notified bool
	done     chan struct{}
}

func New() *Notification {
	return &Notification{done: make(chan struct{})}
}

func (n *Notification) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.notified {
		return
	}
	n.notified = true
	close(n.done)
}

func (n *Notification) HasBeenNotified() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notified
}

// Done returns a channel that is closed once Notify has been called,
// letting a background goroutine select on cancellation instead of
// polling HasBeenNotified in a hot loop.
func (n *Notification) Done() <-chan struct{} {
	return n.done
}
