// Package workqueue holds callbacks to run later on the goroutine that
// owns the editor's state, rather than on whatever goroutine produced
// them. Grounded on
// _examples/original_source/src/work_queue.h/.cc: the editor's main loop
// drains a WorkQueue right before it would otherwise block waiting for
// terminal input, so background work (syntax highlighting, shell command
// output) only ever touches buffer state from the single "main" goroutine.
package workqueue

import (
	"container/heap"
	"sync"
	"time"
)

type callback struct {
	when time.Time
	fn   func()
}

type callbackHeap []callback

func (h callbackHeap) Len() int            { return len(h) }
func (h callbackHeap) Less(i, j int) bool  { return h[i].when.Before(h[j].when) }
func (h callbackHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *callbackHeap) Push(x interface{}) { *h = append(*h, x.(callback)) }
func (h *callbackHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// WorkQueue is safe for concurrent Schedule/ScheduleAt calls from any
// goroutine; Execute and NextExecution are meant to be called only from
// the owning main loop.
type WorkQueue struct {
	scheduleListener func()

	mu        sync.Mutex
	callbacks callbackHeap
}

func New(scheduleListener func()) *WorkQueue {
	return &WorkQueue{scheduleListener: scheduleListener}
}

// Schedule enqueues callback to run as soon as Execute next runs.
func (w *WorkQueue) Schedule(fn func()) {
	w.ScheduleAt(time.Time{}, fn)
}

// ScheduleAt enqueues callback to run once Execute is called at or after
// when. A zero when means "as soon as possible".
func (w *WorkQueue) ScheduleAt(when time.Time, fn func()) {
	w.mu.Lock()
	heap.Push(&w.callbacks, callback{when: when, fn: fn})
	w.mu.Unlock()
	if w.scheduleListener != nil {
		w.scheduleListener()
	}
}

// Execute runs every callback whose scheduled time is not after now.
func (w *WorkQueue) Execute(now time.Time) {
	for {
		w.mu.Lock()
		if len(w.callbacks) == 0 || w.callbacks[0].when.After(now) {
			w.mu.Unlock()
			return
		}
		next := heap.Pop(&w.callbacks).(callback)
		w.mu.Unlock()
		next.fn()
	}
}

// NextExecution returns the time at which the earliest pending callback
// wants to run, and whether any callback is pending at all.
func (w *WorkQueue) NextExecution() (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.callbacks) == 0 {
		return time.Time{}, false
	}
	return w.callbacks[0].when, true
}
