// Package threadpool runs producer functions on a small fixed set of
// background goroutines and delivers their results through a
// workqueue.WorkQueue, so that consumers only ever observe the result on
// the goroutine that owns that queue. Grounded on
// _examples/original_source/src/thread_pool.h/.cc.
package threadpool

import (
	"sync"

	"github.com/alefore/edge-sub002/internal/workqueue"
)

// ThreadPool owns Size background goroutines pulling from a shared work
// channel. There is exactly one pool for the whole editor process: the
// syntax parser is its only client today, but any future background
// computation should share it rather than spawn its own goroutines.
type ThreadPool struct {
	completionQueue *workqueue.WorkQueue

	work chan func()
	done chan struct{}
	wg   sync.WaitGroup

	shutdownOnce sync.Once
}

// New starts size background goroutines. completionQueue receives every
// producer's result; it is never touched from a background goroutine
// directly.
func New(size int, completionQueue *workqueue.WorkQueue) *ThreadPool {
	p := &ThreadPool{
		completionQueue: completionQueue,
		work:            make(chan func()),
		done:            make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.backgroundThread()
	}
	return p
}

func (p *ThreadPool) backgroundThread() {
	defer p.wg.Done()
	for {
		select {
		case fn, ok := <-p.work:
			if !ok {
				return
			}
			fn()
		case <-p.done:
			return
		}
	}
}

// Schedule runs fn on some background goroutine. Callers that need the
// result back on the main goroutine should use Run instead.
func (p *ThreadPool) Schedule(fn func()) {
	select {
	case p.work <- fn:
	case <-p.done:
	}
}

// Shutdown stops accepting new work and waits for in-flight background
// goroutines to finish.
func (p *ThreadPool) Shutdown() {
	p.shutdownOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}

// Run evaluates producer on a background goroutine and schedules its
// result onto the pool's completion queue; consumer then runs on
// whatever goroutine drains that queue. The returned channel is closed
// after consumer has returned, so callers that only care about
// "did this finish" can select on it without needing a consumer
// callback.
func Run[T any](p *ThreadPool, producer func() T, consumer func(T)) <-chan struct{} {
	scheduled := make(chan struct{})
	p.Schedule(func() {
		value := producer()
		p.completionQueue.Schedule(func() {
			consumer(value)
			close(scheduled)
		})
	})
	return scheduled
}
