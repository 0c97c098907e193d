package threadpool

import (
	"testing"
	"time"

	"github.com/alefore/edge-sub002/internal/workqueue"
)

func TestRunDeliversResultThroughCompletionQueue(t *testing.T) {
	wq := workqueue.New(nil)
	pool := New(2, wq)
	defer pool.Shutdown()

	done := Run(pool, func() int { return 21 * 2 }, func(v int) {
		if v != 42 {
			t.Errorf("consumer got %d, want 42", v)
		}
	})

	// The completion callback only runs once something drains the
	// WorkQueue, exactly as the real main loop does; poll it here the
	// same way a cooperative loop would between input events.
	deadline := time.After(5 * time.Second)
	for {
		wq.Execute(time.Now())
		select {
		case <-done:
			return
		case <-deadline:
			t.Fatal("timed out waiting for the background producer")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestScheduleRunsOnBackgroundGoroutine(t *testing.T) {
	pool := New(1, workqueue.New(nil))
	defer pool.Shutdown()

	ran := make(chan struct{})
	pool.Schedule(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled function never ran")
	}
}

func TestShutdownStopsAcceptingWork(t *testing.T) {
	pool := New(1, workqueue.New(nil))
	pool.Shutdown()
	// Schedule after Shutdown must not block forever: the done channel
	// is already closed, so Schedule's select returns immediately.
	done := make(chan struct{})
	go func() {
		pool.Schedule(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Schedule after Shutdown should not block")
	}
}
