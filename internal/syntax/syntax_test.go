package syntax

import (
	"testing"
	"time"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/parsetree"
	"github.com/alefore/edge-sub002/internal/syntax/parsers/word"
	"github.com/alefore/edge-sub002/internal/threadpool"
	"github.com/alefore/edge-sub002/internal/workqueue"
)

func contentsOf(lines ...string) *buffercontents.Contents {
	c := &buffercontents.Contents{}
	for _, s := range lines {
		c.PushBack(line.NewFromString(s))
	}
	return c
}

func drain(t *testing.T, wq *workqueue.WorkQueue, until func() bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for !until() {
		wq.Execute(time.Now())
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the background parse to install")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestParseInstallsTreeAndNotifiesObservers(t *testing.T) {
	wq := workqueue.New(nil)
	pool := threadpool.New(1, wq)
	defer pool.Shutdown()

	p := New(pool, word.New())
	notified := false
	p.AddObserver(func(tree *parsetree.Tree) { notified = true })

	p.Parse(contentsOf("hello world"))
	drain(t, wq, func() bool { return p.Tree() != nil })

	tree := p.Tree()
	if len(tree.Children) != 2 {
		t.Fatalf("got %d word leaves, want 2", len(tree.Children))
	}
	if !notified {
		t.Errorf("expected the observer to run after the tree was installed")
	}
}

func TestParseWithNilParserIsNoop(t *testing.T) {
	wq := workqueue.New(nil)
	pool := threadpool.New(1, wq)
	defer pool.Shutdown()

	p := New(pool, nil)
	p.Parse(contentsOf("anything"))
	// Give the (absent) background job a chance to run; nothing should
	// ever be scheduled since Parse returns immediately for a nil parser.
	wq.Execute(time.Now())
	if p.Tree() != nil {
		t.Fatalf("expected no tree to be installed when the configured parser is nil")
	}
}

func TestUpdateParserReconfiguresSynchronously(t *testing.T) {
	wq := workqueue.New(nil)
	pool := threadpool.New(1, wq)
	defer pool.Shutdown()

	p := New(pool, nil)
	p.UpdateParser(Options{Parser: word.New()})
	p.Parse(contentsOf("a b"))
	drain(t, wq, func() bool { return p.Tree() != nil })
	if len(p.Tree().Children) != 2 {
		t.Fatalf("got %d leaves after UpdateParser, want 2", len(p.Tree().Children))
	}
}

func TestCurrentZoomedOutParseTreeNilBeforeFirstParse(t *testing.T) {
	wq := workqueue.New(nil)
	pool := threadpool.New(1, wq)
	defer pool.Shutdown()

	p := New(pool, word.New())
	if p.CurrentZoomedOutParseTree(10, 100) != nil {
		t.Fatalf("expected nil zoomed-out tree before any parse has completed")
	}
}
