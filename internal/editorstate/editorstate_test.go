package editorstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/mode"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/threadpool"
	"github.com/alefore/edge-sub002/internal/workqueue"
)

func newState() *State {
	wq := workqueue.New(nil)
	pool := threadpool.New(1, wq)
	return New(pool, wq, mode.DefaultCommandMode())
}

func TestNewStartsOnScratchBuffer(t *testing.T) {
	s := newState()
	if s.CurrentBufferName() != "*scratch*" {
		t.Fatalf("CurrentBufferName() = %q, want *scratch*", s.CurrentBufferName())
	}
	if s.CurrentBuffer() == nil {
		t.Fatalf("CurrentBuffer() should not be nil")
	}
}

func TestAddAndSetCurrentBuffer(t *testing.T) {
	s := newState()
	s.AddBuffer(obuffer.New("b", nil))
	if !s.SetCurrentBuffer("b") {
		t.Fatalf("SetCurrentBuffer(\"b\") = false, want true")
	}
	if s.CurrentBufferName() != "b" {
		t.Fatalf("CurrentBufferName() = %q, want b", s.CurrentBufferName())
	}
}

func TestSetCurrentBufferUnknownNameFails(t *testing.T) {
	s := newState()
	if s.SetCurrentBuffer("nope") {
		t.Fatalf("SetCurrentBuffer on an unknown name should return false")
	}
}

func TestRemoveBufferFallsBackToFirstRemaining(t *testing.T) {
	s := newState()
	s.AddBuffer(obuffer.New("b", nil))
	s.SetCurrentBuffer("b")
	s.RemoveBuffer("b")
	if s.CurrentBufferName() != "*scratch*" {
		t.Fatalf("CurrentBufferName() = %q, want *scratch* after removing the current buffer", s.CurrentBufferName())
	}
}

func TestSetRepetitionsClampsBelowOne(t *testing.T) {
	s := newState()
	s.SetRepetitions(0)
	if s.Repetitions() != 1 {
		t.Fatalf("Repetitions() = %d, want 1", s.Repetitions())
	}
	s.SetRepetitions(-5)
	if s.Repetitions() != 1 {
		t.Fatalf("Repetitions() = %d, want 1", s.Repetitions())
	}
}

func TestPushPopMode(t *testing.T) {
	s := newState()
	base := s.ActiveMode()
	s.PushMode(mode.NewInsertMode())
	if s.ActiveMode() == base {
		t.Fatalf("ActiveMode() should be the pushed InsertMode")
	}
	s.PopMode()
	if s.ActiveMode() != base {
		t.Fatalf("ActiveMode() should return to the base mode after PopMode")
	}
}

func TestPopModeNeverEmptiesStack(t *testing.T) {
	s := newState()
	base := s.ActiveMode()
	s.PopMode()
	if s.ActiveMode() != base {
		t.Fatalf("PopMode on a single-entry stack should be a no-op")
	}
}

func TestShowHelpSwitchesToHelpBufferSorted(t *testing.T) {
	s := newState()
	s.ShowHelp([]string{"z - last", "a - first"})
	if s.CurrentBufferName() != "*help*" {
		t.Fatalf("CurrentBufferName() = %q, want *help*", s.CurrentBufferName())
	}
	b, _ := s.Buffer("*help*")
	if got := b.Contents().At(0).ToString(); got != "a - first" {
		t.Fatalf("first help line = %q, want sorted to a - first", got)
	}
}

func TestDeliverInputRoutesToActiveModeAndDrainsQueue(t *testing.T) {
	s := newState()
	res := s.DeliverInput("i")
	if !res.Consumed {
		t.Fatalf("expected 'i' to be consumed by CommandMode")
	}
	if _, ok := s.ActiveMode().(*mode.InsertMode); !ok {
		t.Fatalf("expected 'i' to push InsertMode, active mode is %T", s.ActiveMode())
	}
}

func TestExitValueDefaultsToZeroAndIsSettable(t *testing.T) {
	s := newState()
	if s.ExitValue() != 0 {
		t.Fatalf("ExitValue() = %d, want 0", s.ExitValue())
	}
	s.SetExitValue(3)
	if s.ExitValue() != 3 {
		t.Fatalf("ExitValue() = %d, want 3", s.ExitValue())
	}
}

func TestActivateLineNilHandlerIsNoop(t *testing.T) {
	s := newState()
	before := s.CurrentBufferName()
	s.ActivateLine(nil)
	if s.CurrentBufferName() != before {
		t.Fatalf("ActivateLine(nil) changed current buffer to %q", s.CurrentBufferName())
	}
}

func TestActivateLineOpensFileByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := newState()
	s.ActivateLine(&line.ActivationHandler{BufferName: dir, Data: path})
	if s.CurrentBufferName() != path {
		t.Fatalf("CurrentBufferName() = %q, want %q", s.CurrentBufferName(), path)
	}
	b, ok := s.Buffer(path)
	if !ok {
		t.Fatalf("Buffer(%q) not found after ActivateLine", path)
	}
	if got := b.Contents().At(0).ToString(); got != "hello" {
		t.Fatalf("first line = %q, want hello", got)
	}

	// Activating the same path again reuses the already-open buffer
	// rather than reloading it.
	s.SetCurrentBuffer("*scratch*")
	s.ActivateLine(&line.ActivationHandler{BufferName: dir, Data: path})
	if s.CurrentBufferName() != path {
		t.Fatalf("CurrentBufferName() = %q, want %q (reused buffer)", s.CurrentBufferName(), path)
	}
}
