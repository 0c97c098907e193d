package mode

import (
	"testing"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
)

func TestCommandModeRunsBoundKey(t *testing.T) {
	ran := false
	m := NewCommandMode(map[string]Command{
		"q": {Description: "quit", Run: func(editor Editor) { ran = true }},
	})
	e := newFakeEditor("")
	res := m.ProcessInput("q", e)
	if !res.Consumed {
		t.Fatalf("expected the bound key to be consumed")
	}
	if !ran {
		t.Fatalf("expected the bound command's Run to execute")
	}
}

func TestCommandModeUnboundKeyNotConsumed(t *testing.T) {
	m := NewCommandMode(map[string]Command{})
	e := newFakeEditor("")
	res := m.ProcessInput("z", e)
	if res.Consumed {
		t.Fatalf("an unbound key should not be reported as consumed")
	}
}

func TestCommandModeDigitEntersRepeatMode(t *testing.T) {
	m := NewCommandMode(map[string]Command{})
	e := newFakeEditor("")
	m.ProcessInput("3", e)
	if len(e.modes) != 1 {
		t.Fatalf("expected digit key to push RepeatMode, got %d modes pushed", len(e.modes))
	}
	if e.Repetitions() != 3 {
		t.Fatalf("Repetitions() = %d, want 3", e.Repetitions())
	}
}

func TestCommandModeHelpListsBindings(t *testing.T) {
	m := NewCommandMode(map[string]Command{
		"a": {Description: "do a"},
		"b": {Description: "do b"},
	})
	e := newFakeEditor("")
	res := m.ProcessInput("?", e)
	if !res.Consumed {
		t.Fatalf("expected ? to be consumed")
	}
	if len(e.help) != 2 {
		t.Fatalf("got %d help lines, want 2", len(e.help))
	}
}

func TestDefaultCommandModeMovesCursor(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("hello"))
	c.PushBack(line.NewFromString("world"))
	*e.buffer.Contents() = *c

	m.ProcessInput("l", e)
	if got := e.buffer.Cursors().Position().Column; got != 1 {
		t.Fatalf("after 'l' column = %d, want 1", got)
	}
}

func TestDefaultCommandModeDeleteThenPasteRestoresText(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("hello world"))
	*e.buffer.Contents() = *c

	m.ProcessInput("d", e)
	if got := e.buffer.Contents().At(0).ToString(); got != " world" {
		t.Fatalf("after 'd' line = %q, want %q", got, " world")
	}
	m.ProcessInput("p", e)
	if got := e.buffer.Contents().At(0).ToString(); got != "hello world" {
		t.Fatalf("after 'p' line = %q, want the deleted word restored", got)
	}
}

func TestDefaultCommandModeGotoLineHonorsReverseDirection(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("first"))
	c.PushBack(line.NewFromString("second"))
	*e.buffer.Contents() = *c

	m.ProcessInput("2", e)
	m.ProcessInput("g", e)
	if pos := e.buffer.Cursors().Position(); pos.Line != 1 || pos.Column != 0 {
		t.Fatalf("after '2g' position = %+v, want line 1 column 0", pos)
	}

	m.ProcessInput("1", e)
	m.ProcessInput("r", e)
	m.ProcessInput("g", e)
	if pos := e.buffer.Cursors().Position(); pos.Line != 0 || pos.Column != 5 {
		t.Fatalf("after '1rg' position = %+v, want line 0 column 5 (end of 'first')", pos)
	}
}

func TestDefaultCommandModeStructureSelectAppliesToDelete(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("first"))
	c.PushBack(line.NewFromString("second"))
	*e.buffer.Contents() = *c

	m.ProcessInput("s", e)
	submode := e.modes[len(e.modes)-1]
	submode.ProcessInput("l", e)
	m.ProcessInput("d", e)
	if got := e.buffer.Contents().Size(); got != 1 {
		t.Fatalf("after 'sld' buffer has %d lines, want 1", got)
	}
	if got := e.buffer.Contents().At(0).ToString(); got != "second" {
		t.Fatalf("after 'sld' remaining line = %q, want %q", got, "second")
	}
}

func TestDefaultCommandModeActivatesLineUnderCursor(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	handler := &line.ActivationHandler{BufferName: "dir", Data: "dir/entry"}
	c.PushBack(line.NewFromString("entry").WithActivate(handler))
	*e.buffer.Contents() = *c

	m.ProcessInput("\n", e)
	if e.activated != handler {
		t.Fatalf("ActivateLine called with %+v, want %+v", e.activated, handler)
	}
}

func TestDefaultCommandModeActivateOnLineWithNoHandlerIsNoop(t *testing.T) {
	m := DefaultCommandMode()
	e := newFakeEditor("")
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("plain"))
	*e.buffer.Contents() = *c

	m.ProcessInput("\n", e)
	if e.activated != nil {
		t.Fatalf("ActivateLine called with %+v, want nil", e.activated)
	}
}
