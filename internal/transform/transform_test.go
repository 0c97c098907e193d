package transform

import (
	"testing"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/cursors"
	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/lazystring"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
)

// fakeTarget is a minimal Target backing these tests, mirroring the
// fields obuffer.OpenBuffer exposes through the Target interface.
type fakeTarget struct {
	contents *buffercontents.Contents
	cursors  *cursors.Tracker
	paste    lazystring.String
	modified bool
}

func newFakeTarget(lines ...string) *fakeTarget {
	c := &buffercontents.Contents{}
	for _, s := range lines {
		c.PushBack(line.NewFromString(s))
	}
	return &fakeTarget{contents: c, cursors: cursors.NewTracker()}
}

func (f *fakeTarget) Contents() *buffercontents.Contents  { return f.contents }
func (f *fakeTarget) Cursors() *cursors.Tracker            { return f.cursors }
func (f *fakeTarget) PasteBuffer() lazystring.String       { return f.paste }
func (f *fakeTarget) SetPasteBuffer(s lazystring.String)   { f.paste = s }
func (f *fakeTarget) MarkModified()                        { f.modified = true }

func (f *fakeTarget) text() string { return f.contents.ToString() }

func TestInsertAtCursor(t *testing.T) {
	target := newFakeTarget("hello")
	Insert{Text: lazystring.NewLiteral("X"), Repetitions: 1, Final: edittypes.FinalPositionEnd}.Apply(target)
	if got := target.text(); got != "Xhello" {
		t.Fatalf("text = %q, want Xhello", got)
	}
	if !target.modified {
		t.Errorf("Insert should mark the target modified")
	}
}

func TestInsertRepetitions(t *testing.T) {
	target := newFakeTarget("")
	Insert{Text: lazystring.NewLiteral("ab"), Repetitions: 3, Final: edittypes.FinalPositionEnd}.Apply(target)
	if got := target.text(); got != "ababab" {
		t.Fatalf("text = %q, want ababab", got)
	}
}

func TestInsertUndo(t *testing.T) {
	target := newFakeTarget("hello")
	result := Insert{Text: lazystring.NewLiteral("X"), Repetitions: 1, Final: edittypes.FinalPositionEnd}.Apply(target)
	result.Undo.Apply(target)
	if got := target.text(); got != "hello" {
		t.Fatalf("after undo text = %q, want hello", got)
	}
}

func TestDeleteCharacters(t *testing.T) {
	target := newFakeTarget("hello")
	r := DeleteCharacters{Repetitions: 2, Copy: true}.Apply(target)
	if !r.Success {
		t.Fatalf("expected success")
	}
	if got := target.text(); got != "llo" {
		t.Fatalf("text = %q, want llo", got)
	}
	if lazystring.ToString(target.PasteBuffer()) != "he" {
		t.Errorf("paste buffer = %q, want he", lazystring.ToString(target.PasteBuffer()))
	}
}

func TestPasteInsertsPasteBufferContents(t *testing.T) {
	target := newFakeTarget("world")
	DeleteCharacters{Repetitions: 2, Copy: true}.Apply(target)
	Paste{Repetitions: 1}.Apply(target)
	if got := target.text(); got != "world" {
		t.Fatalf("text after delete+paste = %q, want world", got)
	}
}

func TestPasteRepeatsText(t *testing.T) {
	target := newFakeTarget("")
	target.SetPasteBuffer(lazystring.NewLiteral("ab"))
	Paste{Repetitions: 3}.Apply(target)
	if got := target.text(); got != "ababab" {
		t.Fatalf("text = %q, want ababab", got)
	}
}

func TestDeleteCharactersAtEndOfBufferFails(t *testing.T) {
	target := newFakeTarget("")
	r := DeleteCharacters{Repetitions: 1}.Apply(target)
	if r.Success {
		t.Errorf("deleting past the end of an empty buffer should fail")
	}
}

func TestDeleteCharactersUndo(t *testing.T) {
	target := newFakeTarget("hello")
	r := DeleteCharacters{Repetitions: 3}.Apply(target)
	r.Undo.Apply(target)
	if got := target.text(); got != "hello" {
		t.Fatalf("after undo text = %q, want hello", got)
	}
}

func TestMoveCharForward(t *testing.T) {
	target := newFakeTarget("hello")
	Move{Direction: edittypes.Forward, Structure: edittypes.StructureChar, Repetitions: 2}.Apply(target)
	if got := target.cursors.Position(); got != (linecol.Position{Column: 2}) {
		t.Fatalf("cursor = %v, want column 2", got)
	}
}

func TestMoveCharAtBufferEndFails(t *testing.T) {
	target := newFakeTarget("a")
	target.cursors.ActiveSet().MoveCurrentCursor(linecol.Position{Column: 1})
	r := Move{Direction: edittypes.Forward, Structure: edittypes.StructureChar, Repetitions: 1}.Apply(target)
	if r.Success {
		t.Errorf("moving forward at the end of the buffer should fail (no-op)")
	}
}

func TestMoveLine(t *testing.T) {
	target := newFakeTarget("a", "b", "c")
	Move{Direction: edittypes.Forward, Structure: edittypes.StructureLine, Repetitions: 2}.Apply(target)
	if got := target.cursors.Position(); got.Line != 2 {
		t.Fatalf("cursor line = %d, want 2", got.Line)
	}
}

func TestDeleteWordForward(t *testing.T) {
	target := newFakeTarget("hello world")
	r := DeleteWord{Copy: true}.Apply(target)
	if !r.Success {
		t.Fatalf("expected success")
	}
	if got := target.text(); got != " world" {
		t.Fatalf("text = %q, want \" world\"", got)
	}
}

func TestDeleteLines(t *testing.T) {
	target := newFakeTarget("a", "b", "c")
	r := DeleteLines{Repetitions: 2, Copy: true}.Apply(target)
	if !r.Success {
		t.Fatalf("expected success")
	}
	if got := target.text(); got != "c" {
		t.Fatalf("text = %q, want c", got)
	}
}

func TestDeleteSuffixSuperfluousCharacters(t *testing.T) {
	target := newFakeTarget("hello   \t")
	DeleteSuffixSuperfluousCharacters{}.Apply(target)
	if got := target.text(); got != "hello" {
		t.Fatalf("text = %q, want hello", got)
	}
}

func TestDeleteSuffixSuperfluousCharactersNoop(t *testing.T) {
	target := newFakeTarget("hello")
	r := DeleteSuffixSuperfluousCharacters{}.Apply(target)
	if !r.Success {
		t.Fatalf("expected success even when there's nothing to trim")
	}
	if got := target.text(); got != "hello" {
		t.Fatalf("text = %q, want hello unchanged", got)
	}
}

func TestComposeUndoOrder(t *testing.T) {
	target := newFakeTarget("")
	composite := Compose{
		A: Insert{Text: lazystring.NewLiteral("a"), Repetitions: 1, Final: edittypes.FinalPositionEnd},
		B: Insert{Text: lazystring.NewLiteral("b"), Repetitions: 1, Final: edittypes.FinalPositionEnd},
	}
	r := composite.Apply(target)
	if got := target.text(); got != "ab" {
		t.Fatalf("text = %q, want ab", got)
	}
	r.Undo.Apply(target)
	if got := target.text(); got != "" {
		t.Fatalf("after undo text = %q, want empty", got)
	}
}

func TestStackStopsAtFirstFailure(t *testing.T) {
	target := newFakeTarget("")
	stack := Stack{Steps: []Transformation{
		DeleteCharacters{Repetitions: 1}, // fails: nothing to delete
		Insert{Text: lazystring.NewLiteral("x"), Repetitions: 1, Final: edittypes.FinalPositionEnd},
	}}
	r := stack.Apply(target)
	if r.Success {
		t.Errorf("Stack should fail when its first step fails")
	}
}

func TestWithRepetitionsRebindsMove(t *testing.T) {
	inner := Move{Direction: edittypes.Forward, Structure: edittypes.StructureChar, Repetitions: 1}
	rebound := WithRepetitions(5, inner)
	m, ok := rebound.(Move)
	if !ok {
		t.Fatalf("expected WithRepetitions to rebind Move in place, got %T", rebound)
	}
	if m.Repetitions != 5 {
		t.Errorf("Repetitions = %d, want 5", m.Repetitions)
	}
}

func TestWithRepetitionsFallsBackToStack(t *testing.T) {
	inner := Insert{Text: lazystring.NewLiteral("x"), Repetitions: 1, Final: edittypes.FinalPositionEnd}
	rebound := WithRepetitions(3, inner)
	if _, ok := rebound.(Stack); !ok {
		t.Fatalf("expected a non-repeatable Transformation to fall back to Stack, got %T", rebound)
	}
}

func TestApplyRepeatedlyStopsAtFirstFailure(t *testing.T) {
	target := newFakeTarget("ab")
	r := ApplyRepeatedly{N: 5, Inner: DeleteCharacters{Repetitions: 1}}.Apply(target)
	if !r.Success {
		t.Errorf("expected overall success since at least one delete succeeded")
	}
	if got := target.text(); got != "" {
		t.Fatalf("text = %q, want empty (both characters deleted)", got)
	}
}
