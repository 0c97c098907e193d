package mode

import (
	"unicode/utf8"

	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/transform"
)

// FindMode treats its next key as a search target character; the
// editor then seeks, within the cursor's current line, to the
// Repetitions-th occurrence honoring Direction.
type FindMode struct{}

func NewFindMode() *FindMode { return &FindMode{} }

func (FindMode) ProcessInput(key string, editor Editor) Result {
	editor.PopMode()
	target, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return Result{Consumed: true}
	}

	buffer := editor.CurrentBuffer()
	if buffer == nil {
		return Result{Consumed: true}
	}
	pos := buffer.Cursors().Position()
	l := buffer.Contents().At(int(pos.Line))
	reps := editor.Repetitions()
	if reps <= 0 {
		reps = 1
	}

	col := int(pos.Column)
	found := -1
	remaining := reps
	if editor.Direction() == edittypes.Forward {
		for c := col + 1; c < l.Size(); c++ {
			if l.At(c) == target {
				remaining--
				if remaining == 0 {
					found = c
					break
				}
			}
		}
	} else {
		for c := col - 1; c >= 0; c-- {
			if l.At(c) == target {
				remaining--
				if remaining == 0 {
					found = c
					break
				}
			}
		}
	}

	editor.ResetRepetitions()
	if found < 0 {
		return Result{Consumed: true}
	}
	transform.GotoPosition{P: linecol.Position{Line: pos.Line, Column: uint64(found)}}.Apply(buffer)
	return Result{Consumed: true}
}
