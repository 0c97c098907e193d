package mode

import (
	"unicode/utf8"

	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/lazystring"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/transform"
)

// InsertMode applies one Insert/DeleteCharacters transformation per
// keystroke; each is independently undoable, so the composite edit a
// whole InsertMode session produces undoes one character at a time,
// matching how the transformation stack is structured elsewhere (rather
// than introducing a separate staging buffer that would need its own
// undo translation). ESC pops the mode and runs a trailing-whitespace
// cleanup pass.
type InsertMode struct{}

func NewInsertMode() *InsertMode { return &InsertMode{} }

func (m *InsertMode) ProcessInput(key string, editor Editor) Result {
	buffer := editor.CurrentBuffer()
	if buffer == nil {
		editor.PopMode()
		return Result{Consumed: false}
	}

	switch key {
	case "esc":
		transform.DeleteSuffixSuperfluousCharacters{}.Apply(buffer)
		editor.PopMode()
		return Result{Consumed: true}
	case "enter":
		transform.Insert{Text: lazystring.NewLiteral("\n"), Repetitions: 1, Final: edittypes.FinalPositionEnd}.Apply(buffer)
		return Result{Consumed: true}
	case "backspace":
		pos := buffer.Cursors().Position()
		if pos.Line == 0 && pos.Column == 0 {
			return Result{Consumed: true}
		}
		before := linecol.Position{Line: pos.Line, Column: pos.Column}
		if pos.Column > 0 {
			before.Column = pos.Column - 1
		} else {
			before = linecol.Position{Line: pos.Line - 1, Column: uint64(buffer.Contents().At(int(pos.Line) - 1).Size())}
		}
		transform.AtPosition{P: before, Inner: transform.DeleteCharacters{Repetitions: 1, Copy: false}}.Apply(buffer)
		return Result{Consumed: true}
	}

	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || r == utf8.RuneError {
		return Result{Consumed: false}
	}
	transform.Insert{Text: lazystring.NewLiteral(key), Repetitions: 1, Final: edittypes.FinalPositionEnd}.Apply(buffer)
	return Result{Consumed: true}
}
