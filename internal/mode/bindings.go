package mode

import (
	"fmt"

	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/transform"
)

// DefaultCommandMode builds the top-level CommandMode with the
// editor's hjkl-movement, word/line-structure, insert, find and
// delete bindings.
func DefaultCommandMode() *CommandMode {
	bindings := map[string]Command{
		"h": moveCommand(edittypes.Backward, edittypes.StructureChar),
		"l": moveCommand(edittypes.Forward, edittypes.StructureChar),
		"k": moveCommand(edittypes.Backward, edittypes.StructureLine),
		"j": moveCommand(edittypes.Forward, edittypes.StructureLine),
		"b": moveCommand(edittypes.Backward, edittypes.StructureWord),
		"w": moveCommand(edittypes.Forward, edittypes.StructureWord),
		"{": moveCommand(edittypes.Backward, edittypes.StructureParagraph),
		"}": moveCommand(edittypes.Forward, edittypes.StructureParagraph),

		"i": {
			Description: "enter insert mode",
			Run:         func(editor Editor) { editor.PushMode(NewInsertMode()) },
		},
		"f": {
			Description: "find character forward",
			Run: func(editor Editor) {
				editor.SetDirection(edittypes.Forward)
				editor.PushMode(NewFindMode())
			},
		},
		"F": {
			Description: "find character backward",
			Run: func(editor Editor) {
				editor.SetDirection(edittypes.Backward)
				editor.PushMode(NewFindMode())
			},
		},
		"x": {
			Description: "delete character, copying it to the paste buffer",
			Run: func(editor Editor) {
				applyToCurrent(editor, transform.Delete{
					Structure:   edittypes.StructureChar,
					Repetitions: editor.Repetitions(),
					Copy:        true,
				})
				editor.ResetRepetitions()
			},
		},
		"d": {
			Description: "delete by structure (word by default; `s` selects word/line/paragraph/buffer first, and char also deletes a word), copying it to the paste buffer",
			Run: func(editor Editor) {
				structure := editor.Structure()
				if structure == edittypes.StructureChar {
					structure = edittypes.StructureWord
				}
				applyToCurrent(editor, transform.Delete{
					Structure:   structure,
					Repetitions: editor.Repetitions(),
					Copy:        true,
				})
				editor.ResetRepetitions()
				editor.SetStructure(edittypes.StructureChar)
			},
		},
		"D": {
			Description: "delete line, copying it to the paste buffer",
			Run: func(editor Editor) {
				applyToCurrent(editor, transform.Delete{
					Structure:   edittypes.StructureLine,
					Repetitions: editor.Repetitions(),
					Copy:        true,
				})
				editor.ResetRepetitions()
			},
		},
		"p": {
			Description: "paste the last deleted/copied text after the cursor",
			Run: func(editor Editor) {
				applyToCurrent(editor, transform.Paste{Repetitions: editor.Repetitions()})
				editor.ResetRepetitions()
			},
		},
		"g": {
			Description: "go to line (Repetitions-1); `r` first reverses to the end of that line instead",
			Run: func(editor Editor) {
				buffer := editor.CurrentBuffer()
				if buffer == nil {
					return
				}
				contents := buffer.Contents()
				lineNum := uint64(editor.Repetitions() - 1)
				if int(lineNum) >= contents.Size() {
					lineNum = uint64(contents.Size() - 1)
				}
				column := uint64(0)
				if editor.Direction() == edittypes.Backward {
					column = uint64(contents.At(int(lineNum)).Size())
				}
				applyToCurrent(editor, transform.GotoPosition{P: linecol.Position{Line: lineNum, Column: column}})
				editor.ResetRepetitions()
				editor.SetDirection(edittypes.Forward)
			},
		},
		"r": {
			Description: "reverse direction for the next command (e.g. `rg` goes to the end of the line)",
			Run: func(editor Editor) {
				editor.SetDirection(editor.Direction().Opposite())
			},
		},
		"s": {
			Description: "select the structure the next `d` applies to: c/w/l/p/b",
			Run: func(editor Editor) {
				editor.PushMode(structureSelectMode())
			},
		},
		"\n": {
			Description: "activate the line under the cursor (e.g. open a file-listing entry)",
			Run: func(editor Editor) {
				buffer := editor.CurrentBuffer()
				if buffer == nil {
					return
				}
				contents := buffer.Contents()
				lineNum := int(buffer.Cursors().Position().Line)
				if lineNum < 0 || lineNum >= contents.Size() {
					return
				}
				editor.ActivateLine(contents.At(lineNum).Activate())
			},
		},
	}
	return NewCommandMode(bindings)
}

// structureSelectMode is the fixed-table submode "s" pushes: the next
// key names a Structure and SetStructure binds it for the following
// command, mirroring "sl2d" (select Line, delete 2).
func structureSelectMode() Mode {
	return NewMapMode(map[string]func(editor Editor){
		"c": func(editor Editor) { editor.SetStructure(edittypes.StructureChar) },
		"w": func(editor Editor) { editor.SetStructure(edittypes.StructureWord) },
		"l": func(editor Editor) { editor.SetStructure(edittypes.StructureLine) },
		"p": func(editor Editor) { editor.SetStructure(edittypes.StructureParagraph) },
		"b": func(editor Editor) { editor.SetStructure(edittypes.StructureBuffer) },
	})
}

func moveCommand(dir edittypes.Direction, structure edittypes.Structure) Command {
	return Command{
		Description: fmt.Sprintf("move %s by %s", dir, structure),
		Run: func(editor Editor) {
			applyToCurrent(editor, transform.Move{
				Direction:   dir,
				Structure:   structure,
				Repetitions: editor.Repetitions(),
			})
			editor.ResetRepetitions()
		},
	}
}

func applyToCurrent(editor Editor, t transform.Transformation) {
	buffer := editor.CurrentBuffer()
	if buffer == nil {
		return
	}
	t.Apply(buffer)
}
