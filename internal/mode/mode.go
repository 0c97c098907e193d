// Package mode implements the editor's mode stack and dispatcher:
// CommandMode, RepeatMode, InsertMode, FindMode, LinePromptMode, and the
// fixed-table Map/Advanced/Secondary modes. Grounded on
// _examples/original_source/command_mode.cc, insert_mode.cc,
// and the editor's main-loop dispatch convention generally.
package mode

import (
	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/status"
)

// Editor is the slice of EditorState a Mode needs. Defining it here
// (rather than in editorstate) lets editorstate.State implement it
// structurally without mode importing editorstate, avoiding an import
// cycle between the two packages.
type Editor interface {
	CurrentBuffer() *obuffer.OpenBuffer
	Repetitions() int
	SetRepetitions(int)
	ResetRepetitions()
	Direction() edittypes.Direction
	SetDirection(edittypes.Direction)
	Structure() edittypes.Structure
	SetStructure(edittypes.Structure)
	PushMode(Mode)
	PopMode()
	Status() *status.Status
	Terminate()
	ShowHelp(lines []string)
	ActivateLine(h *line.ActivationHandler)
}

// Result is what ProcessInput returns: whether the key was consumed,
// and whether the mode that handled it should now be popped.
type Result struct {
	Consumed bool
	Pop      bool
}

// Mode is one entry of the editor's mode stack.
type Mode interface {
	ProcessInput(key string, editor Editor) Result
}
