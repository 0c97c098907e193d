package mode

import (
	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/status"
)

// fakeEditor is a minimal mode.Editor backed by a real obuffer.OpenBuffer,
// used to exercise mode dispatch without a full editorstate.State.
type fakeEditor struct {
	buffer      *obuffer.OpenBuffer
	repetitions int
	direction   edittypes.Direction
	structure   edittypes.Structure
	modes       []Mode
	st          *status.Status
	terminated  bool
	help        []string
	activated   *line.ActivationHandler
}

func newFakeEditor(text string) *fakeEditor {
	b := obuffer.New("t", nil)
	b.SetLoader(nil)
	if text != "" {
		b.Cursors() // ensure tracker initialized
	}
	return &fakeEditor{buffer: b, st: status.New()}
}

func (e *fakeEditor) CurrentBuffer() *obuffer.OpenBuffer          { return e.buffer }
func (e *fakeEditor) Repetitions() int                            { return e.repetitions }
func (e *fakeEditor) SetRepetitions(n int)                        { e.repetitions = n }
func (e *fakeEditor) ResetRepetitions()                            { e.repetitions = 1 }
func (e *fakeEditor) Direction() edittypes.Direction                { return e.direction }
func (e *fakeEditor) SetDirection(d edittypes.Direction)            { e.direction = d }
func (e *fakeEditor) Structure() edittypes.Structure                { return e.structure }
func (e *fakeEditor) SetStructure(s edittypes.Structure)            { e.structure = s }
func (e *fakeEditor) PushMode(m Mode)                               { e.modes = append(e.modes, m) }
func (e *fakeEditor) PopMode() {
	if len(e.modes) > 0 {
		e.modes = e.modes[:len(e.modes)-1]
	}
}
func (e *fakeEditor) Status() *status.Status    { return e.st }
func (e *fakeEditor) Terminate()                { e.terminated = true }
func (e *fakeEditor) ShowHelp(lines []string)    { e.help = lines }
func (e *fakeEditor) ActivateLine(h *line.ActivationHandler) { e.activated = h }
