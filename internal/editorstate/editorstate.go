// Package editorstate implements EditorState: the registry of buffers,
// the current buffer, the mode stack, the repetitions/direction/
// structure modifiers, the status line, the thread pool and work
// queue, and the termination flag. Grounded on
// _examples/original_source/editor.h/.cc for field layout.
package editorstate

import (
	"os"
	"sort"
	"time"

	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/fsload"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/mode"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/scripthost"
	"github.com/alefore/edge-sub002/internal/status"
	"github.com/alefore/edge-sub002/internal/syntax"
	"github.com/alefore/edge-sub002/internal/threadpool"
	"github.com/alefore/edge-sub002/internal/workqueue"
)

const helpBufferName = "*help*"

// State is the editor's top-level aggregate. It implements
// mode.Editor, so every built-in mode can drive it without mode
// importing this package (avoiding an import cycle).
type State struct {
	buffers map[string]*obuffer.OpenBuffer
	order   []string
	current string

	modeStack []mode.Mode

	repetitions int
	direction   edittypes.Direction
	structure   edittypes.Structure

	status *status.Status

	Pool      *threadpool.ThreadPool
	WorkQueue *workqueue.WorkQueue

	terminate bool
	exitValue int

	Env scripthost.Environment
}

// New constructs an EditorState with a single empty "*scratch*" buffer
// current, and CommandMode as the sole entry of the mode stack. pool
// and completionQueue are shared across every buffer's
// BufferSyntaxParser, keeping a single background thread pool for the
// whole process.
func New(pool *threadpool.ThreadPool, completionQueue *workqueue.WorkQueue, commandMode mode.Mode) *State {
	s := &State{
		buffers:     map[string]*obuffer.OpenBuffer{},
		repetitions: 1,
		direction:   edittypes.Forward,
		structure:   edittypes.StructureChar,
		status:      status.New(),
		Pool:        pool,
		WorkQueue:   completionQueue,
		modeStack:   []mode.Mode{commandMode},
	}
	s.AddBuffer(obuffer.New("*scratch*", nil))
	s.current = "*scratch*"
	return s
}

// AddBuffer registers b, making it addressable by name; it does not
// change CurrentBuffer.
func (s *State) AddBuffer(b *obuffer.OpenBuffer) {
	if _, exists := s.buffers[b.Name]; !exists {
		s.order = append(s.order, b.Name)
	}
	s.buffers[b.Name] = b
}

func (s *State) RemoveBuffer(name string) {
	delete(s.buffers, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.current == name {
		if len(s.order) > 0 {
			s.current = s.order[0]
		} else {
			s.current = ""
		}
	}
}

func (s *State) Buffer(name string) (*obuffer.OpenBuffer, bool) {
	b, ok := s.buffers[name]
	return b, ok
}

// Buffers returns every open buffer, in the order they were added.
func (s *State) Buffers() []*obuffer.OpenBuffer {
	out := make([]*obuffer.OpenBuffer, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.buffers[name])
	}
	return out
}

func (s *State) SetCurrentBuffer(name string) bool {
	if _, ok := s.buffers[name]; !ok {
		return false
	}
	s.current = name
	return true
}

func (s *State) CurrentBufferName() string { return s.current }

// mode.Editor implementation.

func (s *State) CurrentBuffer() *obuffer.OpenBuffer {
	return s.buffers[s.current]
}

func (s *State) Repetitions() int { return s.repetitions }

func (s *State) SetRepetitions(n int) {
	if n < 1 {
		n = 1
	}
	s.repetitions = n
}

func (s *State) ResetRepetitions() { s.repetitions = 1 }

func (s *State) Direction() edittypes.Direction { return s.direction }
func (s *State) SetDirection(d edittypes.Direction) { s.direction = d }

func (s *State) Structure() edittypes.Structure { return s.structure }
func (s *State) SetStructure(st edittypes.Structure) { s.structure = st }

func (s *State) PushMode(m mode.Mode) { s.modeStack = append(s.modeStack, m) }

func (s *State) PopMode() {
	if len(s.modeStack) > 1 {
		s.modeStack = s.modeStack[:len(s.modeStack)-1]
	}
}

// ActiveMode returns the mode stack's top entry, the one that receives
// the next input event.
func (s *State) ActiveMode() mode.Mode {
	return s.modeStack[len(s.modeStack)-1]
}

func (s *State) Status() *status.Status { return s.status }

func (s *State) Terminate() { s.terminate = true }

func (s *State) ShouldTerminate() bool { return s.terminate }

// SetExitValue records the process exit code the editor should return
// once it terminates; default 0. Grounded on spec.md §6's
// set_exit_value/exit-code contract.
func (s *State) SetExitValue(v int) { s.exitValue = v }

// ExitValue returns the exit code set via SetExitValue, or 0 if never
// called.
func (s *State) ExitValue() int { return s.exitValue }

// ShowHelp materializes lines into the well-known help buffer and
// switches to it; CommandMode's "?" binding calls this.
func (s *State) ShowHelp(lines []string) {
	b, ok := s.Buffer(helpBufferName)
	if !ok {
		b = obuffer.New(helpBufferName, nil)
		s.AddBuffer(b)
	}
	sorted := append([]string(nil), lines...)
	sort.Strings(sorted)
	for i, text := range sorted {
		if i == 0 {
			b.Contents().SetLine(0, line.NewFromString(text))
		} else {
			b.Contents().PushBack(line.NewFromString(text))
		}
	}
	s.SetCurrentBuffer(helpBufferName)
}

// DeliverInput routes a single key event to the active mode, then
// drains the WorkQueue, the main loop's deliver-and-drain steps.
func (s *State) DeliverInput(key string) mode.Result {
	r := s.ActiveMode().ProcessInput(key, s)
	s.WorkQueue.Execute(time.Now())
	return r
}

// NewSyntaxParser builds a BufferSyntaxParser sharing this EditorState's
// thread pool, for use by buffer-creation call sites.
func (s *State) NewSyntaxParser(initial syntax.TreeParser) *syntax.Parser {
	return syntax.New(s.Pool, initial)
}

// ActivateLine honors a line.ActivationHandler resolved at call time
// from the current buffer's active line (CommandMode's "\n" binding):
// h.Data names a filesystem path, opened as a buffer (reusing one
// already open under that name) and switched to. Grounded on
// _examples/original_source/command_mode.cc's ActivateLink binding.
func (s *State) ActivateLine(h *line.ActivationHandler) {
	if h == nil {
		return
	}
	path := h.Data
	if _, ok := s.Buffer(path); ok {
		s.current = path
		return
	}
	buffer := obuffer.New(path, s.NewSyntaxParser(nil))
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		buffer.SetLoader(fsload.DirectoryLoader(path))
	} else {
		buffer.SetLoader(fsload.FileLoader(path))
	}
	if err := buffer.Reload(); err != nil {
		s.status.SetWarning(err.Error())
		return
	}
	s.AddBuffer(buffer)
	s.current = path
}
