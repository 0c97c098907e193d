package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alefore/edge-sub002/internal/editorstate"
	"github.com/alefore/edge-sub002/internal/elog"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/widget"
)

// rootModel is the top-level tea.Model: it owns the EditorState and
// delegates rendering to a BufferWidget over the current buffer,
// driving the editor's render/deliver-input/drain-WorkQueue cycle
// through bubbletea's own Update/View loop rather than a hand-rolled
// blocking one.
type rootModel struct {
	state  *editorstate.State
	buffer *widget.BufferWidget
	width  int
	height int
}

func newRootModel(state *editorstate.State) *rootModel {
	m := &rootModel{state: state}
	m.buffer = widget.NewBufferWidget(state.CurrentBuffer(), m.handleKey)
	m.buffer.Focused = true
	return m
}

func (m *rootModel) handleKey(buffer *obuffer.OpenBuffer, msg tea.KeyMsg) tea.Cmd {
	_ = buffer
	r := m.state.DeliverInput(msg.String())
	if !r.Consumed {
		elog.Debugf("unhandled key %q", msg.String())
	}
	if m.state.ShouldTerminate() {
		return tea.Quit
	}
	return nil
}

func (m *rootModel) Init() tea.Cmd { return m.buffer.Init() }

// workQueueDrainedMsg is sent by the WorkQueue's scheduleListener
// whenever background work (syntax parsing, shell buffer output) has
// something new to deliver, waking the bubbletea program the same way
// readable input would: the editor's loop blocks on input, a
// scheduled work item, or a watched fd, whichever comes first.
type workQueueDrainedMsg struct{}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case workQueueDrainedMsg:
		m.state.WorkQueue.Execute(time.Now())
		return m, nil
	case tea.WindowSizeMsg:
		sizeMsg := msg.(tea.WindowSizeMsg)
		m.width, m.height = sizeMsg.Width, sizeMsg.Height
	case tea.KeyMsg:
		if current := m.state.CurrentBuffer(); current != m.buffer.Buffer {
			m.buffer = widget.NewBufferWidget(current, m.handleKey)
			m.buffer.Focused = true
		}
	}
	updated, cmd := m.buffer.Update(msg)
	m.buffer = updated.(*widget.BufferWidget)
	return m, cmd
}

func (m *rootModel) View() string { return m.buffer.View() }
