package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alefore/edge-sub002/internal/obuffer"
)

var (
	buffersListCurrentStyle = lipgloss.NewStyle().Reverse(true)
	buffersListModifiedMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#e78284"))
)

// BuffersList is the composite widget that renders a column of every
// open buffer's name, highlighting the current one and marking
// modified buffers.
type BuffersList struct {
	Buffers func() []*obuffer.OpenBuffer
	Current func() string

	width, height int
}

func NewBuffersList(buffers func() []*obuffer.OpenBuffer, current func() string) *BuffersList {
	return &BuffersList{Buffers: buffers, Current: current}
}

func (l *BuffersList) Init() tea.Cmd { return nil }

func (l *BuffersList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		l.width = m.Width
		l.height = m.Height
	}
	return l, nil
}

func (l *BuffersList) View() string {
	var sb strings.Builder
	current := l.Current()
	buffers := l.Buffers()
	for i, b := range buffers {
		line := b.Name
		if b.Modified() {
			line = buffersListModifiedMark.Render("*") + line
		}
		if b.Name == current {
			line = buffersListCurrentStyle.Render(line)
		}
		sb.WriteString(line)
		if i < len(buffers)-1 {
			sb.WriteByte('\n')
		}
	}
	return lipgloss.NewStyle().Width(l.width).Height(l.height).Render(sb.String())
}
