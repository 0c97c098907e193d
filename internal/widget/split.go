package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Orientation selects how a Split lays out its children.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Split is a composite widget: it lays out its Children either side by
// side (Horizontal) or stacked (Vertical), sharing the available space
// equally among them, and routes input only to the Focused child index.
type Split struct {
	Orientation Orientation
	Children    []tea.Model
	Focused     int

	width, height int
}

func NewSplit(orientation Orientation, children ...tea.Model) *Split {
	return &Split{Orientation: orientation, Children: children}
}

func (s *Split) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(s.Children))
	for i, c := range s.Children {
		cmds[i] = c.Init()
	}
	return tea.Batch(cmds...)
}

func (s *Split) childSize(total int) int {
	if len(s.Children) == 0 {
		return total
	}
	return total / len(s.Children)
}

func (s *Split) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, s.resizeChildren()
	case tea.KeyMsg:
		if s.Focused >= 0 && s.Focused < len(s.Children) {
			return s.updateChild(s.Focused, msg)
		}
	default:
		// Non-focus-specific messages (e.g. a buffer's own reload
		// notifications) go to every child.
		var cmds []tea.Cmd
		for i := range s.Children {
			var cmd tea.Cmd
			_, cmd = s.updateChildModel(i, msg)
			cmds = append(cmds, cmd)
		}
		return s, tea.Batch(cmds...)
	}
	return s, nil
}

func (s *Split) updateChild(i int, msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := s.updateChildModel(i, msg)
	return model, cmd
}

func (s *Split) updateChildModel(i int, msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := s.Children[i].Update(msg)
	s.Children[i] = updated
	return s, cmd
}

func (s *Split) resizeChildren() tea.Cmd {
	var cmds []tea.Cmd
	for i, c := range s.Children {
		var msg tea.WindowSizeMsg
		if s.Orientation == Horizontal {
			msg = tea.WindowSizeMsg{Width: s.childSize(s.width), Height: s.height}
		} else {
			msg = tea.WindowSizeMsg{Width: s.width, Height: s.childSize(s.height)}
		}
		updated, cmd := c.Update(msg)
		s.Children[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *Split) View() string {
	views := make([]string, len(s.Children))
	for i, c := range s.Children {
		views[i] = c.View()
	}
	if s.Orientation == Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
