// Package widget implements the editor's widget tree: BufferWidget is a
// tea.Model leaf; horizontal/vertical splits and the buffers list are
// composite tea.Models wrapping it. BufferWidget started from
// pkg/buffer.Model, generalized from a single hard-coded file viewer
// into a view over any obuffer.OpenBuffer plus the shared
// window.Project algorithm.
package widget

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/window"
)

// theme maps line.Modifier to a foreground color, the generalized form
// of pkg/buffer.Model's hard-coded Catppuccin Frappe base16 palette.
var theme = map[line.Modifier]string{
	line.ModifierReset:     "#c6d0f5",
	line.ModifierBold:      "#c6d0f5",
	line.ModifierDim:       "#626880",
	line.ModifierUnderline: "#c6d0f5",
	line.ModifierReverse:   "#c6d0f5",
	line.ModifierCyan:      "#81c8be",
	line.ModifierGreen:     "#a6d189",
	line.ModifierRed:       "#e78284",
	line.ModifierYellow:    "#e5c890",
	line.ModifierBlue:      "#8caaee",
	line.ModifierMagenta:   "#ca9ee6",
}

var lineNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#51576d"))

// KeyHandler is how a BufferWidget delegates key handling to the mode
// stack, which lives in internal/mode and cannot be imported here
// without a cycle (mode depends on obuffer/transform, which must not
// depend on widget). It returns a tea.Cmd the same way any other
// bubbletea handler would.
type KeyHandler func(buffer *obuffer.OpenBuffer, msg tea.KeyMsg) tea.Cmd

// BufferWidget renders a single OpenBuffer. It is the leaf of the
// widget tree.
type BufferWidget struct {
	Buffer     *obuffer.OpenBuffer
	OnKey      KeyHandler
	Focused    bool
	ready      bool
	lines      int
	columns    int
	lineNumber bool
}

func NewBufferWidget(b *obuffer.OpenBuffer, onKey KeyHandler) *BufferWidget {
	return &BufferWidget{Buffer: b, OnKey: onKey, lineNumber: true}
}

func (w *BufferWidget) Init() tea.Cmd { return nil }

func (w *BufferWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.lines = msg.Height
		w.columns = msg.Width
		w.ready = true
	case tea.KeyMsg:
		if w.Focused && w.OnKey != nil {
			return w, w.OnKey(w.Buffer, msg)
		}
	}
	return w, nil
}

func (w *BufferWidget) View() string {
	if !w.ready {
		return ""
	}
	gutter := 0
	if w.lineNumber {
		gutter = 6
	}
	active := w.Buffer.Cursors().Position()
	wrapStyle := edittypes.WrapNone
	if w.Buffer.Bool(obuffer.VarWrapFromContent) {
		wrapStyle = edittypes.WrapBreakWords
	}
	screenLines := window.Project(window.Inputs{
		Contents:         w.Buffer.Contents(),
		ActiveCursors:    w.Buffer.Cursors().ActiveSet(),
		ActivePosition:   &active,
		WrapStyle:        wrapStyle,
		SymbolCharacters: w.Buffer.String(obuffer.VarSymbolCharacters),
		LinesShown:       w.lines,
		ColumnsShown:     w.columns - gutter,
		ViewportBegin:    w.Buffer.ViewStart(),
		MarginLines:      w.Buffer.Int(obuffer.VarMarginLines),
	})
	if len(screenLines) > 0 {
		w.Buffer.SetViewStart(linecol.Position{Line: screenLines[0].Range.Begin.Line})
	}

	var sb strings.Builder
	for i, sl := range screenLines {
		if w.lineNumber {
			sb.WriteString(lineNumberStyle.Render(fmt.Sprintf("%4d  ", sl.Range.Begin.Line+1)))
		}
		sb.WriteString(renderScreenLine(w.Buffer, sl))
		if i < len(screenLines)-1 {
			sb.WriteByte('\n')
		}
	}
	return lipgloss.NewStyle().Width(w.columns).Height(w.lines).Render(sb.String())
}

func renderScreenLine(b *obuffer.OpenBuffer, sl window.ScreenLine) string {
	l := b.Contents().At(int(sl.Range.Begin.Line))
	var sb strings.Builder
	for col := int(sl.Range.Begin.Column); col < int(sl.Range.End.Column); col++ {
		ch := l.At(col)
		style := styleFor(l.ModifiersAt(col))
		if sl.CurrentCursors[uint64(col)] {
			style = style.Reverse(true)
		}
		sb.WriteString(style.Render(string(ch)))
	}
	if sl.CurrentCursors[sl.Range.End.Column] && int(sl.Range.End.Column) == l.Size() {
		sb.WriteString(lipgloss.NewStyle().Reverse(true).Render(" "))
	}
	return sb.String()
}

func styleFor(mods line.ModifierSet) lipgloss.Style {
	style := lipgloss.NewStyle()
	color := theme[line.ModifierReset]
	for _, m := range mods {
		if c, ok := theme[m]; ok {
			color = c
		}
		if m == line.ModifierBold {
			style = style.Bold(true)
		}
		if m == line.ModifierUnderline {
			style = style.Underline(true)
		}
	}
	return style.Foreground(lipgloss.Color(color))
}
