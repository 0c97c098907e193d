package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/obuffer"
)

func TestBufferWidgetViewEmptyBeforeFirstWindowSize(t *testing.T) {
	w := NewBufferWidget(obuffer.New("f", nil), nil)
	if got := w.View(); got != "" {
		t.Fatalf("View() before any WindowSizeMsg = %q, want empty", got)
	}
}

func TestBufferWidgetViewRendersLinesAfterWindowSize(t *testing.T) {
	b := obuffer.New("f", nil)
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("hello"))
	c.PushBack(line.NewFromString("world"))
	*b.Contents() = *c

	w := NewBufferWidget(b, nil)
	w.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	view := w.View()
	if !strings.Contains(view, "hello") || !strings.Contains(view, "world") {
		t.Fatalf("View() = %q, want it to contain both buffer lines", view)
	}
}

func TestBufferWidgetUpdateDelegatesKeyToOnKeyWhenFocused(t *testing.T) {
	called := false
	w := NewBufferWidget(obuffer.New("f", nil), func(*obuffer.OpenBuffer, tea.KeyMsg) tea.Cmd {
		called = true
		return nil
	})
	w.Focused = true
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !called {
		t.Fatalf("expected OnKey to run when the widget is focused")
	}
}

func TestBufferWidgetUpdateIgnoresKeyWhenUnfocused(t *testing.T) {
	called := false
	w := NewBufferWidget(obuffer.New("f", nil), func(*obuffer.OpenBuffer, tea.KeyMsg) tea.Cmd {
		called = true
		return nil
	})
	w.Focused = false
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if called {
		t.Fatalf("expected OnKey not to run when the widget is unfocused")
	}
}

func TestStyleForBoldModifier(t *testing.T) {
	style := styleFor(line.ModifierSet{line.ModifierBold})
	if !style.GetBold() {
		t.Fatalf("expected ModifierBold to produce a bold style")
	}
}
