package widget

import (
	"strings"
	"testing"

	"github.com/alefore/edge-sub002/internal/obuffer"
)

func TestBuffersListMarksModifiedAndCurrent(t *testing.T) {
	a := obuffer.New("a", nil)
	b := obuffer.New("b", nil)
	b.MarkModified()

	l := NewBuffersList(
		func() []*obuffer.OpenBuffer { return []*obuffer.OpenBuffer{a, b} },
		func() string { return "a" },
	)
	l.width, l.height = 20, 2

	view := l.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rendered lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "*") || !strings.Contains(lines[1], "b") {
		t.Errorf("modified buffer line = %q, want it to contain the modified mark and name", lines[1])
	}
	if !strings.Contains(lines[0], "a") {
		t.Errorf("current buffer line = %q, want it to contain the name", lines[0])
	}
}
