package pylike

import (
	"testing"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
)

func TestParseGroupsIndentedBlockAsChild(t *testing.T) {
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("def f():"))
	c.PushBack(line.NewFromString("    return 1"))
	c.PushBack(line.NewFromString("print(f())"))

	tree := New().Parse(c)
	if len(tree.Children) != 2 {
		t.Fatalf("got %d top-level children, want 2 (the def block, and the print line's own nesting)", len(tree.Children))
	}
	block := tree.Children[0]
	if len(block.Children) != 1 {
		t.Fatalf("got %d nested children inside the indented block, want 1", len(block.Children))
	}
}

func TestParseBlankLinesDoNotCloseBlock(t *testing.T) {
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("if x:"))
	c.PushBack(line.NewFromString("    a = 1"))
	c.PushBack(line.NewFromString(""))
	c.PushBack(line.NewFromString("    b = 2"))

	tree := New().Parse(c)
	if len(tree.Children) != 1 {
		t.Fatalf("got %d top-level children, want 1 (a blank line must not close the open block)", len(tree.Children))
	}
	if len(tree.Children[0].Children) != 2 {
		t.Fatalf("got %d statements inside the block, want 2", len(tree.Children[0].Children))
	}
}

func TestIndentOfExpandsTabs(t *testing.T) {
	if got := indentOf("\tx"); got != 8 {
		t.Errorf("indentOf(tab) = %d, want 8", got)
	}
	if got := indentOf("  x"); got != 2 {
		t.Errorf("indentOf(two spaces) = %d, want 2", got)
	}
}
