package character

import (
	"testing"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
)

func TestParseOneLeafPerCharacter(t *testing.T) {
	c := &buffercontents.Contents{}
	c.PushBack(line.NewFromString("ab"))
	c.PushBack(line.NewFromString("c"))

	tree := New().Parse(c)
	if len(tree.Children) != 3 {
		t.Fatalf("got %d leaves, want 3 (one per character)", len(tree.Children))
	}
	if tree.Children[0].Range.Begin.Column != 0 || tree.Children[0].Range.End.Column != 1 {
		t.Errorf("first leaf range = %+v, want column 0..1", tree.Children[0].Range)
	}
	if tree.Children[2].Range.Begin.Line != 1 {
		t.Errorf("third leaf should be on line 1, got %+v", tree.Children[2].Range)
	}
}
