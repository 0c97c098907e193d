// Package diffparse implements the Diff TreeParser variant:
// unified-diff hunk headers and +/- line classification, grounded on
// the inline-diff rendering idiom found in _examples/other_examples
// (jarvis-term-llm's inline diff view).
package diffparse

import (
	"strings"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct{}

func New() Parser { return Parser{} }

func (Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	size := contents.Size()
	children := make([]*parsetree.Tree, 0, size)
	for i := 0; i < size; i++ {
		l := contents.At(i)
		text := l.ToString()
		lineNum := uint64(i)
		r := linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(l.Size())},
		}
		leaf := parsetree.NewLeaf(r, classify(text))
		leaf.Properties = map[string]string{"kind": kindOf(text)}
		children = append(children, leaf)
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, children...)
}

func kindOf(text string) string {
	switch {
	case strings.HasPrefix(text, "@@"):
		return "hunk_header"
	case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
		return "file_header"
	case strings.HasPrefix(text, "+"):
		return "added"
	case strings.HasPrefix(text, "-"):
		return "removed"
	default:
		return "context"
	}
}

func classify(text string) line.ModifierSet {
	switch kindOf(text) {
	case "hunk_header":
		return line.ModifierSet{line.ModifierCyan, line.ModifierBold}
	case "file_header":
		return line.ModifierSet{line.ModifierBold}
	case "added":
		return line.ModifierSet{line.ModifierGreen}
	case "removed":
		return line.ModifierSet{line.ModifierRed}
	default:
		return nil
	}
}
