// Package mdparse implements the Markdown TreeParser variant:
// heading/list/code-fence block recognition, grounded on glow's
// markdown-rendering conventions in _examples/other_examples.
package mdparse

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
	inFence := false
	for i := 0; i < size; i++ {
		l := contents.At(i)
		text := l.ToString()
		trimmed := strings.TrimSpace(text)
		lineNum := uint64(i)
		r := linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(l.Size())},
		}

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			leaf := parsetree.NewLeaf(r, line.ModifierSet{line.ModifierDim})
			leaf.Properties = map[string]string{"kind": "code_fence"}
			children = append(children, leaf)
			continue
		}
		if inFence {
			leaf := parsetree.NewLeaf(r, line.ModifierSet{line.ModifierGreen})
			leaf.Properties = map[string]string{"kind": "code"}
			children = append(children, leaf)
			continue
		}

		kind, mods := classify(trimmed)
		leaf := parsetree.NewLeaf(r, mods)
		leaf.Properties = map[string]string{"kind": kind}
		children = append(children, leaf)
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, children...)
}

func classify(trimmed string) (string, line.ModifierSet) {
	switch {
	case strings.HasPrefix(trimmed, "#"):
		return "heading", line.ModifierSet{line.ModifierBold, line.ModifierBlue}
	case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "), strings.HasPrefix(trimmed, "+ "):
		return "list_item", line.ModifierSet{line.ModifierYellow}
	case isOrderedListItem(trimmed):
		return "list_item", line.ModifierSet{line.ModifierYellow}
	case strings.HasPrefix(trimmed, ">"):
		return "blockquote", line.ModifierSet{line.ModifierDim}
	case trimmed == "":
		return "blank", nil
	default:
		return "paragraph", nil
	}
}

func isOrderedListItem(trimmed string) bool {
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	return i > 0 && i < len(trimmed) && trimmed[i] == '.'
}
