// Package line implements the Line TreeParser variant: one leaf node
// per source line.
package line

import (
	"github.com/alefore/edge-sub002/internal/buffercontents"
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
		lineNum := uint64(i)
		r := linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(l.Size())},
		}
		children = append(children, parsetree.NewLeaf(r, nil))
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, children...)
}
