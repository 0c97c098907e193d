// Package character implements the Character TreeParser variant: one
// leaf node per character.
package character

import (
	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct{}

func New() Parser { return Parser{} }

func (Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	var children []*parsetree.Tree
	size := contents.Size()
	for i := 0; i < size; i++ {
		l := contents.At(i)
		lineNum := uint64(i)
		for col := 0; col < l.Size(); col++ {
			begin := linecol.Position{Line: lineNum, Column: uint64(col)}
			end := linecol.Position{Line: lineNum, Column: uint64(col + 1)}
			children = append(children, parsetree.NewLeaf(linecol.Range{Begin: begin, End: end}, l.ModifiersAt(col)))
		}
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, children...)
}
