// Package word implements the Word TreeParser variant: one leaf node
// per maximal run of word characters.
package word

import (
	"unicode"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct{}

func New() Parser { return Parser{} }

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	var children []*parsetree.Tree
	size := contents.Size()
	for i := 0; i < size; i++ {
		l := contents.At(i)
		lineNum := uint64(i)
		col := 0
		for col < l.Size() {
			if !isWordChar(l.At(col)) {
				col++
				continue
			}
			start := col
			for col < l.Size() && isWordChar(l.At(col)) {
				col++
			}
			begin := linecol.Position{Line: lineNum, Column: uint64(start)}
			end := linecol.Position{Line: lineNum, Column: uint64(col)}
			children = append(children, parsetree.NewLeaf(linecol.Range{Begin: begin, End: end}, nil))
		}
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, children...)
}
