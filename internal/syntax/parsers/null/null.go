// Package null implements the trivial TreeParser: a single leaf
// spanning the whole buffer, no modifiers. BufferSyntaxParser schedules
// it like any other TreeParser; only a nil TreeParser skips the
// background job.
package null

import (
	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct{}

func New() Parser { return Parser{} }

func (Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	last := contents.Size() - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewLeaf(linecol.Range{Begin: linecol.Position{}, End: end}, nil)
}
