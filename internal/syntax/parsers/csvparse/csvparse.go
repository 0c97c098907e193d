// Package csvparse implements the Csv TreeParser variant: a row/column
// node tree keyed on a configurable delimiter, grounded on the
// columnar-processing conventions in czcorpus/vert-tagextract
// (_examples/other_examples).
package csvparse

import (
	"strconv"
	"strings"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct {
	Delimiter rune
}

func New(delimiter rune) Parser {
	if delimiter == 0 {
		delimiter = ','
	}
	return Parser{Delimiter: delimiter}
}

func (p Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	size := contents.Size()
	rows := make([]*parsetree.Tree, 0, size)
	for i := 0; i < size; i++ {
		l := contents.At(i)
		text := l.ToString()
		lineNum := uint64(i)
		cols := strings.Split(text, string(p.Delimiter))
		cells := make([]*parsetree.Tree, 0, len(cols))
		col := 0
		for fieldIdx, field := range cols {
			begin := linecol.Position{Line: lineNum, Column: uint64(col)}
			col += len([]rune(field))
			end := linecol.Position{Line: lineNum, Column: uint64(col)}
			cell := parsetree.NewLeaf(linecol.Range{Begin: begin, End: end}, nil)
			cell.Properties = map[string]string{"column": strconv.Itoa(fieldIdx)}
			cells = append(cells, cell)
			col++ // the delimiter itself
		}
		rowRange := linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(l.Size())},
		}
		row := parsetree.NewNode(rowRange, nil, cells...)
		row.Properties = map[string]string{"row": strconv.Itoa(i)}
		rows = append(rows, row)
	}
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, rows...)
}

