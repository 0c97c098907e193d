// Package pylike implements the Python-like TreeParser variant:
// indentation defines block nesting, since no tree-sitter grammar for
// an indentation-sensitive language is present in the retrieved pack.
package pylike

import (
	"strings"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

type Parser struct{}

func New() Parser { return Parser{} }

func indentOf(s string) int {
	n := 0
	for _, r := range s {
		if r == ' ' {
			n++
		} else if r == '\t' {
			n += 8 - (n % 8)
		} else {
			break
		}
	}
	return n
}

// Parse groups consecutive lines into nested blocks by indentation
// depth: a line with greater indentation than its predecessor opens a
// new block that closes at the first subsequent line whose indentation
// is not greater (blank lines do not close a block).
func (Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	size := contents.Size()
	type frame struct {
		indent   int
		begin    linecol.Position
		children []*parsetree.Tree
	}
	stack := []frame{{indent: -1, begin: linecol.Position{}}}

	closeTo := func(targetIndent int, endLine uint64) {
		for len(stack) > 1 && stack[len(stack)-1].indent >= targetIndent {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			end := linecol.Position{Line: endLine, Column: 0}
			node := parsetree.NewNode(linecol.Range{Begin: top.begin, End: end}, nil, top.children...)
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, node)
		}
	}

	for i := 0; i < size; i++ {
		l := contents.At(i)
		text := l.ToString()
		if strings.TrimSpace(text) == "" {
			continue
		}
		indent := indentOf(text)
		lineNum := uint64(i)
		closeTo(indent, lineNum)
		if indent > stack[len(stack)-1].indent {
			stack = append(stack, frame{indent: indent, begin: linecol.Position{Line: lineNum, Column: 0}})
		}
	}
	closeTo(0, uint64(size))

	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	root := stack[0]
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, root.children...)
}
