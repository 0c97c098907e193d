// Package cpplike implements the "Cpp-like" TreeParser variant. Where a
// go-tree-sitter grammar is available (the golang/rust/nix trio) the
// parse tree is derived from the grammar's real syntax tree; otherwise
// it falls back to a hand-rolled bracket/brace/paren matcher, which is
// what the original's cpp_parse_tree.cc does for languages it has no
// grammar for.
package cpplike

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/nix"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
)

// Language selects which grammar (if any) backs the parse.
type Language int

const (
	LanguagePlain Language = iota
	LanguageGo
	LanguageRust
	LanguageNix
)

type Parser struct {
	Lang Language
}

func New(lang Language) Parser { return Parser{Lang: lang} }

func (p Parser) grammar() *sitter.Language {
	switch p.Lang {
	case LanguageGo:
		return golang.GetLanguage()
	case LanguageRust:
		return rust.GetLanguage()
	case LanguageNix:
		return nix.GetLanguage()
	default:
		return nil
	}
}

func (p Parser) Parse(contents *buffercontents.Contents) *parsetree.Tree {
	lang := p.grammar()
	if lang == nil {
		return bracketMatch(contents)
	}
	source := []byte(contents.ToString())
	root, err := sitter.ParseCtx(context.Background(), source, lang)
	if err != nil || root == nil {
		return bracketMatch(contents)
	}
	return convertNode(root, source)
}

func byteOffsetsToPosition(source []byte, offset uint32) linecol.Position {
	lineNum := uint64(0)
	lastNewline := -1
	for i := 0; i < int(offset) && i < len(source); i++ {
		if source[i] == '\n' {
			lineNum++
			lastNewline = i
		}
	}
	col := int(offset) - lastNewline - 1
	if col < 0 {
		col = 0
	}
	return linecol.Position{Line: lineNum, Column: uint64(col)}
}

func convertNode(n *sitter.Node, source []byte) *parsetree.Tree {
	begin := byteOffsetsToPosition(source, n.StartByte())
	end := byteOffsetsToPosition(source, n.EndByte())
	mods := modifiersForNodeType(n.Type())
	r := linecol.Range{Begin: begin, End: end}

	count := int(n.ChildCount())
	if count == 0 {
		return parsetree.NewLeaf(r, mods)
	}
	children := make([]*parsetree.Tree, 0, count)
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		children = append(children, convertNode(c, source))
	}
	t := parsetree.NewNode(r, mods, children...)
	t.Properties = map[string]string{"node_type": n.Type()}
	return t
}

func modifiersForNodeType(nodeType string) line.ModifierSet {
	switch {
	case strings.Contains(nodeType, "comment"):
		return line.ModifierSet{line.ModifierDim}
	case strings.Contains(nodeType, "string"), strings.Contains(nodeType, "char_literal"):
		return line.ModifierSet{line.ModifierGreen}
	case strings.Contains(nodeType, "number"), strings.Contains(nodeType, "int_literal"), strings.Contains(nodeType, "float_literal"):
		return line.ModifierSet{line.ModifierCyan}
	case isKeywordNodeType(nodeType):
		return line.ModifierSet{line.ModifierYellow}
	case strings.Contains(nodeType, "type"):
		return line.ModifierSet{line.ModifierBlue}
	default:
		return nil
	}
}

// isKeywordNodeType reports whether nodeType names a grammar keyword
// token: tree-sitter grammars name these nodes after the literal
// keyword text itself (e.g. "func", "if", "fn", "let"), so there is no
// single substring to match on; check against the small set common to
// the go/rust/nix grammars instead.
func isKeywordNodeType(nodeType string) bool {
	switch nodeType {
	case "func", "package", "import", "return", "if", "else", "for", "range",
		"var", "const", "type", "struct", "interface", "go", "defer", "select",
		"switch", "case", "default", "chan", "map",
		"fn", "let", "mut", "impl", "pub", "use", "mod", "match", "trait", "enum",
		"with", "rec", "inherit", "assert":
		return true
	default:
		return false
	}
}

// bracketMatch is the grammar-less fallback: a hand-rolled matcher that
// nests parse tree nodes by (), {}, [] pairing, mirroring what
// cpp_parse_tree.cc does for languages without a registered grammar.
func bracketMatch(contents *buffercontents.Contents) *parsetree.Tree {
	type frame struct {
		begin    linecol.Position
		children []*parsetree.Tree
	}
	size := contents.Size()
	last := size - 1
	end := linecol.Position{Line: uint64(last), Column: uint64(contents.At(last).Size())}
	stack := []frame{{begin: linecol.Position{}}}

	closeFor := map[rune]rune{'(': ')', '{': '}', '[': ']'}
	isOpen := func(r rune) bool { _, ok := closeFor[r]; return ok }
	isClose := func(r rune) bool { return r == ')' || r == '}' || r == ']' }

	for i := 0; i < size; i++ {
		l := contents.At(i)
		lineNum := uint64(i)
		for col := 0; col < l.Size(); col++ {
			ch := l.At(col)
			pos := linecol.Position{Line: lineNum, Column: uint64(col)}
			switch {
			case isOpen(ch):
				stack = append(stack, frame{begin: pos})
			case isClose(ch) && len(stack) > 1:
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				closeEnd := linecol.Position{Line: lineNum, Column: uint64(col + 1)}
				node := parsetree.NewNode(linecol.Range{Begin: top.begin, End: closeEnd}, nil, top.children...)
				node.Properties = map[string]string{"bracket": string(ch)}
				parent := &stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
		}
	}
	root := stack[0]
	return parsetree.NewNode(linecol.Range{Begin: linecol.Position{}, End: end}, nil, root.children...)
}
