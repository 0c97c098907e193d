// Package parsetree implements ParseTree and ZoomedOutTree: the region
// annotation structures produced by the syntax parsers over a
// BufferContents snapshot, grounded on
// _examples/original_source/src/parse_tree.h and cpp_parse_tree.cc.
package parsetree

import (
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
)

// Tree is one node of a ParseTree: a range, the modifiers that apply to
// text in that range, free-form properties (e.g. "keyword", "string"), and
// non-overlapping children sorted by Range.Begin.
type Tree struct {
	Range      linecol.Range
	Modifiers  line.ModifierSet
	Properties map[string]string
	Children   []*Tree
}

// NewLeaf builds a childless node.
func NewLeaf(r linecol.Range, mods line.ModifierSet) *Tree {
	return &Tree{Range: r, Modifiers: mods}
}

// NewNode builds a node whose Range is extended to cover all children plus
// the given range, and whose children are kept sorted by Begin.
func NewNode(r linecol.Range, mods line.ModifierSet, children ...*Tree) *Tree {
	t := &Tree{Range: r, Modifiers: mods, Children: children}
	for _, c := range children {
		if c.Range.Begin.Less(t.Range.Begin) {
			t.Range.Begin = c.Range.Begin
		}
		if t.Range.End.Less(c.Range.End) {
			t.Range.End = c.Range.End
		}
	}
	return t
}

// Null returns the trivial, single-node tree spanning no text (used by the
// Null TreeParser).
func Null() *Tree {
	return &Tree{Range: linecol.Range{}}
}

// FindDeepest returns the most specific node whose range contains
// position, descending from t.
func (t *Tree) FindDeepest(position linecol.Position) *Tree {
	current := t
	for {
		advanced := false
		for _, child := range current.Children {
			if child.Range.ContainsPosition(position) {
				current = child
				advanced = true
				break
			}
		}
		if !advanced {
			return current
		}
	}
}

// Walk visits t and every descendant, pre-order.
func (t *Tree) Walk(fn func(*Tree)) {
	fn(t)
	for _, c := range t.Children {
		c.Walk(fn)
	}
}

// ZoomedOut is a ParseTree whose leaves correspond to equally sized
// vertical screen bands, keyed by the view-line-count it was collapsed
// for.
type ZoomedOut struct {
	ViewLines int
	Root      *Tree
}

// Zoom collapses full into a ZoomedOut tree with exactly viewLines leaves
// (or fewer, if the buffer has fewer lines than viewLines), each spanning
// an equal share of full's line range. This is a coarse summary used by
// minimap-style widgets, not a precise re-derivation of full's structure.
func Zoom(full *Tree, totalLines, viewLines int) *ZoomedOut {
	if viewLines <= 0 {
		viewLines = 1
	}
	if totalLines <= 0 {
		totalLines = 1
	}
	bands := viewLines
	if totalLines < bands {
		bands = totalLines
	}
	leaves := make([]*Tree, 0, bands)
	linesPerBand := float64(totalLines) / float64(bands)
	prevEnd := uint64(0)
	for i := 0; i < bands; i++ {
		end := uint64(float64(i+1) * linesPerBand)
		if i == bands-1 || end > uint64(totalLines) {
			end = uint64(totalLines)
		}
		if end <= prevEnd {
			end = prevEnd + 1
		}
		r := linecol.LineRange(prevEnd, end)
		leaves = append(leaves, dominantModifierLeaf(full, r))
		prevEnd = end
	}
	root := NewNode(linecol.LineRange(0, uint64(totalLines)), nil, leaves...)
	return &ZoomedOut{ViewLines: viewLines, Root: root}
}

// dominantModifierLeaf picks the modifier set that covers the most
// characters within r, by walking full's leaves that intersect r.
func dominantModifierLeaf(full *Tree, r linecol.Range) *Tree {
	counts := map[string]int{}
	best := line.ModifierSet(nil)
	bestCount := -1
	full.Walk(func(t *Tree) {
		if len(t.Children) != 0 {
			return
		}
		inter := t.Range.Intersection(r)
		if inter.Empty() {
			return
		}
		key := modifierKey(t.Modifiers)
		n := int(inter.End.Line-inter.Begin.Line) + 1
		counts[key] += n
		if counts[key] > bestCount {
			bestCount = counts[key]
			best = t.Modifiers
		}
	})
	return NewLeaf(r, best)
}

func modifierKey(m line.ModifierSet) string {
	key := make([]byte, len(m))
	for i, v := range m {
		key[i] = byte(v)
	}
	return string(key)
}
