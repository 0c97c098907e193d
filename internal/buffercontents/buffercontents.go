// Package buffercontents implements BufferContents: the ordered sequence
// of Lines that is a buffer's text. A Contents is not persistent: its
// mutating methods update the tree in place, and Clone is the way to get
// an independent copy. Grounded on
// _examples/original_source/src/buffer_contents.h and backed by the
// size-augmented treap in treap.go (the Go analogue of the original's
// hand-rolled balanced Tree<Item>).
package buffercontents

import (
	"sort"
	"strings"

	"github.com/alefore/edge-sub002/internal/line"
)

// Line is the element type stored in Contents.
type Line = line.Line

// Contents is an ordered sequence of *Line. The zero value is a valid empty
// Contents (matching BufferContents() = default in the original).
type Contents struct {
	root *node
}

// New returns an empty Contents with exactly one empty line, matching the
// invariant that a buffer always has at least one line to edit into.
func New() *Contents {
	c := &Contents{}
	c.PushBack(line.NewFromString(""))
	return c
}

func (c *Contents) Empty() bool { return count(c.root) == 0 }
func (c *Contents) Size() int   { return count(c.root) }

// At returns the line at position, panicking if out of range: an
// out-of-range index is always a programmer error, never recoverable
// input.
func (c *Contents) At(position int) *Line {
	n := at(c.root, position)
	if n == nil {
		panic("buffercontents: index out of range")
	}
	return n.item
}

func (c *Contents) Front() *Line { return c.At(0) }
func (c *Contents) Back() *Line  { return c.At(c.Size() - 1) }

// InsertLine inserts line at position, shifting later lines down. O(log n).
func (c *Contents) InsertLine(position int, l *Line) {
	c.root = insertAt(c.root, position, l)
}

// SetLine replaces the line at position. O(log n).
func (c *Contents) SetLine(position int, l *Line) {
	if position > c.Size() {
		panic("buffercontents: SetLine position out of range")
	}
	if position == c.Size() {
		c.PushBack(l)
		return
	}
	c.root = setAt(c.root, position, l)
}

// EraseLines removes [first, last). O(log n).
func (c *Contents) EraseLines(first, last int) {
	if first > last || last > c.Size() {
		panic("buffercontents: EraseLines range out of bounds")
	}
	c.root = eraseRange(c.root, first, last)
}

// PushBack appends a line at the end. Amortized O(log n).
func (c *Contents) PushBack(l *Line) {
	c.root = merge(c.root, newNode(l))
}

// Sort reorders [first, last) according to less. O(k log k).
func (c *Contents) Sort(first, last int, less func(a, b *Line) bool) {
	if first >= last {
		return
	}
	l, mr := split(c.root, first)
	mid, r := split(mr, last-first)
	items := collect(mid, nil)
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	mid = buildBalanced(items)
	c.root = merge(merge(l, mid), r)
}

// ForEach visits every line in order, stopping early if fn returns false.
// Returns true iff it iterated to completion.
func (c *Contents) ForEach(fn func(index int, l *Line) bool) bool {
	i := 0
	return forEach(c.root, func(l *Line) bool {
		ok := fn(i, l)
		i++
		return ok
	})
}

// ForEachLine is the convenience wrapper ignoring the index.
func (c *Contents) ForEachLine(fn func(l *Line)) {
	c.ForEach(func(_ int, l *Line) bool { fn(l); return true })
}

// UpperBound returns the position of the first line for which
// less(key, line) is true — the standard upper_bound semantics,
// skipping over any run of lines equal to key — searching [0, Size())
// by binary search over indices: O(log n) probes, each an O(log n) At, so
// O(log² n) in total (the tree itself doesn't
// expose a sorted-key walk cheaper than this without per-node key
// caching, which BufferContents does not need).
func (c *Contents) UpperBound(key *Line, less func(a, b *Line) bool) int {
	lo, hi := 0, c.Size()
	for lo < hi {
		mid := (lo + hi) / 2
		if less(key, c.At(mid)) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// CountCharacters sums every line's size plus one newline per line except
// the last (lines never store their own embedded newline).
func (c *Contents) CountCharacters() int {
	total := 0
	n := c.Size()
	c.ForEach(func(i int, l *Line) bool {
		total += l.Size()
		if i < n-1 {
			total++
		}
		return true
	})
	return total
}

// ToString concatenates every line, separated by '\n', in O(total chars).
func (c *Contents) ToString() string {
	var sb strings.Builder
	n := c.Size()
	c.ForEach(func(i int, l *Line) bool {
		sb.WriteString(l.ToString())
		if i < n-1 {
			sb.WriteByte('\n')
		}
		return true
	})
	return sb.String()
}

// Concatenate returns the text of lines [first, last) joined by '\n'.
func (c *Contents) Concatenate(first, last int) string {
	var sb strings.Builder
	for i := first; i < last; i++ {
		if i > first {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.At(i).ToString())
	}
	return sb.String()
}

// Clone returns an independent copy: lines are shared (they are
// immutable), but every treap node is rebuilt up front, so later
// mutation of either Contents does not affect the other. The copy costs
// O(n log n) expected time (see buildBalanced).
func (c *Contents) Clone() *Contents {
	items := collect(c.root, nil)
	return &Contents{root: buildBalanced(items)}
}
