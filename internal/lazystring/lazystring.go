// Package lazystring implements an immutable, random-access character
// sequence with O(1) size and concatenation that is O(1) until a chain of
// appends grows past appendRebalanceDepth (see Append), grounded on
// _examples/original_source/lazy_string.h and src/lazy_string_append.cc.
//
// A String is never mutated after construction; every transformation
// (Append, Substring) returns a new view over the same underlying runes.
package lazystring

// String is an opaque, immutable, random-access character sequence.
type String interface {
	// Size returns the number of characters, in O(1).
	Size() int
	// At returns the character at position i. Panics if i is out of range.
	At(i int) rune
}

// ToString materializes a String into a Go string. O(size).
func ToString(s String) string {
	runes := make([]rune, s.Size())
	for i := range runes {
		runes[i] = s.At(i)
	}
	return string(runes)
}

// Empty is the canonical empty String.
var Empty String = literal{}

// NewLiteral wraps a Go string as a String, taking ownership of the rune
// slice it builds (the caller must not mutate the input afterwards).
func NewLiteral(s string) String {
	if s == "" {
		return Empty
	}
	r := []rune(s)
	return literal{runes: &r}
}

// NewFromRunes wraps a rune slice directly, avoiding a second copy when the
// caller already has one (e.g. building up an insert buffer one rune at a
// time).
func NewFromRunes(runes []rune) String {
	if len(runes) == 0 {
		return Empty
	}
	cp := make([]rune, len(runes))
	copy(cp, runes)
	return literal{runes: &cp}
}

// literal holds its runes behind a pointer so that String values stay
// comparable with == (a slice field would make the comparison panic).
type literal struct {
	runes *[]rune
}

func (l literal) Size() int {
	if l.runes == nil {
		return 0
	}
	return len(*l.runes)
}
func (l literal) At(i int) rune { return (*l.runes)[i] }

// Substring returns a view over s[start:start+length]. O(1).
func Substring(s String, start, length int) String {
	if length == 0 {
		return Empty
	}
	if start == 0 && length == s.Size() {
		return s
	}
	if sv, ok := s.(substringView); ok {
		return substringView{base: sv.base, start: sv.start + start, length: length}
	}
	return substringView{base: s, start: start, length: length}
}

// SubstringToEnd is equivalent to Substring(s, start, s.Size()-start).
func SubstringToEnd(s String, start int) String {
	return Substring(s, start, s.Size()-start)
}

type substringView struct {
	base   String
	start  int
	length int
}

func (v substringView) Size() int     { return v.length }
func (v substringView) At(i int) rune { return v.base.At(v.start + i) }

// appendRebalanceDepth bounds how deep a chain of appendViews may grow
// before Append flattens it into a literal, keeping At()'s cost bounded
// instead of growing linearly with the number of appends.
const appendRebalanceDepth = 32

// Append concatenates a and b in O(1) while the resulting chain of appends
// is at most appendRebalanceDepth deep. Past that depth it copies both
// operands into a new literal, which costs O(a.Size()+b.Size()); repeated
// appends onto a deep chain therefore pay that copy on each call, so the
// amortized cost is not O(1).
func Append(a, b String) String {
	if a.Size() == 0 {
		return b
	}
	if b.Size() == 0 {
		return a
	}
	depth := 1
	if av, ok := a.(appendView); ok {
		depth = av.depth + 1
	}
	if bv, ok := b.(appendView); ok && bv.depth+1 > depth {
		depth = bv.depth + 1
	}
	if depth > appendRebalanceDepth {
		return NewLiteral(ToString(a) + ToString(b))
	}
	return appendView{a: a, b: b, alen: a.Size(), depth: depth}
}

type appendView struct {
	a, b  String
	alen  int
	depth int
}

func (v appendView) Size() int { return v.alen + v.b.Size() }

func (v appendView) At(i int) rune {
	if i < v.alen {
		return v.a.At(i)
	}
	return v.b.At(i - v.alen)
}

// Editable is a mutable-while-typed buffer: a base String plus a split
// position and a mutable appendix, used while a line is being typed into
// (InsertMode). It satisfies the String interface but is not safe for
// concurrent use: Append keeps a reference to it rather than a copy, so
// later AppendRune or Backspace calls change what that result reads.
// Snapshot returns an independent immutable copy.
type Editable struct {
	base     String
	split    int
	appendix []rune
}

// NewEditable builds an Editable rooted at base, splitting at position
// split (characters before split come from base; appended characters go
// after).
func NewEditable(base String, split int) *Editable {
	return &Editable{base: base, split: split}
}

func (e *Editable) Size() int { return e.split + len(e.appendix) }

func (e *Editable) At(i int) rune {
	if i < e.split {
		return e.base.At(i)
	}
	return e.appendix[i-e.split]
}

// AppendRune appends a character to the mutable appendix.
func (e *Editable) AppendRune(r rune) { e.appendix = append(e.appendix, r) }

// Backspace removes the last character written to the appendix, or shrinks
// the base split if the appendix is empty. Returns false if there was
// nothing to remove.
func (e *Editable) Backspace() bool {
	if len(e.appendix) > 0 {
		e.appendix = e.appendix[:len(e.appendix)-1]
		return true
	}
	if e.split > 0 {
		e.split--
		return true
	}
	return false
}

// Snapshot freezes the current contents of e into an immutable String.
func (e *Editable) Snapshot() String {
	return Append(Substring(e.base, 0, e.split), NewFromRunes(e.appendix))
}
