// Package line implements the Line type: an immutable LazyString plus
// per-column style modifiers and an optional activation handler, grounded
// on _examples/original_source/line.h and line.cc.
package line

import "github.com/alefore/edge-sub002/internal/lazystring"

// Modifier is a single display attribute (the editor's analogue of the
// original's enum Modifier: bold, underline, color, etc.)
type Modifier int

const (
	ModifierReset Modifier = iota
	ModifierBold
	ModifierDim
	ModifierUnderline
	ModifierReverse
	ModifierCyan
	ModifierGreen
	ModifierRed
	ModifierYellow
	ModifierBlue
	ModifierMagenta
)

// ModifierSet is the set of modifiers active at one column. Small sets, so
// a slice is cheaper than a map.
type ModifierSet []Modifier

func (s ModifierSet) Has(m Modifier) bool {
	for _, x := range s {
		if x == m {
			return true
		}
	}
	return false
}

// ActivationHandler describes what the cursor "activating" a line opens
// (Enter on a buffer-list or file-listing entry): a BufferName and an
// opaque Data payload. It is kept as a
// name, never a strong reference: a line must not capture a pointer to
// the buffer that owns it.
type ActivationHandler struct {
	BufferName string
	// Data is opaque payload resolved by whatever installed the handler
	// (e.g. a path to open, for file-listing lines).
	Data string
}

// Line is an immutable buffer element. Edits never mutate a Line in place;
// they build a new Line value.
type Line struct {
	contents      lazystring.String
	modifiers     []ModifierSet
	activate      *ActivationHandler
	modified      bool
	filtered      bool
	filterVersion uint64
}

// Options configures New.
type Options struct {
	Contents  lazystring.String
	Modifiers []ModifierSet
	Activate  *ActivationHandler
	Modified  bool
}

// New builds a Line from Options. A nil Contents becomes the empty string.
func New(opts Options) *Line {
	contents := opts.Contents
	if contents == nil {
		contents = lazystring.Empty
	}
	return &Line{
		contents:  contents,
		modifiers: opts.Modifiers,
		activate:  opts.Activate,
		modified:  opts.Modified,
		filtered:  true,
	}
}

// NewFromString is a convenience constructor for plain text lines.
func NewFromString(s string) *Line {
	return New(Options{Contents: lazystring.NewLiteral(s)})
}

func (l *Line) Contents() lazystring.String { return l.contents }

// Size is O(1): it delegates to the LazyString's own O(1) size.
func (l *Line) Size() int { return l.contents.Size() }

// At returns the character at column, or panics if out of range.
func (l *Line) At(column int) rune { return l.contents.At(column) }

// ModifiersAt returns the modifier set active at column; columns past the
// end of the modifiers vector inherit no modifier.
func (l *Line) ModifiersAt(column int) ModifierSet {
	if column < 0 || column >= len(l.modifiers) {
		return nil
	}
	return l.modifiers[column]
}

func (l *Line) Activate() *ActivationHandler { return l.activate }
func (l *Line) Modified() bool               { return l.modified }
func (l *Line) Filtered() bool               { return l.filtered }
func (l *Line) FilterVersion() uint64        { return l.filterVersion }

// ToString materializes the line's text.
func (l *Line) ToString() string { return lazystring.ToString(l.contents) }

// Substring returns the LazyString view for [start, start+length).
func (l *Line) Substring(start, length int) lazystring.String {
	return lazystring.Substring(l.contents, start, length)
}

// WithContents returns a new Line sharing everything but the contents (and
// dropping stale modifiers/filter state, since both are contents-derived).
func (l *Line) WithContents(contents lazystring.String, modifiers []ModifierSet) *Line {
	return &Line{
		contents:  contents,
		modifiers: modifiers,
		activate:  l.activate,
		modified:  true,
		filtered:  false,
	}
}

// WithFiltered returns a new Line with filtered/filterVersion updated; used
// by the syntax parser's filter pass, which never touches contents.
func (l *Line) WithFiltered(filtered bool, version uint64) *Line {
	cp := *l
	cp.filtered = filtered
	cp.filterVersion = version
	return &cp
}

// WithActivate returns a new Line with a different activation handler.
func (l *Line) WithActivate(a *ActivationHandler) *Line {
	cp := *l
	cp.activate = a
	return &cp
}
