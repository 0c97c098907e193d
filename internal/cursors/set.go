package cursors

import (
	"sort"

	"github.com/alefore/edge-sub002/internal/linecol"
)

// Cursor is one element of a CursorsSet. Identity matters (two cursors at
// the same Position are distinct elements), so Cursor is always handled by
// pointer, mirroring the original's std::multiset<LineColumn>::iterator.
type Cursor struct {
	Position linecol.Position
}

// Set is an ordered multiset of cursor positions with a distinguished
// "active" member, grounded on
// _examples/original_source/src/cursors.h's CursorsSet.
//
// Invariant: active == nil iff the set is empty; otherwise active always
// points to a member of members.
type Set struct {
	members []*Cursor
	active  *Cursor
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{} }

// NewSetAt returns a Set with a single cursor at p, active.
func NewSetAt(p linecol.Position) *Set {
	s := NewSet()
	s.Insert(p)
	return s
}

func (s *Set) Size() int    { return len(s.members) }
func (s *Set) Empty() bool  { return len(s.members) == 0 }
func (s *Set) Active() *Cursor {
	return s.active
}

// Members returns the cursors in sorted order. Callers must not mutate the
// returned slice.
func (s *Set) Members() []*Cursor { return s.members }

func (s *Set) lowerBoundIndex(p linecol.Position) int {
	return sort.Search(len(s.members), func(i int) bool {
		return !s.members[i].Position.Less(p)
	})
}

// LowerBoundIndex returns the index of the first member whose position is
// >= p.
func (s *Set) LowerBoundIndex(p linecol.Position) int { return s.lowerBoundIndex(p) }

// CursorsInLine reports whether any cursor has the given line number.
func (s *Set) CursorsInLine(line uint64) bool {
	idx := s.lowerBoundIndex(linecol.Position{Line: line})
	return idx < len(s.members) && s.members[idx].Position.Line == line
}

// Insert adds a cursor at p and returns it. If the set was empty, the new
// cursor becomes active.
func (s *Set) Insert(p linecol.Position) *Cursor {
	c := &Cursor{Position: p}
	idx := s.lowerBoundIndex(p)
	s.members = append(s.members, nil)
	copy(s.members[idx+1:], s.members[idx:])
	s.members[idx] = c
	if s.active == nil {
		s.active = c
	}
	return c
}

func (s *Set) indexOf(c *Cursor) int {
	for i, m := range s.members {
		if m == c {
			return i
		}
	}
	return -1
}

// Erase removes c from the set. If c was active, active advances to the
// next member (wrapping to the first if c was last), mirroring the
// original's CursorsSet::erase.
func (s *Set) Erase(c *Cursor) {
	idx := s.indexOf(c)
	if idx < 0 {
		return
	}
	wasActive := s.active == c
	s.members = append(s.members[:idx], s.members[idx+1:]...)
	if wasActive {
		if idx < len(s.members) {
			s.active = s.members[idx]
		} else if len(s.members) > 0 {
			s.active = s.members[0]
		} else {
			s.active = nil
		}
	}
}

// ErasePosition removes the first cursor found at p, if any.
func (s *Set) ErasePosition(p linecol.Position) {
	idx := s.lowerBoundIndex(p)
	if idx < len(s.members) && s.members[idx].Position == p {
		s.Erase(s.members[idx])
	}
}

// SetActive marks c (which must be a member) as the active cursor.
func (s *Set) SetActive(c *Cursor) {
	s.active = c
}

// SetCurrentCursor sets the active cursor to the (first) member at
// position p.
func (s *Set) SetCurrentCursor(p linecol.Position) {
	idx := s.lowerBoundIndex(p)
	if idx < len(s.members) && s.members[idx].Position == p {
		s.active = s.members[idx]
	}
}

// MoveCurrentCursor removes the active cursor and inserts a new one at p,
// making it active.
func (s *Set) MoveCurrentCursor(p linecol.Position) {
	old := s.active
	c := s.Insert(p)
	if old != nil {
		s.Erase(old)
	}
	s.active = c
}

// DeleteCurrentCursor removes the active cursor. The set must have more
// than one member.
func (s *Set) DeleteCurrentCursor() {
	if len(s.members) <= 1 {
		panic("cursors: cannot delete the last cursor in a set")
	}
	s.Erase(s.active)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.members = nil
	s.active = nil
}

// Swap exchanges the contents of s and other, preserving each side's active
// cursor identity (same pointer moves along with its set).
func (s *Set) Swap(other *Set) {
	s.members, other.members = other.members, s.members
	s.active, other.active = other.active, s.active
}

// Clone returns a deep copy (new Cursor pointers, same positions/active
// slot) so that transformations on the clone never affect s.
func (s *Set) Clone() *Set {
	cp := &Set{members: make([]*Cursor, len(s.members))}
	activeIdx := -1
	for i, m := range s.members {
		if m == s.active {
			activeIdx = i
		}
		cp.members[i] = &Cursor{Position: m.Position}
	}
	if activeIdx >= 0 {
		cp.active = cp.members[activeIdx]
	}
	return cp
}

// CurrentIndex returns the offset of the active cursor within Members(), or
// 0 if empty.
func (s *Set) CurrentIndex() int {
	if s.active == nil {
		return 0
	}
	for i, m := range s.members {
		if m == s.active {
			return i
		}
	}
	return 0
}
