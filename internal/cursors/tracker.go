// Package cursors implements the CursorsTracker: per-buffer named cursor
// sets plus the scheduled-transformation batch optimizer, grounded on
// _examples/original_source/src/cursors.h/.cc.
package cursors

import "github.com/alefore/edge-sub002/internal/linecol"

// ActiveSetName is the name of the always-present default cursor set.
const ActiveSetName = ""

// Tracker maintains named cursor sets for one buffer, a push/pop stack of
// snapshots of the active set, and a scheduled-transformation queue.
//
// Invariant: at rest the queue is empty; the active named set is never
// absent and has at least one cursor.
type Tracker struct {
	named         map[string]*Set
	stack         []*Set
	alreadyApplied *Set
	sched         scheduler
	// delayDepth > 0 means AdjustCursors calls only enqueue; the queue is
	// drained once the last delay token is released, matching the
	// original's DelayTransformations() shared_ptr mechanism.
	delayDepth int
}

// NewTracker returns a Tracker with a single cursor at (0,0) in the active
// set.
func NewTracker() *Tracker {
	t := &Tracker{named: map[string]*Set{}, alreadyApplied: NewSet()}
	t.named[ActiveSetName] = NewSetAt(linecol.Position{})
	return t
}

// Position returns the position of the active cursor in the active set.
func (t *Tracker) Position() linecol.Position {
	return t.named[ActiveSetName].Active().Position
}

// FindOrCreateCursors returns the named set, creating an empty one if
// absent.
func (t *Tracker) FindOrCreateCursors(name string) *Set {
	s, ok := t.named[name]
	if !ok {
		s = NewSet()
		t.named[name] = s
	}
	return s
}

// FindCursors returns the named set, or nil if absent.
func (t *Tracker) FindCursors(name string) *Set { return t.named[name] }

// ActiveSet is a convenience accessor for the "" set.
func (t *Tracker) ActiveSet() *Set { return t.named[ActiveSetName] }

// AdjustCursors schedules transformation for application to every cursor
// set. If no delay is outstanding, the queue is drained immediately
// after scheduling (the original only drains when the last
// DelayTransformations() token is released; since Go doesn't need a
// shared_ptr trick, a simple depth counter does the same job).
func (t *Tracker) AdjustCursors(transformation Transformation) {
	t.sched.Schedule(transformation)
	if t.delayDepth == 0 {
		t.drain()
	}
}

func (t *Tracker) drain() {
	for _, tr := range t.sched.Drain() {
		t.applyImmediate(tr)
	}
}

func (t *Tracker) applyImmediate(tr Transformation) {
	if tr.LineDelta == 0 && tr.ColumnDelta == 0 {
		return
	}
	for _, set := range t.named {
		AdjustSet(tr, set)
	}
	for _, set := range t.stack {
		AdjustSet(tr, set)
	}
	AdjustSet(tr, t.alreadyApplied)
}

// DelayToken, once released via Release, drains any transformations
// scheduled while delayed. Callers that need to batch several
// AdjustCursors calls without intermediate draining should call
// DelayTransformations, defer Release, then call AdjustCursors freely.
type DelayToken struct {
	tracker  *Tracker
	released bool
}

// Release ends the delay, draining the queue if this was the outermost
// token.
func (d *DelayToken) Release() {
	if d.released {
		return
	}
	d.released = true
	d.tracker.delayDepth--
	if d.tracker.delayDepth == 0 {
		d.tracker.drain()
	}
}

// DelayTransformations returns a token that postpones draining until it
// (and every other outstanding token) is Released, mirroring the
// original's CursorsTracker::DelayTransformations.
func (t *Tracker) DelayTransformations() *DelayToken {
	t.delayDepth++
	return &DelayToken{tracker: t}
}

// MoveFunc maps one cursor's position to a new one; it may be slow
// (simulating the original's futures::Value-returning callback), so
// ApplyTransformationToCursors processes cursors one at a time via this
// function rather than assuming it can run concurrently over the set.
type MoveFunc func(linecol.Position) linecol.Position

// ApplyTransformationToCursors drains set into the tracker's
// already-applied scratch set, calling f on each cursor in turn (ordering:
// first-cursor-first), then swaps the scratch set back into set. The
// active cursor identity is preserved across the remap.
func (t *Tracker) ApplyTransformationToCursors(set *Set, f MoveFunc) {
	adjustedActive := false
	for !set.Empty() {
		c := set.members[0]
		wasActive := c == set.active
		newPos := f(c.Position)
		set.Erase(c)
		inserted := t.alreadyApplied.Insert(newPos)
		if wasActive && !adjustedActive {
			t.alreadyApplied.SetActive(inserted)
			adjustedActive = true
		}
	}
	set.Swap(t.alreadyApplied)
}

// Push duplicates the active ("") set onto the snapshot stack, returning
// the new stack depth.
func (t *Tracker) Push() int {
	t.stack = append(t.stack, t.ActiveSet().Clone())
	return len(t.stack)
}

// Pop restores the top of the snapshot stack into the active set, if any,
// returning the stack depth at the time of the call.
func (t *Tracker) Pop() int {
	if len(t.stack) == 0 {
		return 0
	}
	depth := len(t.stack)
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.named[ActiveSetName] = top
	return depth
}
