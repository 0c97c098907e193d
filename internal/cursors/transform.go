package cursors

import (
	"math"

	"github.com/alefore/edge-sub002/internal/linecol"
)

// Transformation is the position-domain transform cursors are adjusted by,
// grounded on _examples/original_source/src/cursors.h's
// CursorsTracker::Transformation.
type Transformation struct {
	Range linecol.Range

	// LineDelta: number of lines to add to a cursor inside Range.
	LineDelta int64
	// LineLowerBound: output line never goes below this after LineDelta.
	LineLowerBound uint64

	ColumnDelta       int64
	ColumnLowerBound  uint64
}

// DefaultRange is the whole-buffer range used when a Transformation doesn't
// specify one explicitly.
func DefaultRange() linecol.Range {
	return linecol.Range{Begin: linecol.Position{}, End: linecol.MaxPosition}
}

func transformValue(input uint64, delta int64, clamp uint64, isEnd bool) uint64 {
	if delta < 0 {
		d := uint64(-delta)
		if input <= clamp+d {
			return clamp
		}
	}
	if isEnd {
		if input == 0 {
			return input
		}
	} else {
		if input == math.MaxUint64 {
			return input
		}
	}
	if delta >= 0 {
		return input + uint64(delta)
	}
	return input - uint64(-delta)
}

func transformLineColumn(t Transformation, p linecol.Position, isEnd bool) linecol.Position {
	return linecol.Position{
		Line:   transformValue(p.Line, t.LineDelta, t.LineLowerBound, isEnd),
		Column: transformValue(p.Column, t.ColumnDelta, t.ColumnLowerBound, isEnd),
	}
}

// Transform maps a single position through t.
func (t Transformation) Transform(p linecol.Position) linecol.Position {
	return transformLineColumn(t, p, false)
}

// TransformRange maps both endpoints of r through t.
func (t Transformation) TransformRange(r linecol.Range) linecol.Range {
	return linecol.Range{
		Begin: transformLineColumn(t, r.Begin, false),
		End:   transformLineColumn(t, r.End, true),
	}
}

func outputOf(t Transformation) linecol.Range { return t.TransformRange(t.Range) }

func isNoop(t Transformation) bool {
	return t.LineDelta == 0 && t.ColumnDelta == 0 &&
		t.LineLowerBound == 0 && t.ColumnLowerBound == 0
}

// AdjustSet applies t to every cursor in set: cursors inside t.Range
// are removed, transformed, and reinserted (preserving which one, if
// any, was active).
func AdjustSet(t Transformation, set *Set) {
	if t.LineDelta == 0 && t.ColumnDelta == 0 {
		return
	}
	lo := set.lowerBoundIndex(t.Range.Begin)
	hi := set.lowerBoundIndex(t.Range.End)
	if lo >= hi {
		return
	}
	affected := make([]*Cursor, hi-lo)
	copy(affected, set.members[lo:hi])
	activeAffectedIdx := -1
	for i, c := range affected {
		if c == set.active {
			activeAffectedIdx = i
		}
	}
	for _, c := range affected {
		set.Erase(c)
	}
	for i, c := range affected {
		newPos := t.Transform(c.Position)
		newCursor := set.Insert(newPos)
		if i == activeAffectedIdx {
			set.active = newCursor
		}
	}
}
