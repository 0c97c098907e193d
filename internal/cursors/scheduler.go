package cursors

import "github.com/alefore/edge-sub002/internal/linecol"

// extended carries a scheduled Transformation plus the two derived ranges
// the optimizer uses to decide whether later transformations can be
// dropped or merged, mirroring
// _examples/original_source/src/cursors.cc's ExtendedTransformation.
type extended struct {
	t Transformation
	// empty is the portion of t's output range guaranteed to contain no
	// cursors right after t is applied (only set when LineDelta > 0).
	empty linecol.Range
	// owned is the portion of the range that t is known to have moved
	// cursors out of, intersected with the previous entry's empty range.
	owned linecol.Range
}

func newExtended(t Transformation, previous *extended) extended {
	e := extended{t: t}
	if t.LineDelta > 0 {
		e.empty.Begin = t.Range.Begin
		bound := linecol.Position{
			Line:   t.Range.Begin.Line + uint64(t.LineDelta),
			Column: t.Range.Begin.Column + uint64(maxInt64(t.ColumnDelta, 0)),
		}
		e.empty.End = minPosition(t.Range.End, bound)
	}
	if previous != nil {
		e.owned = previous.empty.Intersection(outputOf(t))
	}
	return e
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minPosition(a, b linecol.Position) linecol.Position {
	if b.Less(a) {
		return b
	}
	return a
}

// scheduler holds the pending (not-yet-applied) queue of Transformations
// for one Tracker, implementing the batch's rewrite/merge rules.
type scheduler struct {
	queue []extended
}

// Schedule appends t to the queue, applying the collapse rules greedily.
// This re-expresses the original's pointer-comparison-based optimizer
// as a pure reducer over the raw sequence.
func (s *scheduler) Schedule(t Transformation) {
	// Rule 2: redundant line_lower_bound.
	if t.LineDelta == -1 && t.ColumnDelta == 0 && t.LineLowerBound == t.Range.Begin.Line {
		t.LineLowerBound = 0
		t.Range.Begin.Line++
	}

	// Rule 1: no-op.
	if isNoop(t) {
		return
	}

	if len(s.queue) == 0 {
		s.queue = append(s.queue, newExtended(t, nil))
		return
	}

	last := &s.queue[len(s.queue)-1]

	// Rule 3: fully owned by the previous entry's empty range.
	if last.empty.Contains(t.Range) {
		return
	}

	// Rule 4/5 variant A: whole-range line oscillation collapsing into one
	// narrower shift.
	if last.t.Range == t.Range &&
		last.t.Range.Begin.Column == 0 &&
		last.t.Range.End.Column == ^uint64(0) &&
		last.t.LineDelta+t.LineDelta == 0 &&
		last.t.LineLowerBound == 0 &&
		last.t.ColumnLowerBound == 0 &&
		last.t.ColumnDelta == 0 &&
		t.ColumnDelta == 0 {
		collapsed := last.t
		if t.LineLowerBound < collapsed.Range.End.Line {
			collapsed.Range.End.Line = t.LineLowerBound
		}
		bound := int64(collapsed.Range.End.Line) - int64(collapsed.Range.Begin.Line)
		if bound < collapsed.LineDelta {
			collapsed.LineDelta = bound
		}
		s.queue = s.queue[:len(s.queue)-1]
		s.Schedule(collapsed)
		return
	}

	// Rule 5: column-only + line-only merge (earlier column shift reversed
	// by a later, smaller one).
	if last.owned == t.Range &&
		last.t.Range.Contains(outputOf(t)) &&
		last.t.LineDelta+t.LineDelta == 0 &&
		last.t.LineDelta > 0 &&
		last.t.ColumnDelta < 0 &&
		t.ColumnDelta >= -last.t.ColumnDelta &&
		last.t.LineLowerBound == 0 &&
		last.t.ColumnLowerBound == 0 &&
		t.LineLowerBound == 0 &&
		t.ColumnLowerBound == 0 {
		collapsed := last.t
		collapsed.LineDelta = 0
		collapsed.ColumnDelta += t.ColumnDelta
		s.queue = s.queue[:len(s.queue)-1]
		s.Schedule(collapsed)
		return
	}

	// Rule 6 variant A: split a whole-buffer shift around a narrower
	// reverse shift so the two no longer overlap.
	if last.t.Range.Begin.Line+uint64(last.t.LineDelta) == t.Range.Begin.Line &&
		last.t.Range.Begin.Column == 0 &&
		t.Range.End != linecol.MaxPosition &&
		t.Range.Begin.Column == 0 &&
		last.t.Range.End == linecol.MaxPosition &&
		last.t.LineDelta > 0 &&
		t.LineDelta == -last.t.LineDelta {
		previous := last.t
		previous.Range.Begin.Line = uint64(int64(t.Range.End.Line) + t.LineDelta)
		newT := t
		newT.Range.Begin = last.t.Range.Begin
		newT.Range.End.Line = uint64(int64(newT.Range.End.Line) + newT.LineDelta)
		newT.LineDelta = 0
		s.queue = s.queue[:len(s.queue)-1]
		s.Schedule(newT)
		s.Schedule(previous)
		return
	}

	// Rule 6 variant B / C: adjacency rewrites that swap a line-shift and a
	// column-shift when they commute, expressed as the two sub-cases the
	// original handles explicitly.
	if last.t.ColumnDelta == 0 && last.t.ColumnLowerBound == 0 && last.t.Range.Begin.Column == 0 &&
		t.ColumnDelta == 0 && t.ColumnLowerBound == 0 && t.Range.Begin.Column == 0 {
		if last.t.LineDelta > 0 &&
			last.t.Range.Begin.Line+uint64(last.t.LineDelta) == t.Range.Begin.Line &&
			t.LineDelta < 0 &&
			last.t.LineDelta >= -t.LineDelta &&
			last.t.Range.End == linecol.MaxPosition &&
			t.Range.End == linecol.MaxPosition {
			collapsed := last.t
			collapsed.LineDelta += t.LineDelta
			s.queue = s.queue[:len(s.queue)-1]
			s.Schedule(collapsed)
			return
		}
		if t.Range.End == last.t.Range.Begin &&
			t.LineDelta == last.t.LineDelta &&
			t.LineDelta > 0 {
			collapsed := last.t
			collapsed.Range.Begin = t.Range.Begin
			s.queue = s.queue[:len(s.queue)-1]
			s.Schedule(collapsed)
			return
		}
	}

	// Rule 6 variant D: swap the order when a zero-delta-touching range
	// immediately precedes the previous entry's range.
	if t.Range.End == last.t.Range.Begin &&
		t.Range.End.Column == 0 &&
		t.LineDelta == 0 &&
		last.t.LineDelta >= 0 {
		previous := last.t
		s.queue = s.queue[:len(s.queue)-1]
		s.Schedule(t)
		s.Schedule(previous)
		return
	}

	// Rule 7: otherwise, append.
	s.queue = append(s.queue, newExtended(t, last))
}

// Drain empties the queue, returning the collapsed sequence of
// Transformations in the order they should be applied.
func (s *scheduler) Drain() []Transformation {
	out := make([]Transformation, len(s.queue))
	for i, e := range s.queue {
		out[i] = e.t
	}
	s.queue = nil
	return out
}

func (s *scheduler) Empty() bool { return len(s.queue) == 0 }
