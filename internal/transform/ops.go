package transform

import (
	"strings"

	"github.com/alefore/edge-sub002/internal/cursors"
	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/lazystring"
	"github.com/alefore/edge-sub002/internal/linecol"
)

// Noop does nothing and undoes to itself, serving as both the identity
// transformation and the undo of operations that fail outright.
type Noop struct{}

func (Noop) Apply(Target) Result { return Result{Success: true, Undo: Noop{}} }

// GotoPosition moves the active cursor to P, clamped into the buffer.
type GotoPosition struct {
	P linecol.Position
}

func (g GotoPosition) Apply(t Target) Result {
	previous := t.Cursors().Position()
	target := clampPosition(t.Contents(), g.P)
	t.Cursors().ActiveSet().MoveCurrentCursor(target)
	return Result{Success: true, Undo: GotoPosition{P: previous}}
}

// AtPosition runs Inner after first moving to P, i.e. Compose(Goto(p),
// Inner); its undo restores the original position.
type AtPosition struct {
	P     linecol.Position
	Inner Transformation
}

func (a AtPosition) Apply(t Target) Result {
	return Compose{A: GotoPosition{P: a.P}, B: a.Inner}.Apply(t)
}

// Compose applies A then B in sequence; its undo is Compose(undo_B, undo_A).
type Compose struct {
	A, B Transformation
}

func (c Compose) Apply(t Target) Result {
	ra := c.A.Apply(t)
	if !ra.Success {
		return Result{Success: false, Undo: ra.Undo}
	}
	rb := c.B.Apply(t)
	return Result{
		Success: rb.Success,
		Undo:    Compose{A: rb.Undo, B: ra.Undo},
	}
}

// Stack runs a sequence of Transformations, left to right, stopping at the
// first failure. Its undo is the reverse-ordered stack of each applied
// step's undo.
type Stack struct {
	Steps []Transformation
}

func (s Stack) Apply(t Target) Result {
	var undos []Transformation
	for _, step := range s.Steps {
		r := step.Apply(t)
		undos = append(undos, r.Undo)
		if !r.Success {
			reversed := make([]Transformation, len(undos))
			for i, u := range undos {
				reversed[len(undos)-1-i] = u
			}
			return Result{Success: false, Undo: Stack{Steps: reversed}}
		}
	}
	reversed := make([]Transformation, len(undos))
	for i, u := range undos {
		reversed[len(undos)-1-i] = u
	}
	return Result{Success: true, Undo: Stack{Steps: reversed}}
}

// Insert inserts Text (lazystring.ToString(Text) repeated Repetitions
// times) at the active cursor. Final decides whether the cursor ends
// at the start or the end of the inserted text.
type Insert struct {
	Text        lazystring.String
	Repetitions int
	Final       edittypes.FinalPosition
}

func (ins Insert) Apply(t Target) Result {
	reps := ins.Repetitions
	if reps <= 0 {
		reps = 1
	}
	text := strings.Repeat(lazystring.ToString(ins.Text), reps)
	if text == "" {
		return Result{Success: true, Undo: Noop{}}
	}
	start := t.Cursors().Position()
	end := spliceInsert(t.Contents(), start, text)

	lineDelta := int64(end.Line) - int64(start.Line)
	var colDelta int64
	var colLowerBound uint64
	if lineDelta == 0 {
		colDelta = int64(end.Column) - int64(start.Column)
	} else {
		colLowerBound = end.Column
	}
	t.Cursors().AdjustCursors(cursors.Transformation{
		Range:            linecol.Range{Begin: start, End: linecol.MaxPosition},
		LineDelta:        lineDelta,
		ColumnDelta:      colDelta,
		ColumnLowerBound: colLowerBound,
	})

	final := start
	if ins.Final == edittypes.FinalPositionEnd {
		final = end
	}
	t.Cursors().ActiveSet().MoveCurrentCursor(final)
	t.MarkModified()

	undoLen := uint64(len([]rune(text)))
	return Result{
		Success: true,
		Undo: AtPosition{
			P:     start,
			Inner: DeleteCharacters{Repetitions: int(undoLen), Copy: false},
		},
	}
}

// Paste inserts the target's paste buffer at the active cursor,
// Repetitions times (so "pp" and a single paste bound to Repetitions=2
// have the same end state).
type Paste struct {
	Repetitions int
}

func (p Paste) Apply(t Target) Result {
	reps := p.Repetitions
	if reps <= 0 {
		reps = 1
	}
	return Insert{
		Text:        t.PasteBuffer(),
		Repetitions: reps,
		Final:       edittypes.FinalPositionEnd,
	}.Apply(t)
}

func (p Paste) withRepetitions(n int) Transformation { p.Repetitions = n; return p }

// DeleteCharacters deletes Repetitions characters starting at the active
// cursor (Forward), optionally copying them to the paste buffer.
type DeleteCharacters struct {
	Repetitions int
	Copy        bool
}

func (d DeleteCharacters) Apply(t Target) Result {
	reps := d.Repetitions
	if reps <= 0 {
		reps = 1
	}
	start := t.Cursors().Position()
	cur := charCursor{t.Contents(), start}
	for i := 0; i < reps && !cur.atEnd(); i++ {
		cur = cur.advance()
	}
	end := cur.pos
	if last := t.Contents().Size() - 1; int(end.Line) > last {
		end = linecol.Position{Line: uint64(last), Column: uint64(t.Contents().At(last).Size())}
	}
	if end == start {
		return Result{Success: false, Undo: Noop{}}
	}
	deleted := spliceDelete(t.Contents(), linecol.Range{Begin: start, End: end})
	if d.Copy {
		t.SetPasteBuffer(lazystring.NewLiteral(deleted))
	}

	lineDelta := int64(start.Line) - int64(end.Line)
	t.Cursors().AdjustCursors(cursors.Transformation{
		Range:          linecol.Range{Begin: end, End: linecol.MaxPosition},
		LineDelta:      lineDelta,
		LineLowerBound: start.Line,
	})
	if lineDelta != 0 {
		t.Cursors().AdjustCursors(cursors.Transformation{
			Range:            linecol.Range{Begin: linecol.Position{Line: start.Line}, End: linecol.Position{Line: start.Line + 1}},
			ColumnDelta:      int64(start.Column) - int64(end.Column),
			ColumnLowerBound: start.Column,
		})
	}
	t.Cursors().ActiveSet().MoveCurrentCursor(start)
	t.MarkModified()

	return Result{
		Success: true,
		Undo: AtPosition{
			P:     start,
			Inner: Insert{Text: lazystring.NewLiteral(deleted), Repetitions: 1, Final: edittypes.FinalPositionStart},
		},
	}
}

// DeleteWord implements word deletion, including its boundary-crossing
// edge cases.
type DeleteWord struct {
	Modifier edittypes.DeleteModifier
	Copy     bool
}

func (d DeleteWord) Apply(t Target) Result {
	pos := t.Cursors().Position()
	var begin, end linecol.Position
	switch d.Modifier {
	case edittypes.ModifierFromStartToCursor:
		begin, _ = wordContainingBounds(t.Contents(), pos)
		end = pos
	case edittypes.ModifierFromCursorToEnd:
		_, end = wordContainingBounds(t.Contents(), pos)
		begin = pos
	default:
		begin, end = wordForwardBounds(t.Contents(), pos)
	}
	if begin == end {
		return Result{Success: false, Undo: Noop{}}
	}
	deleted := spliceDelete(t.Contents(), linecol.Range{Begin: begin, End: end})
	if d.Copy {
		t.SetPasteBuffer(lazystring.NewLiteral(deleted))
	}
	lineDelta := int64(begin.Line) - int64(end.Line)
	t.Cursors().AdjustCursors(cursors.Transformation{
		Range:          linecol.Range{Begin: end, End: linecol.MaxPosition},
		LineDelta:      lineDelta,
		LineLowerBound: begin.Line,
	})
	t.Cursors().ActiveSet().MoveCurrentCursor(begin)
	t.MarkModified()

	return Result{
		Success: true,
		Undo: AtPosition{
			P:     begin,
			Inner: Insert{Text: lazystring.NewLiteral(deleted), Repetitions: 1, Final: edittypes.FinalPositionStart},
		},
	}
}

// DeleteLines deletes Repetitions whole lines starting at the active
// cursor's line.
type DeleteLines struct {
	Repetitions int
	Modifier    edittypes.DeleteModifier
	Copy        bool
}

func (d DeleteLines) Apply(t Target) Result {
	reps := d.Repetitions
	if reps <= 0 {
		reps = 1
	}
	pos := t.Cursors().Position()
	begin, end := lineBounds(t.Contents(), pos.Line, reps)
	if begin == end {
		return Result{Success: false, Undo: Noop{}}
	}
	deleted := spliceDelete(t.Contents(), linecol.Range{Begin: begin, End: end})
	if d.Copy {
		t.SetPasteBuffer(lazystring.NewLiteral(deleted))
	}
	lineDelta := int64(begin.Line) - int64(end.Line)
	t.Cursors().AdjustCursors(cursors.Transformation{
		Range:          linecol.Range{Begin: end, End: linecol.MaxPosition},
		LineDelta:      lineDelta,
		LineLowerBound: begin.Line,
	})
	t.Cursors().ActiveSet().MoveCurrentCursor(clampPosition(t.Contents(), begin))
	t.MarkModified()

	return Result{
		Success: true,
		Undo: AtPosition{
			P:     begin,
			Inner: Insert{Text: lazystring.NewLiteral(deleted), Repetitions: 1, Final: edittypes.FinalPositionStart},
		},
	}
}

// Delete dispatches to DeleteCharacters/DeleteWord/DeleteLines/a
// structure-bound deletion based on Structure.
type Delete struct {
	Structure   edittypes.Structure
	Modifier    edittypes.DeleteModifier
	Repetitions int
	Copy        bool
}

func (d Delete) Apply(t Target) Result {
	switch d.Structure {
	case edittypes.StructureChar:
		return DeleteCharacters{Repetitions: d.Repetitions, Copy: d.Copy}.Apply(t)
	case edittypes.StructureWord:
		return DeleteWord{Modifier: d.Modifier, Copy: d.Copy}.Apply(t)
	case edittypes.StructureLine:
		return DeleteLines{Repetitions: d.Repetitions, Modifier: d.Modifier, Copy: d.Copy}.Apply(t)
	default:
		return deleteByBounds(t, d)
	}
}

func deleteByBounds(t Target, d Delete) Result {
	pos := t.Cursors().Position()
	var begin, end linecol.Position
	switch d.Structure {
	case edittypes.StructureParagraph:
		begin, end = paragraphBounds(t.Contents(), pos.Line)
	case edittypes.StructureBuffer:
		begin, end = bufferBounds(t.Contents())
	default:
		// Page, Search, Cursor, Mark, Tree, SymbolRegion: none of
		// these have a meaningful bounds computation without a
		// viewport, search state, or syntax tree in scope here, so
		// they fall back to the containing line.
		begin, end = lineBounds(t.Contents(), pos.Line, 1)
	}
	if begin == end {
		return Result{Success: false, Undo: Noop{}}
	}
	deleted := spliceDelete(t.Contents(), linecol.Range{Begin: begin, End: end})
	if d.Copy {
		t.SetPasteBuffer(lazystring.NewLiteral(deleted))
	}
	lineDelta := int64(begin.Line) - int64(end.Line)
	t.Cursors().AdjustCursors(cursors.Transformation{
		Range:          linecol.Range{Begin: end, End: linecol.MaxPosition},
		LineDelta:      lineDelta,
		LineLowerBound: begin.Line,
	})
	t.Cursors().ActiveSet().MoveCurrentCursor(clampPosition(t.Contents(), begin))
	t.MarkModified()
	return Result{
		Success: true,
		Undo: AtPosition{
			P:     begin,
			Inner: Insert{Text: lazystring.NewLiteral(deleted), Repetitions: 1, Final: edittypes.FinalPositionStart},
		},
	}
}

// Move repositions the active cursor by Structure units, Repetitions
// times, honoring Direction.
type Move struct {
	Direction   edittypes.Direction
	Structure   edittypes.Structure
	Repetitions int
}

func (m Move) Apply(t Target) Result {
	reps := m.Repetitions
	if reps <= 0 {
		reps = 1
	}
	pos := t.Cursors().Position()
	newPos := pos
	for i := 0; i < reps; i++ {
		newPos = moveOnce(t, newPos, m.Structure, m.Direction)
		if last := t.Contents().Size() - 1; int(newPos.Line) > last {
			newPos = linecol.Position{Line: uint64(last), Column: uint64(t.Contents().At(last).Size())}
		}
	}
	if newPos == pos {
		return Result{Success: false, Undo: Noop{}}
	}
	t.Cursors().ActiveSet().MoveCurrentCursor(newPos)
	return Result{Success: true, Undo: GotoPosition{P: pos}}
}

func moveOnce(t Target, pos linecol.Position, structure edittypes.Structure, dir edittypes.Direction) linecol.Position {
	contents := t.Contents()
	switch structure {
	case edittypes.StructureChar:
		cur := charCursor{contents, pos}
		if dir == edittypes.Forward {
			return cur.advance().pos
		}
		return cur.retreat().pos
	case edittypes.StructureWord:
		if dir == edittypes.Forward {
			_, end := wordForwardBounds(contents, pos)
			return end
		}
		cur := charCursor{contents, pos}
		cur = cur.retreat()
		for cur.pos.Line != 0 || cur.pos.Column != 0 {
			ch, isNL := cur.char()
			if !isWhitespaceOrNewline(ch, isNL) {
				break
			}
			cur = cur.retreat()
		}
		begin, _ := wordContainingBounds(contents, cur.pos)
		return begin
	case edittypes.StructureLine:
		if dir == edittypes.Forward {
			if int(pos.Line)+1 < contents.Size() {
				return linecol.Position{Line: pos.Line + 1, Column: pos.Column}
			}
			return pos
		}
		if pos.Line > 0 {
			return linecol.Position{Line: pos.Line - 1, Column: pos.Column}
		}
		return pos
	case edittypes.StructureParagraph:
		_, end := paragraphBounds(contents, pos.Line)
		if dir == edittypes.Forward {
			return clampPosition(contents, end)
		}
		begin, _ := paragraphBounds(contents, pos.Line)
		return begin
	case edittypes.StructureBuffer:
		begin, end := bufferBounds(contents)
		if dir == edittypes.Forward {
			return end
		}
		return begin
	default:
		return pos
	}
}

// DeleteSuffixSuperfluousCharacters trims trailing whitespace from the
// line the active cursor is on, matching the original's cleanup pass run
// after InsertMode exits.
type DeleteSuffixSuperfluousCharacters struct{}

func (DeleteSuffixSuperfluousCharacters) Apply(t Target) Result {
	pos := t.Cursors().Position()
	l := t.Contents().At(int(pos.Line))
	text := l.ToString()
	trimmed := strings.TrimRight(text, " \t")
	if trimmed == text {
		return Result{Success: true, Undo: Noop{}}
	}
	begin := linecol.Position{Line: pos.Line, Column: uint64(len([]rune(trimmed)))}
	end := linecol.Position{Line: pos.Line, Column: uint64(len([]rune(text)))}
	deleted := spliceDelete(t.Contents(), linecol.Range{Begin: begin, End: end})
	t.MarkModified()
	return Result{
		Success: true,
		Undo: AtPosition{
			P:     begin,
			Inner: Insert{Text: lazystring.NewLiteral(deleted), Repetitions: 1, Final: edittypes.FinalPositionStart},
		},
	}
}

// WithRepetitions binds Inner's repetition count to n. If Inner supports
// rebinding its own Repetitions field (Move, Delete), that is preferred
// over looping the whole transformation n times.
func WithRepetitions(n int, inner Transformation) Transformation {
	if n <= 1 {
		return inner
	}
	if rebound, ok := withRepetitionsRebind(n, inner); ok {
		return rebound
	}
	steps := make([]Transformation, n)
	for i := range steps {
		steps[i] = inner
	}
	return Stack{Steps: steps}
}

// repeatable is implemented by operations whose Repetitions/Direction/
// Structure WithRepetitions/WithDirection/WithStructure can rebind in
// place, rather than by looping the whole transformation.
type repeatable interface {
	withRepetitions(n int) Transformation
}

type directional interface {
	withDirection(d edittypes.Direction) Transformation
}

type structural interface {
	withStructure(s edittypes.Structure, m edittypes.DeleteModifier) Transformation
}

func (m Move) withRepetitions(n int) Transformation  { m.Repetitions = n; return m }
func (m Move) withDirection(d edittypes.Direction) Transformation { m.Direction = d; return m }
func (m Move) withStructure(s edittypes.Structure, _ edittypes.DeleteModifier) Transformation {
	m.Structure = s
	return m
}

func (d Delete) withRepetitions(n int) Transformation { d.Repetitions = n; return d }
func (d Delete) withStructure(s edittypes.Structure, mod edittypes.DeleteModifier) Transformation {
	d.Structure = s
	d.Modifier = mod
	return d
}

// WithDirection rebinds Inner's direction if it supports it, otherwise
// returns Inner unchanged (documented fallback for direction-insensitive
// transformations).
func WithDirection(dir edittypes.Direction, inner Transformation) Transformation {
	if da, ok := inner.(directional); ok {
		return da.withDirection(dir)
	}
	return inner
}

// WithStructure rebinds Inner's structure/modifier if it supports it.
func WithStructure(s edittypes.Structure, modifier edittypes.DeleteModifier, inner Transformation) Transformation {
	if sa, ok := inner.(structural); ok {
		return sa.withStructure(s, modifier)
	}
	return inner
}

// withRepetitionsRebind is the in-place-rebind path used by
// WithRepetitions: looping N times over a structural Move is wasteful
// compared to a single Move with Repetitions=N.
func withRepetitionsRebind(n int, inner Transformation) (Transformation, bool) {
	if ra, ok := inner.(repeatable); ok {
		return ra.withRepetitions(n), true
	}
	return nil, false
}

// ApplyRepeatedly applies Inner up to N times, stopping at the first
// failure; the composite's undo contains only the successfully applied
// prefix's undos, in reverse order.
type ApplyRepeatedly struct {
	N     int
	Inner Transformation
}

func (a ApplyRepeatedly) Apply(t Target) Result {
	var undos []Transformation
	succeededAtLeastOnce := false
	for i := 0; i < a.N; i++ {
		r := a.Inner.Apply(t)
		if !r.Success {
			break
		}
		succeededAtLeastOnce = true
		undos = append(undos, r.Undo)
	}
	reversed := make([]Transformation, len(undos))
	for i, u := range undos {
		reversed[len(undos)-1-i] = u
	}
	return Result{Success: succeededAtLeastOnce || a.N == 0, Undo: Stack{Steps: reversed}}
}
