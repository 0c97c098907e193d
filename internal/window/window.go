// Package window implements BufferContentsWindow: the pure projection
// from (contents, cursors, viewport, wrap policy, margin) to an ordered
// list of screen lines. It is the only place that decides which buffer
// text maps to which screen row, and it never mutates its inputs.
package window

import (
	"strings"
	"unicode"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/cursors"
	"github.com/alefore/edge-sub002/internal/edittypes"
	"github.com/alefore/edge-sub002/internal/linecol"
)

// ScreenLine is one rendered row: the buffer range it covers, whether
// the tracker's active cursor sits on it, and the set of columns (of
// any cursor, active or not) that fall within it.
type ScreenLine struct {
	Range           linecol.Range
	HasActiveCursor bool
	CurrentCursors  map[uint64]bool
}

// Inputs bundles everything Project needs. Contents and Cursors are
// read-only: Project never mutates either.
type Inputs struct {
	Contents         *buffercontents.Contents
	ActiveCursors    *cursors.Set
	ActivePosition   *linecol.Position
	WrapStyle        edittypes.WrapStyle
	SymbolCharacters string
	LinesShown       int
	ColumnsShown     int
	ViewportBegin    linecol.Position
	MarginLines      int
}

func clampPosition(contents *buffercontents.Contents, p linecol.Position) linecol.Position {
	maxLine := uint64(contents.Size() - 1)
	if p.Line > maxLine {
		p.Line = maxLine
	}
	lineSize := uint64(contents.At(int(p.Line)).Size())
	if p.Column > lineSize {
		p.Column = lineSize
	}
	return p
}

// columnRanges splits a source line of size lineSize into the column
// sub-ranges a single source line renders as under wrapStyle.
func columnRanges(contents *buffercontents.Contents, lineNum uint64, columnsShown int, wrapStyle edittypes.WrapStyle, symbolCharacters string) []linecol.Range {
	lineSize := contents.At(int(lineNum)).Size()
	if wrapStyle == edittypes.WrapNone || columnsShown <= 0 || lineSize <= columnsShown {
		return []linecol.Range{{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(lineSize)},
		}}
	}

	l := contents.At(int(lineNum))
	isSymbol := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(symbolCharacters, r)
	}

	var ranges []linecol.Range
	start := 0
	for start < lineSize {
		end := start + columnsShown
		if end >= lineSize {
			end = lineSize
		} else {
			// BreakWords: split at the last symbol boundary <= columnsShown,
			// i.e. the last position where a symbol run ends (or a
			// non-symbol run begins) strictly after start.
			breakAt := -1
			for i := end; i > start; i-- {
				if i < lineSize && isSymbol(l.At(i-1)) && (i >= lineSize || !isSymbol(l.At(i))) {
					breakAt = i
					break
				}
			}
			if breakAt > start {
				end = breakAt
			}
		}
		ranges = append(ranges, linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: uint64(start)},
			End:   linecol.Position{Line: lineNum, Column: uint64(end)},
		})
		start = end
	}
	if len(ranges) == 0 {
		ranges = append(ranges, linecol.Range{
			Begin: linecol.Position{Line: lineNum, Column: 0},
			End:   linecol.Position{Line: lineNum, Column: uint64(lineSize)},
		})
	}
	return ranges
}

// Project runs the BufferContentsWindow algorithm's seven steps and
// returns the resulting ScreenLines.
func Project(in Inputs) []ScreenLine {
	contents := in.Contents

	// Step 1: clamp the active position.
	var active linecol.Position
	if in.ActivePosition != nil {
		active = clampPosition(contents, *in.ActivePosition)
	}

	linesShown := in.LinesShown
	if linesShown <= 0 {
		linesShown = 1
	}
	margin := in.MarginLines
	if margin < 0 {
		margin = 0
	}
	if margin*2 >= linesShown {
		margin = 0
	}

	viewportLine := in.ViewportBegin.Line
	maxLine := uint64(contents.Size() - 1)

	// Step 2: don't drop the cursor off screen.
	if in.ActivePosition != nil {
		if active.Line < viewportLine {
			viewportLine = active.Line
		} else if active.Line >= viewportLine+uint64(linesShown) {
			if active.Line+1 >= uint64(linesShown) {
				viewportLine = active.Line - uint64(linesShown) + 1
			} else {
				viewportLine = 0
			}
		}
	}
	if viewportLine > maxLine {
		viewportLine = maxLine
	}

	build := func(startLine uint64) []ScreenLine {
		var out []ScreenLine
		for srcLine := startLine; srcLine <= maxLine && len(out) < linesShown; srcLine++ {
			for _, r := range columnRanges(contents, srcLine, in.ColumnsShown, in.WrapStyle, in.SymbolCharacters) {
				out = append(out, ScreenLine{Range: r})
				if len(out) >= linesShown {
					break
				}
			}
		}
		return out
	}

	activeScreenIndex := func(lines []ScreenLine) int {
		if in.ActivePosition == nil {
			return -1
		}
		for i, sl := range lines {
			end := sl.Range.End
			isLastWrapOfLine := i == len(lines)-1 || lines[i+1].Range.Begin.Line != sl.Range.Begin.Line
			if sl.Range.Begin.Line == active.Line && sl.Range.Begin.Column <= active.Column &&
				(active.Column < end.Column || (isLastWrapOfLine && active.Column == end.Column)) {
				return i
			}
		}
		return -1
	}

	lines := build(viewportLine)

	// Step 5: bottom margin — keep popping from the front while the
	// active cursor sits within the bottom margin band and there is more
	// content to reveal.
	for attempts := 0; attempts < 64; attempts++ {
		idx := activeScreenIndex(lines)
		if idx < 0 || idx < linesShown-margin {
			break
		}
		lastLine := lines[len(lines)-1].Range.Begin.Line
		if lastLine >= maxLine && len(lines) < linesShown {
			break
		}
		if viewportLine >= maxLine {
			break
		}
		viewportLine++
		lines = build(viewportLine)
	}

	// Step 6: top margin / short output — prepend preceding lines.
	for attempts := 0; attempts < 64; attempts++ {
		idx := activeScreenIndex(lines)
		short := len(lines) < linesShown
		tooHigh := idx >= 0 && idx < margin
		if (!short && !tooHigh) || viewportLine == 0 {
			break
		}
		viewportLine--
		lines = build(viewportLine)
	}

	// Step 7: assign cursor ownership.
	if in.ActiveCursors != nil {
		for _, c := range in.ActiveCursors.Members() {
			for i := range lines {
				sl := &lines[i]
				isLastWrapOfLine := i == len(lines)-1 || lines[i+1].Range.Begin.Line != sl.Range.Begin.Line
				if sl.Range.Begin.Line != c.Position.Line {
					continue
				}
				if c.Position.Column < sl.Range.Begin.Column {
					continue
				}
				if c.Position.Column > sl.Range.End.Column {
					continue
				}
				if c.Position.Column == sl.Range.End.Column && !isLastWrapOfLine {
					continue
				}
				if sl.CurrentCursors == nil {
					sl.CurrentCursors = map[uint64]bool{}
				}
				sl.CurrentCursors[c.Position.Column] = true
				if c == in.ActiveCursors.Active() {
					sl.HasActiveCursor = true
				}
				break
			}
		}
	}

	return lines
}
