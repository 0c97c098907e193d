package transform

import (
	"strings"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/lazystring"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/linecol"
)

// clampPosition clamps p so that p.Line < contents.Size() (or the last
// line, if contents is empty-less-than-one-line, which never happens per
// the buffercontents invariant) and p.Column <= the line's size.
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

// spliceInsert inserts text at p, returning the position immediately after
// the inserted text. text may contain '\n', splitting across lines.
func spliceInsert(contents *buffercontents.Contents, p linecol.Position, text string) linecol.Position {
	if text == "" {
		return p
	}
	parts := strings.Split(text, "\n")
	cur := contents.At(int(p.Line))
	before := cur.Substring(0, int(p.Column))
	after := cur.Substring(int(p.Column), cur.Size()-int(p.Column))

	if len(parts) == 1 {
		newContents := lazystring.Append(lazystring.Append(before, lazystring.NewLiteral(parts[0])), after)
		contents.SetLine(int(p.Line), line.New(line.Options{Contents: newContents, Modified: true}))
		return linecol.Position{Line: p.Line, Column: p.Column + uint64(len([]rune(parts[0])))}
	}

	firstContents := lazystring.Append(before, lazystring.NewLiteral(parts[0]))
	contents.SetLine(int(p.Line), line.New(line.Options{Contents: firstContents, Modified: true}))

	for i := 1; i < len(parts)-1; i++ {
		contents.InsertLine(int(p.Line)+i, line.New(line.Options{Contents: lazystring.NewLiteral(parts[i]), Modified: true}))
	}

	last := parts[len(parts)-1]
	lastContents := lazystring.Append(lazystring.NewLiteral(last), after)
	contents.InsertLine(int(p.Line)+len(parts)-1, line.New(line.Options{Contents: lastContents, Modified: true}))

	return linecol.Position{Line: p.Line + uint64(len(parts)-1), Column: uint64(len([]rune(last)))}
}

// spliceDelete removes [r.Begin, r.End) and returns the removed text.
func spliceDelete(contents *buffercontents.Contents, r linecol.Range) string {
	begin := clampPosition(contents, r.Begin)
	end := clampPosition(contents, r.End)
	if !begin.Less(end) {
		return ""
	}

	if begin.Line == end.Line {
		cur := contents.At(int(begin.Line))
		text := cur.ToString()
		runes := []rune(text)
		deleted := string(runes[begin.Column:end.Column])
		before := cur.Substring(0, int(begin.Column))
		after := cur.Substring(int(end.Column), cur.Size()-int(end.Column))
		contents.SetLine(int(begin.Line), line.New(line.Options{Contents: lazystring.Append(before, after), Modified: true}))
		return deleted
	}

	firstLine := contents.At(int(begin.Line))
	lastLine := contents.At(int(end.Line))

	var sb strings.Builder
	sb.WriteString(string([]rune(firstLine.ToString())[begin.Column:]))
	for i := begin.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(contents.At(int(i)).ToString())
	}
	sb.WriteByte('\n')
	sb.WriteString(string([]rune(lastLine.ToString())[:end.Column]))

	merged := lazystring.Append(
		firstLine.Substring(0, int(begin.Column)),
		lastLine.Substring(int(end.Column), lastLine.Size()-int(end.Column)),
	)
	contents.SetLine(int(begin.Line), line.New(line.Options{Contents: merged, Modified: true}))
	contents.EraseLines(int(begin.Line)+1, int(end.Line)+1)

	return sb.String()
}
