// Package edittypes holds the small enumerations shared across the
// transformation stack, the cursor tracker, and the mode dispatcher, so
// that none of those packages needs to import another just for a constant.
package edittypes

// Direction is the editor's ambient "which way" modifier, set by the
// reverse-search / reverse-delete keys and consumed by Move/Delete.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Structure is the unit of motion or deletion.
type Structure int

const (
	StructureChar Structure = iota
	StructureWord
	StructureLine
	StructureParagraph
	StructurePage
	StructureBuffer
	StructureSearch
	StructureCursor
	StructureMark
	StructureTree
	StructureSymbolRegion
)

func (s Structure) String() string {
	switch s {
	case StructureChar:
		return "char"
	case StructureWord:
		return "word"
	case StructureLine:
		return "line"
	case StructureParagraph:
		return "paragraph"
	case StructurePage:
		return "page"
	case StructureBuffer:
		return "buffer"
	case StructureSearch:
		return "search"
	case StructureCursor:
		return "cursor"
	case StructureMark:
		return "mark"
	case StructureTree:
		return "tree"
	case StructureSymbolRegion:
		return "symbol_region"
	default:
		return "unknown"
	}
}

// DeleteModifier narrows a word/line deletion.
type DeleteModifier int

const (
	ModifierEntire DeleteModifier = iota
	ModifierFromStartToCursor
	ModifierFromCursorToEnd
)

// FinalPosition says where the cursor should land after an Insert.
type FinalPosition int

const (
	FinalPositionStart FinalPosition = iota
	FinalPositionEnd
)

// WrapStyle controls how BufferContentsWindow breaks long lines.
type WrapStyle int

const (
	WrapNone WrapStyle = iota
	WrapBreakWords
)
