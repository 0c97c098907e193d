package obuffer

import "github.com/alefore/edge-sub002/internal/vars"

// BoolVars, StringVars and IntVars mirror the original's three
// instantiations of EdgeStruct<T> (bool, wstring, int), grounded on
// _examples/original_source/src/editor_variables.h's "BoolStruct()" /
// "StringStruct()" pattern, narrowed to buffer-scoped variables.
var (
	BoolVars   = vars.NewStruct[bool]()
	StringVars = vars.NewStruct[string]()
	IntVars    = vars.NewStruct[int]()
)

var (
	VarFollowEndOfFile = BoolVars.Add("follow_end_of_file", "Scroll to keep the cursor visible when new content is appended.", false)
	VarPasteMode       = BoolVars.Add("paste_mode", "Disable indentation/wrap assistance while pasting.", false)
	VarWrapFromContent = BoolVars.Add("wrap_from_content", "Wrap long lines at word boundaries instead of the screen edge.", true)
	VarReadOnly        = BoolVars.Add("read_only", "Reject transformations that would modify the buffer.", false)

	VarSymbolCharacters = StringVars.Add("symbol_characters", "Characters considered part of a word, beyond letters/digits.", "_")
	VarBufferSortOrder  = StringVars.Add("buffer_sort_order", "Comparator name used when sorting the buffers list.", "last_visit")

	VarMarginLines = IntVars.Add("margin_lines", "Lines kept visible above/below the cursor when scrolling.", 2)
)
