// Package transform implements the Transformation stack: composable,
// self-inverting buffer edits with an automatically derived undo,
// grounded on _examples/original_source/insert_mode.cc,
// file_link_mode.cc, and repeat_mode.cc.
package transform

import (
	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/cursors"
	"github.com/alefore/edge-sub002/internal/lazystring"
)

// Target is everything a Transformation needs from the buffer it is being
// applied to. obuffer.OpenBuffer implements this interface; tests use a
// lightweight fake.
type Target interface {
	Contents() *buffercontents.Contents
	Cursors() *cursors.Tracker
	PasteBuffer() lazystring.String
	SetPasteBuffer(lazystring.String)
	MarkModified()
}

// Result is what every Apply call produces: whether the transformation
// succeeded, and the Transformation that undoes it (always present, Noop
// on total failure).
type Result struct {
	Success bool
	Undo    Transformation
}

// Transformation is a composable, undoable edit operation.
type Transformation interface {
	Apply(target Target) Result
}
