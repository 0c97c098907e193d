// Package obuffer implements OpenBuffer, the editor's per-buffer
// aggregate: BufferContents, CursorsTracker, variables,
// BufferSyntaxParser, observers, an optional input file descriptor, and
// the per-buffer status line. Grounded on
// _examples/original_source/buffer.h/.cc (field layout) and the
// teacher's pkg/buffer.Model (observer/reload idiom).
package obuffer

import (
	"os"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/cursors"
	"github.com/alefore/edge-sub002/internal/lazystring"
	"github.com/alefore/edge-sub002/internal/linecol"
	"github.com/alefore/edge-sub002/internal/parsetree"
	"github.com/alefore/edge-sub002/internal/status"
	"github.com/alefore/edge-sub002/internal/syntax"
	"github.com/alefore/edge-sub002/internal/vars"
	"github.com/alefore/edge-sub002/internal/viewers"
)

// Loader reloads a buffer's contents from its backing source (a file,
// a directory listing, a shell command's output). It returns the new
// contents; OpenBuffer.Reload installs them and notifies observers.
type Loader func(b *OpenBuffer) (*buffercontents.Contents, error)

// OpenBuffer is the editor's per-buffer aggregate; it implements
// transform.Target.
type OpenBuffer struct {
	Name string

	contents *buffercontents.Contents
	cursors  *cursors.Tracker

	bools   *vars.Instance[bool]
	strings *vars.Instance[string]
	ints    *vars.Instance[int]

	syntaxParser *syntax.Parser

	viewerSet *viewers.Viewers
	viewStart linecol.Position

	status *status.Status

	loader  Loader
	inputFD *os.File

	pasteBuffer lazystring.String
	modified    bool

	observers []func(*OpenBuffer)
}

// New creates an empty buffer named name. syntaxParser may be nil (the
// Null variant): TriggerParse is then a no-op.
func New(name string, syntaxParser *syntax.Parser) *OpenBuffer {
	return &OpenBuffer{
		Name:         name,
		contents:     buffercontents.New(),
		cursors:      cursors.NewTracker(),
		bools:        BoolVars.NewInstance(),
		strings:      StringVars.NewInstance(),
		ints:         IntVars.NewInstance(),
		syntaxParser: syntaxParser,
		viewerSet:    viewers.New(),
		status:       status.New(),
		pasteBuffer:  lazystring.Empty,
	}
}

// transform.Target implementation.

func (b *OpenBuffer) Contents() *buffercontents.Contents { return b.contents }
func (b *OpenBuffer) Cursors() *cursors.Tracker           { return b.cursors }
func (b *OpenBuffer) PasteBuffer() lazystring.String      { return b.pasteBuffer }
func (b *OpenBuffer) SetPasteBuffer(s lazystring.String)  { b.pasteBuffer = s }

func (b *OpenBuffer) MarkModified() {
	b.modified = true
	b.TriggerParse()
	b.notifyObservers()
}

func (b *OpenBuffer) Modified() bool     { return b.modified }
func (b *OpenBuffer) ClearModified()     { b.modified = false }

// Variable access. Each accessor takes the package-level *vars.Variable
// registered in variables.go (e.g. VarFollowEndOfFile).

func (b *OpenBuffer) Bool(v *vars.Variable[bool]) bool      { return b.bools.Get(v) }
func (b *OpenBuffer) SetBool(v *vars.Variable[bool], x bool) { b.bools.Set(v, x) }

func (b *OpenBuffer) String(v *vars.Variable[string]) string       { return b.strings.Get(v) }
func (b *OpenBuffer) SetString(v *vars.Variable[string], x string) { b.strings.Set(v, x) }

func (b *OpenBuffer) Int(v *vars.Variable[int]) int      { return b.ints.Get(v) }
func (b *OpenBuffer) SetInt(v *vars.Variable[int], x int) { b.ints.Set(v, x) }

// Observers.

func (b *OpenBuffer) AddObserver(fn func(*OpenBuffer)) {
	b.observers = append(b.observers, fn)
}

func (b *OpenBuffer) notifyObservers() {
	for _, fn := range b.observers {
		fn(b)
	}
}

// Syntax parsing.

func (b *OpenBuffer) TriggerParse() {
	if b.syntaxParser == nil {
		return
	}
	b.syntaxParser.Parse(b.contents)
}

func (b *OpenBuffer) SyntaxTree() *parsetree.Tree {
	if b.syntaxParser == nil {
		return nil
	}
	return b.syntaxParser.Tree()
}

func (b *OpenBuffer) ZoomedOutSyntaxTree(viewLines int) *parsetree.ZoomedOut {
	if b.syntaxParser == nil {
		return nil
	}
	return b.syntaxParser.CurrentZoomedOutParseTree(viewLines, b.contents.Size())
}

// Viewport.

func (b *OpenBuffer) ViewStart() linecol.Position  { return b.viewStart }
func (b *OpenBuffer) SetViewStart(p linecol.Position) { b.viewStart = p }
func (b *OpenBuffer) Viewers() *viewers.Viewers    { return b.viewerSet }

// Status.

func (b *OpenBuffer) Status() *status.Status { return b.status }

// Loading.

func (b *OpenBuffer) SetLoader(l Loader)      { b.loader = l }
func (b *OpenBuffer) InputFD() *os.File       { return b.inputFD }
func (b *OpenBuffer) SetInputFD(f *os.File)   { b.inputFD = f }

// Reload invokes the configured Loader, installs the resulting
// contents, clears Modified, triggers a fresh syntax parse, and
// notifies observers. It is a no-op if no Loader is configured.
func (b *OpenBuffer) Reload() error {
	if b.loader == nil {
		return nil
	}
	contents, err := b.loader(b)
	if err != nil {
		b.status.SetWarning(err.Error())
		return err
	}
	b.contents = contents
	b.modified = false
	b.TriggerParse()
	b.notifyObservers()
	return nil
}
