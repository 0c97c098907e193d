// Package syntax implements BufferSyntaxParser: the incremental,
// background syntax parser, grounded on
// _examples/original_source/src/buffer_syntax_parser.h/.cc.
package syntax

import (
	"sync"

	"github.com/google/uuid"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/notification"
	"github.com/alefore/edge-sub002/internal/parsetree"
	"github.com/alefore/edge-sub002/internal/threadpool"
)

// TreeParser is satisfied by every parser in internal/syntax/parsers;
// none of them import this package, since Go interfaces are satisfied
// structurally.
type TreeParser interface {
	Parse(contents *buffercontents.Contents) *parsetree.Tree
}

// Options reconfigures a Parser; see UpdateParser.
type Options struct {
	Parser             TreeParser
	Typos              []string
	Keywords           []string
	SymbolCharacters   string
	IdentifierBehavior string
}

type data struct {
	mu              sync.Mutex
	parser          TreeParser
	cancel          *notification.Notification
	generation      uuid.UUID
	tree            *parsetree.Tree
	simplifiedTree  *parsetree.Tree
	zoomedOutCache  map[int]*parsetree.ZoomedOut
	zoomedOutForGen map[int]uuid.UUID
}

// Observer is notified after a new tree has been installed.
type Observer func(tree *parsetree.Tree)

// Parser is the mutex-guarded BufferSyntaxParser. All state lives in
// data; a single background thread pool (size 1 is sufficient) executes
// parse jobs.
type Parser struct {
	pool *threadpool.ThreadPool

	d data

	obsMu     sync.Mutex
	observers []Observer
}

// New wraps pool, the thread pool a Parser's jobs run on. Callers
// typically create one pool per process (via threadpool.New(1, ...))
// and share it across every buffer's Parser, so the whole editor keeps
// a single background thread pool rather than one per buffer.
func New(pool *threadpool.ThreadPool, initial TreeParser) *Parser {
	return &Parser{
		pool: pool,
		d: data{
			parser: initial,
			cancel: notification.New(),
		},
	}
}

// AddObserver registers fn to run after every successful tree install.
func (p *Parser) AddObserver(fn Observer) {
	p.obsMu.Lock()
	p.observers = append(p.observers, fn)
	p.obsMu.Unlock()
}

// UpdateParser reconfigures the active TreeParser synchronously; it does
// not itself trigger a parse.
func (p *Parser) UpdateParser(opts Options) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	p.d.parser = opts.Parser
}

// Parse schedules a background parse of contents. If the current parser
// is the Null variant (TreeParser == nil), it returns immediately: the
// caller should special-case a nil initial parser as "no syntax
// highlighting" and never call Parse in that configuration.
func (p *Parser) Parse(contents *buffercontents.Contents) {
	p.d.mu.Lock()
	parser := p.d.parser
	if parser == nil {
		p.d.mu.Unlock()
		return
	}
	p.d.cancel.Notify()
	cancel := notification.New()
	p.d.cancel = cancel
	generation := uuid.New()
	p.d.generation = generation
	p.d.mu.Unlock()

	snapshot := contents.Clone()
	threadpool.Run(p.pool, func() *parsetree.Tree {
		if cancel.HasBeenNotified() {
			return nil
		}
		return parser.Parse(snapshot)
	}, func(tree *parsetree.Tree) {
		if tree == nil || cancel.HasBeenNotified() {
			return
		}
		p.install(tree, generation)
	})
}

func (p *Parser) install(tree *parsetree.Tree, generation uuid.UUID) {
	p.d.mu.Lock()
	p.d.tree = tree
	p.d.simplifiedTree = simplify(tree)
	p.d.zoomedOutCache = nil
	p.d.zoomedOutForGen = nil
	p.d.mu.Unlock()

	p.obsMu.Lock()
	observers := append([]Observer(nil), p.observers...)
	p.obsMu.Unlock()
	for _, obs := range observers {
		obs(tree)
	}
}

// Tree returns the most recently installed full parse tree, or nil if
// none has been installed yet.
func (p *Parser) Tree() *parsetree.Tree {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	return p.d.tree
}

// CurrentZoomedOutParseTree returns the cached zoomed-out tree for
// viewSize. If missing or stale, it recomputes the zoomed-out tree
// synchronously on the calling goroutine (no background job is
// scheduled) and caches the result; it then returns the previous, stale
// value if there was one, or the fresh one otherwise.
func (p *Parser) CurrentZoomedOutParseTree(viewSize, linesTotal int) *parsetree.ZoomedOut {
	p.d.mu.Lock()
	full := p.d.tree
	if full == nil {
		p.d.mu.Unlock()
		return nil
	}
	if p.d.zoomedOutCache == nil {
		p.d.zoomedOutCache = map[int]*parsetree.ZoomedOut{}
	}
	if p.d.zoomedOutForGen == nil {
		p.d.zoomedOutForGen = map[int]uuid.UUID{}
	}
	cached, hasCached := p.d.zoomedOutCache[viewSize]
	staleGen := p.d.zoomedOutForGen[viewSize] != p.d.generation
	generation := p.d.generation
	p.d.mu.Unlock()

	if hasCached && !staleGen {
		return cached
	}

	recomputed := parsetree.Zoom(full, linesTotal, viewSize)
	p.d.mu.Lock()
	p.d.zoomedOutCache[viewSize] = recomputed
	p.d.zoomedOutForGen[viewSize] = generation
	p.d.mu.Unlock()

	if hasCached {
		return cached
	}
	return recomputed
}

// simplify derives simplified_tree: a recursive copy of every node that
// keeps Range, Modifiers and Children and drops Properties. Staleness of
// the zoomed-out cache is tracked by the generation token, not by this
// tree.
func simplify(tree *parsetree.Tree) *parsetree.Tree {
	if tree == nil {
		return nil
	}
	children := make([]*parsetree.Tree, len(tree.Children))
	for i, c := range tree.Children {
		children[i] = simplify(c)
	}
	return &parsetree.Tree{Range: tree.Range, Modifiers: tree.Modifiers, Children: children}
}
