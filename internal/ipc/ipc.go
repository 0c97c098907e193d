// Package ipc implements the editor's server mode: a named pipe other
// processes write editor commands into, grounded on the pack's
// golang.org/x/sys/unix usage (braheezy-kilo/main.go) for the
// Mkfifo syscall no stdlib package exposes directly, plus an
// fsnotify-backed watch (the same idiom as fsload.Watch) for noticing
// sibling edge-server-* FIFOs appear or disappear.
package ipc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

const envParentAddress = "EDGE_PARENT_ADDRESS"
const fifoPrefix = "edge-server-"

// ClientID identifies one FIFO-open session: Listen mints a fresh ID
// every time a writer connects (the reader reopens the FIFO on the
// previous writer's EOF), so handlers can tell separate peers apart.
type ClientID uuid.UUID

func (c ClientID) String() string { return uuid.UUID(c).String() }

// Server is a FIFO other processes write newline-terminated commands
// into.
type Server struct {
	Path  string
	owned bool
}

// Open resolves $EDGE_PARENT_ADDRESS if set, using that existing FIFO;
// otherwise it creates a fresh one under /tmp/edge-server-*, mode
// 0600, and exports EDGE_PARENT_ADDRESS so children can find it.
func Open() (*Server, error) {
	if path := os.Getenv(envParentAddress); path != "" {
		return &Server{Path: path}, nil
	}

	path := fmt.Sprintf("/tmp/%s%d", fifoPrefix, os.Getpid())
	if err := unix.Mkfifo(path, 0600); err != nil {
		return nil, err
	}
	if err := os.Setenv(envParentAddress, path); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &Server{Path: path, owned: true}, nil
}

// Close removes the FIFO if Open created it.
func (s *Server) Close() error {
	if !s.owned {
		return nil
	}
	return os.Remove(s.Path)
}

// Listen opens the FIFO for reading and delivers each newline-
// terminated command to handle, blocking until the FIFO's write end
// closes, at which point it reopens it (a FIFO reader sees EOF every
// time the last writer closes). Each reopen is treated as a new
// client connecting and gets a fresh ClientID. Callers run Listen in
// its own goroutine. done is checked only before each (re)open: after
// done is closed, Listen returns once the current writer closes, and it
// stays blocked while waiting for a writer to open the FIFO.
func Listen(path string, handle func(client ClientID, command string), done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		default:
		}

		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return err
		}
		client := ClientID(uuid.New())
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			handle(client, scanner.Text())
		}
		f.Close()
	}
}

// PeerEvent reports an edge-server-* FIFO appearing or disappearing
// from a watched directory.
type PeerEvent struct {
	Path    string
	Created bool
}

// WatchPeers watches dir (typically filepath.Dir of a Server.Path) for
// sibling edge-server-* FIFOs being created or removed, the same
// fsnotify.NewWatcher idiom as fsload.Watch. It runs until the
// watcher's Errors channel closes; callers Close the returned watcher
// to stop it.
func WatchPeers(dir string) (*fsnotify.Watcher, <-chan PeerEvent, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, nil, err
	}

	events := make(chan PeerEvent)
	go func() {
		defer close(events)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !strings.HasPrefix(filepath.Base(ev.Name), fifoPrefix) {
					continue
				}
				switch {
				case ev.Op&fsnotify.Create != 0:
					events <- PeerEvent{Path: ev.Name, Created: true}
				case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					events <- PeerEvent{Path: ev.Name, Created: false}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w, events, nil
}
