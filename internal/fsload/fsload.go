// Package fsload implements obuffer.Loader backends for ordinary
// files and directories, plus fsnotify-driven auto-reload, using
// fsnotify.NewWatcher the way amantus-ai-vibetunnel does rather than
// polling mtimes by hand.
package fsload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/alefore/edge-sub002/internal/buffercontents"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/obuffer"
)

// FileLoader returns an obuffer.Loader reading path's contents,
// splitting on '\n' into Lines.
func FileLoader(path string) obuffer.Loader {
	return func(*obuffer.OpenBuffer) (*buffercontents.Contents, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		c := &buffercontents.Contents{}
		start := 0
		for i := 0; i <= len(data); i++ {
			if i == len(data) || data[i] == '\n' {
				c.PushBack(line.NewFromString(string(data[start:i])))
				start = i + 1
			}
		}
		if c.Empty() {
			c.PushBack(line.NewFromString(""))
		}
		return c, nil
	}
}

// DirectoryLoader returns an obuffer.Loader synthesizing an
// activation-line listing titled "File listing: <path>", one entry
// per directory child, sorted by name. Each entry line carries a
// line.ActivationHandler naming the child's full path, so activating
// it (CommandMode's "\n" binding) opens that file, per spec.md §6's
// "entry_name -> open_file(path)" contract. The handler stores the
// path, never a reference to the buffer or Line that owns it, per
// the "activate" callback's no-strong-ref design note.
func DirectoryLoader(path string) obuffer.Loader {
	return func(*obuffer.OpenBuffer) (*buffercontents.Contents, error) {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() {
				name += "/"
			}
			names = append(names, name)
		}
		sort.Strings(names)

		c := &buffercontents.Contents{}
		c.PushBack(line.NewFromString(fmt.Sprintf("File listing: %s", path)))
		for _, name := range names {
			childPath := filepath.Join(path, strings.TrimSuffix(name, "/"))
			activate := &line.ActivationHandler{BufferName: path, Data: childPath}
			c.PushBack(line.NewFromString(name).WithActivate(activate))
		}
		return c, nil
	}
}

// Watch starts an fsnotify watch on path, calling reload whenever the
// file is written or renamed over. It runs until the watcher's Errors
// channel closes; callers typically run it in its own goroutine and
// Close the returned watcher on buffer close.
func Watch(path string, reload func()) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name == path && (ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename)) != 0 {
					reload()
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w, nil
}
