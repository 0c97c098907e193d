package ipc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestOpenUsesExistingParentAddress(t *testing.T) {
	t.Setenv(envParentAddress, "/tmp/some-existing-fifo")
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.owned {
		t.Fatalf("Open() should not own a FIFO supplied via %s", envParentAddress)
	}
	if s.Path != "/tmp/some-existing-fifo" {
		t.Fatalf("Path = %q, want the inherited address", s.Path)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() of a non-owned server should be a no-op, got %v", err)
	}
}

func TestOpenCreatesAndExportsFifo(t *testing.T) {
	t.Setenv(envParentAddress, "")
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if !s.owned {
		t.Fatalf("Open() without %s set should own the FIFO it creates", envParentAddress)
	}
	if os.Getenv(envParentAddress) != s.Path {
		t.Fatalf("%s = %q, want %q", envParentAddress, os.Getenv(envParentAddress), s.Path)
	}
	if info, err := os.Stat(s.Path); err != nil || info.Mode()&os.ModeNamedPipe == 0 {
		t.Fatalf("expected %s to be a named pipe", s.Path)
	}
}

func TestListenDeliversCommandsUntilDone(t *testing.T) {
	t.Setenv(envParentAddress, "")
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	type delivery struct {
		client ClientID
		cmd    string
	}
	received := make(chan delivery, 1)
	done := make(chan struct{})
	go Listen(s.Path, func(client ClientID, cmd string) { received <- delivery{client, cmd} }, done)

	go func() {
		w, err := os.OpenFile(s.Path, os.O_WRONLY, 0)
		if err != nil {
			return
		}
		w.WriteString("save\n")
		w.Close()
	}()

	select {
	case d := <-received:
		if d.cmd != "save" {
			t.Fatalf("received %q, want %q", d.cmd, "save")
		}
		if d.client.String() == "" {
			t.Fatalf("expected Listen to mint a non-empty ClientID")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a command through the FIFO")
	}
	close(done)
}

func TestWatchPeersReportsFifoCreation(t *testing.T) {
	dir := t.TempDir()
	watcher, peers, err := WatchPeers(dir)
	if err != nil {
		t.Fatalf("WatchPeers() error = %v", err)
	}
	defer watcher.Close()

	path := filepath.Join(dir, "edge-server-12345")
	if err := unix.Mkfifo(path, 0600); err != nil {
		t.Fatalf("Mkfifo() error = %v", err)
	}

	select {
	case ev := <-peers:
		if !ev.Created || ev.Path != path {
			t.Fatalf("PeerEvent = %+v, want Created=true Path=%q", ev, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a peer-created event")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	select {
	case ev := <-peers:
		if ev.Created {
			t.Fatalf("PeerEvent = %+v, want a removal event", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a peer-removed event")
	}
}

func TestWatchPeersIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watcher, peers, err := WatchPeers(dir)
	if err != nil {
		t.Fatalf("WatchPeers() error = %v", err)
	}
	defer watcher.Close()

	other := filepath.Join(dir, "not-a-server-fifo")
	if err := os.WriteFile(other, []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case ev := <-peers:
		t.Fatalf("expected no event for a non edge-server-* file, got %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}
