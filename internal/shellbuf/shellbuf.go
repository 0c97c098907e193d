// Package shellbuf wires a shell command into an obuffer.OpenBuffer:
// a pty-backed os/exec.Cmd whose output is read continuously into the
// buffer's contents, grounded on the other_examples pty.StartWithSize
// usage pattern (dcosson-h2's internal/session/virtualterminal), using
// github.com/creack/pty since no pack repo hand-rolls pty allocation.
package shellbuf

import (
	"bufio"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/alefore/edge-sub002/internal/config"
	"github.com/alefore/edge-sub002/internal/line"
	"github.com/alefore/edge-sub002/internal/obuffer"
)

// Name returns the buffer name convention for a shell command.
func Name(cmd string) string { return "$ " + cmd }

// Start launches cmd through /bin/sh -c, attaches its stdout/stderr to
// a pty, and appends each line of output to buffer as it arrives.
// Env is loaded from config.CommandEnvironmentPath for the command's
// first token and merged over os.Environ(). Start returns once the
// command has exited; callers run it in its own goroutine, with the
// resulting fd registered in the buffer's viewer/work-queue plumbing
// by the caller.
func Start(buffer *obuffer.OpenBuffer, command string) error {
	c := exec.Command("/bin/sh", "-c", command)
	c.Env = mergedEnvironment(command)

	f, err := pty.Start(c)
	if err != nil {
		return err
	}
	buffer.SetInputFD(f)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		l := line.NewFromString(scanner.Text())
		if first {
			buffer.Contents().SetLine(0, l)
			first = false
		} else {
			buffer.Contents().PushBack(l)
		}
		buffer.MarkModified()
	}
	return c.Wait()
}

func mergedEnvironment(command string) []string {
	env := os.Environ()
	first := firstToken(command)
	if first == "" {
		return env
	}
	extra, err := os.ReadFile(config.CommandEnvironmentPath(first))
	if err != nil {
		return env
	}
	return append(env, parseKeyValueLines(string(extra))...)
}

func firstToken(command string) string {
	for i, r := range command {
		if r == ' ' || r == '\t' {
			return command[:i]
		}
	}
	return command
}

func parseKeyValueLines(contents string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(contents); i++ {
		if i == len(contents) || contents[i] == '\n' {
			l := contents[start:i]
			start = i + 1
			if l == "" {
				continue
			}
			out = append(out, l)
		}
	}
	return out
}
