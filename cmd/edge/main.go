// Command edge is the editor's terminal entrypoint: it parses flags
// with cobra/pflag (amantus-ai-vibetunnel's CLI idiom), loads config,
// opens the requested buffers, and runs the bubbletea program driving
// the editor's main loop.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alefore/edge-sub002/internal/config"
	"github.com/alefore/edge-sub002/internal/editorstate"
	"github.com/alefore/edge-sub002/internal/elog"
	"github.com/alefore/edge-sub002/internal/fsload"
	"github.com/alefore/edge-sub002/internal/ipc"
	"github.com/alefore/edge-sub002/internal/mode"
	"github.com/alefore/edge-sub002/internal/obuffer"
	"github.com/alefore/edge-sub002/internal/threadpool"
	"github.com/alefore/edge-sub002/internal/workqueue"
)

var (
	serverMode bool
	edgePath   string
	exitValue  int
)

func main() {
	root := &cobra.Command{
		Use:   "edge [files...]",
		Short: "edge is a modal terminal text editor",
		RunE:  run,
	}
	root.Flags().BoolVar(&serverMode, "server", false, "run in server mode, accepting commands over a FIFO")
	root.Flags().StringVar(&edgePath, "edge-path", "", "override $EDGE_PATH for config and command lookup")

	if err := root.Execute(); err != nil {
		elog.Errorf("%v", err)
		os.Exit(1)
	}
	os.Exit(exitValue)
}

func run(cmd *cobra.Command, args []string) error {
	if edgePath != "" {
		os.Setenv("EDGE_PATH", edgePath)
	}
	cfg, err := config.Load()
	if err != nil {
		elog.Warnf("failed to load config: %v", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		elog.Warnf("stdin is not a terminal; continuing anyway")
	}

	var server *ipc.Server
	if serverMode {
		server, err = ipc.Open()
		if err != nil {
			return fmt.Errorf("opening server fifo: %w", err)
		}
		defer server.Close()
		fmt.Fprintf(os.Stderr, "edge: listening at %s\n", server.Path)

		done := make(chan struct{})
		defer close(done)
		go func() {
			if listenErr := ipc.Listen(server.Path, func(client ipc.ClientID, command string) {
				elog.Debugf("server command from %s: %s", client, command)
			}, done); listenErr != nil {
				elog.Warnf("server listener stopped: %v", listenErr)
			}
		}()

		if watcher, peers, watchErr := ipc.WatchPeers(filepath.Dir(server.Path)); watchErr != nil {
			elog.Warnf("watching peer FIFOs: %v", watchErr)
		} else {
			defer watcher.Close()
			go func() {
				for ev := range peers {
					if ev.Created {
						elog.Debugf("peer appeared: %s", ev.Path)
					} else {
						elog.Debugf("peer disappeared: %s", ev.Path)
					}
				}
			}()
		}
	}

	var program *tea.Program
	wq := workqueue.New(func() {
		if program != nil {
			program.Send(workQueueDrainedMsg{})
		}
	})
	pool := threadpool.New(1, wq)
	defer pool.Shutdown()

	state := editorstate.New(pool, wq, mode.DefaultCommandMode())
	for _, path := range args {
		buffer := obuffer.New(path, state.NewSyntaxParser(nil))
		info, statErr := os.Stat(path)
		if statErr == nil && info.IsDir() {
			buffer.SetLoader(fsload.DirectoryLoader(path))
		} else {
			buffer.SetLoader(fsload.FileLoader(path))
		}
		if reloadErr := buffer.Reload(); reloadErr != nil {
			elog.Warnf("loading %s: %v", path, reloadErr)
		}
		if cfg.MarginLines != 0 {
			buffer.SetInt(obuffer.VarMarginLines, cfg.MarginLines)
		}
		state.AddBuffer(buffer)
		state.SetCurrentBuffer(path)
	}

	program = tea.NewProgram(newRootModel(state), tea.WithAltScreen())
	_, err = program.Run()
	exitValue = state.ExitValue()
	return err
}
