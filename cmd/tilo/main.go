package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tilo/internal/commands"
	"github.com/xonecas/tilo/internal/config"
	"github.com/xonecas/tilo/internal/ipc"
	"github.com/xonecas/tilo/internal/tree"
	"github.com/xonecas/tilo/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	socketPath := flag.String("socket", "", "IPC socket path (overrides config)")
	logPath := flag.String("log", "", "log file path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tilo:", err)
		os.Exit(1)
	}
	if *socketPath != "" {
		cfg.Socket = *socketPath
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	setupLogging(cfg.LogFile)

	layout := tree.LayoutHoriz
	if cfg.DefaultLayout == "splitv" {
		layout = tree.LayoutVert
	}
	// The real box arrives with the first WindowSizeMsg.
	root := tree.NewRoot(800, 460, layout, cfg.Workspaces)
	ctx := &commands.Context{Root: root, Config: cfg}

	model := tui.New(cfg, ctx)
	model.NewPane()

	p := tea.NewProgram(model)

	socket := cfg.SocketOrDefault()
	srv, err := ipc.Listen(socket, func(command string) []commands.Results {
		reply := make(chan []commands.Results, 1)
		p.Send(tui.ExecMsg{Line: command, Reply: reply})
		return <-reply
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "tilo:", err)
		os.Exit(1)
	}
	go srv.Serve(context.Background())
	defer func() {
		srv.Close()
		os.Remove(socket)
	}()

	log.Info().Str("socket", socket).Msg("tilo started")
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tilo:", err)
		os.Exit(1)
	}
}

// setupLogging points the global zerolog logger at the configured file.
// The terminal belongs to the TUI, so no file means no logging.
func setupLogging(path string) {
	if path == "" {
		log.Logger = zerolog.Nop()
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
}
