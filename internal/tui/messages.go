package tui

import "github.com/xonecas/tilo/internal/commands"

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// ExecMsg asks the update loop to run a command line. Exported so the IPC
// server can send it via program.Send; Reply must be buffered.
type ExecMsg struct {
	Line  string
	Reply chan []commands.Results
}
