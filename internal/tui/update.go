package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tilo/internal/commands"
	"github.com/xonecas/tilo/internal/tree"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case ExecMsg:
		return m.handleExec(msg)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleResize maps the terminal size to the virtual pixel box and
// re-arranges every workspace.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	contentRows := m.height - statusRows
	if contentRows < 1 {
		contentRows = 1
	}
	m.cmdbar.SetWidth(m.width - 2) // minus prompt and margin
	m.ctx.Root.Resize(m.width*cellWidth, contentRows*cellHeight)
	for _, ws := range m.ctx.Root.Workspaces {
		tree.Arrange(ws)
	}
}

// handleExec runs a command line submitted over IPC.
func (m Model) handleExec(msg ExecMsg) (tea.Model, tea.Cmd) {
	results := commands.Execute(m.ctx, msg.Line)
	m.setStatus(results)
	msg.Reply <- results
	return m, nil
}

// handleKeyPress routes keys to the command bar or the binding table.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.Keystroke()

	if m.cmdbarOpen {
		switch key {
		case "enter":
			line := strings.TrimSpace(m.cmdbar.Value())
			m.cmdbar.Reset()
			m.cmdbar.Blur()
			m.cmdbarOpen = false
			if line != "" {
				m.runCommand(line)
			}
			return m, nil
		case "esc":
			m.cmdbar.Reset()
			m.cmdbar.Blur()
			m.cmdbarOpen = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.cmdbar, cmd = m.cmdbar.Update(msg)
			return m, cmd
		}
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case ":":
		m.cmdbarOpen = true
		m.cmdbar.Focus()
		return m, nil
	case "alt+n":
		m.NewPane()
		return m, nil
	case "alt+w":
		m.closePane()
		return m, nil
	}

	if command, bound := m.cfg.Bindings[key]; bound {
		m.runCommand(command)
	}
	return m, nil
}

// runCommand executes a command line and records the outcome for display.
func (m *Model) runCommand(line string) {
	results := commands.Execute(m.ctx, line)
	m.setStatus(results)
	log.Debug().Str("line", line).Msg("tui command")
}

func (m *Model) setStatus(results []commands.Results) {
	last := results[len(results)-1]
	if last.Status == commands.Success {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = last.Message
	if m.status == "" {
		m.status = last.Status.String()
	}
	m.statusErr = true
}
