// Package tui renders the layout tree in the terminal and routes key
// presses and IPC requests into the command dispatcher. All tree mutation
// happens on the bubbletea update loop, so commands never race.
package tui

import (
	"strconv"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tilo/internal/commands"
	"github.com/xonecas/tilo/internal/config"
	"github.com/xonecas/tilo/internal/tree"
)

// Terminal cells are not square; geometry is kept in virtual pixels and
// mapped to cells on render. One cell is 10x20 virtual pixels, so the
// tiled minimum sane size of 100x60 is a readable 10x3 cell pane.
const (
	cellWidth  = 10
	cellHeight = 20
	statusRows = 1
)

// Model is the application model.
type Model struct {
	cfg *config.Config
	ctx *commands.Context

	width  int
	height int

	cmdbar     textarea.Model
	cmdbarOpen bool

	// status holds the last command outcome for the status bar.
	status    string
	statusErr bool

	paneSeq int
	styles  Styles
}

// New creates the TUI model around an already-built tree.
func New(cfg *config.Config, ctx *commands.Context) Model {
	bar := textarea.New()
	bar.Prompt = ""
	bar.ShowLineNumbers = false
	bar.SetHeight(1)

	return Model{
		cfg:    cfg,
		ctx:    ctx,
		cmdbar: bar,
		styles: defaultStyles(),
	}
}

// Init is required by bubbletea.
func (m Model) Init() tea.Cmd {
	return nil
}

// NewPane creates a leaf container next to the focused one and focuses it.
func (m *Model) NewPane() *tree.Container {
	m.paneSeq++
	con := tree.NewContainer(paneTitle(m.paneSeq))
	focused := m.ctx.Focused
	if focused != nil && !focused.IsFloating() {
		tree.InsertSibling(focused, con, 1)
	} else {
		m.ctx.Workspace().AddTiling(con)
	}
	m.ctx.Focused = con
	tree.Arrange(m.ctx.Workspace())
	return con
}

// closePane removes the focused leaf and refocuses.
func (m *Model) closePane() {
	con := m.ctx.Focused
	if con == nil || len(con.Children) > 0 {
		return
	}
	parent := con.Parent
	con.Detach()
	if parent != nil {
		tree.ReapEmpty(parent)
	}
	m.ctx.Focused = firstLeaf(m.ctx.Workspace())
	tree.Arrange(m.ctx.Workspace())
}

// firstLeaf picks a fallback focus target on the workspace.
func firstLeaf(ws *tree.Workspace) *tree.Container {
	for _, con := range ws.Descendants() {
		if len(con.Children) == 0 {
			return con
		}
	}
	return nil
}

func paneTitle(n int) string {
	return "pane " + strconv.Itoa(n)
}
