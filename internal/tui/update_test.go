package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tilo/internal/commands"
	"github.com/xonecas/tilo/internal/tree"
)

func press(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, ch := range line {
		m = press(t, m, tea.KeyPressMsg{Code: ch, Text: string(ch)})
	}
	return m
}

func countLeaves(ws *tree.Workspace) int {
	n := 0
	for _, con := range ws.Descendants() {
		if len(con.Children) == 0 {
			n++
		}
	}
	return n
}

func TestWindowSizeMapsToVirtualPixels(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)

	if m.ctx.Root.Width != 800 {
		t.Errorf("root width = %d, want 800", m.ctx.Root.Width)
	}
	// One row belongs to the status bar.
	if m.ctx.Root.Height != 460 {
		t.Errorf("root height = %d, want 460", m.ctx.Root.Height)
	}
	if got := m.ctx.Focused.Width; got != 800 {
		t.Errorf("pane width = %d, want 800", got)
	}
}

func TestNewPaneKeybinding(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)
	first := m.ctx.Focused

	m = press(t, m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModAlt})
	if got := countLeaves(m.ctx.Workspace()); got != 2 {
		t.Fatalf("leaves = %d, want 2", got)
	}
	if m.ctx.Focused == first {
		t.Errorf("focus did not move to the new pane")
	}
	// The new pane sits right of the one it was opened from.
	if m.ctx.Focused.SiblingIndex() != first.SiblingIndex()+1 {
		t.Errorf("new pane index = %d", m.ctx.Focused.SiblingIndex())
	}
}

func TestClosePaneKeybinding(t *testing.T) {
	m := newTestModel(t, 2)
	m = resize(t, m, 80, 24)

	m = press(t, m, tea.KeyPressMsg{Code: 'w', Mod: tea.ModAlt})
	if got := countLeaves(m.ctx.Workspace()); got != 1 {
		t.Fatalf("leaves = %d, want 1", got)
	}
	if m.ctx.Focused == nil {
		t.Errorf("focus not reassigned after close")
	}

	// Closing the last pane leaves nothing focused.
	m = press(t, m, tea.KeyPressMsg{Code: 'w', Mod: tea.ModAlt})
	if m.ctx.Focused != nil {
		t.Errorf("focus = %v on an empty workspace", m.ctx.Focused)
	}
}

func TestBindingTableRunsCommands(t *testing.T) {
	m := newTestModel(t, 2)
	m = resize(t, m, 80, 24)
	focused := m.ctx.Focused

	before := focused.Width
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt})
	if focused.Width <= before {
		t.Errorf("alt+right did not grow the pane: %d -> %d", before, focused.Width)
	}

	// Unbound keys are ignored.
	m = press(t, m, tea.KeyPressMsg{Code: 'z', Text: "z"})
	if countLeaves(m.ctx.Workspace()) != 2 {
		t.Errorf("unbound key mutated the tree")
	}
}

func TestCommandBarRunsLine(t *testing.T) {
	m := newTestModel(t, 2)
	m = resize(t, m, 80, 24)

	m = press(t, m, tea.KeyPressMsg{Code: ':', Text: ":"})
	if !m.cmdbarOpen {
		t.Fatalf("command bar not open after ':'")
	}
	m = typeLine(t, m, "layout splitv")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.cmdbarOpen {
		t.Errorf("command bar still open after enter")
	}
	if m.ctx.Workspace().Layout != tree.LayoutVert {
		t.Errorf("layout = %v, want splitv", m.ctx.Workspace().Layout)
	}
}

func TestCommandBarEscape(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)

	m = press(t, m, tea.KeyPressMsg{Code: ':', Text: ":"})
	m = typeLine(t, m, "layout splitv")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.cmdbarOpen {
		t.Errorf("command bar still open after escape")
	}
	if m.ctx.Workspace().Layout != tree.LayoutHoriz {
		t.Errorf("escaped command ran anyway")
	}
	if m.cmdbar.Value() != "" {
		t.Errorf("command bar kept its text: %q", m.cmdbar.Value())
	}
}

func TestCommandBarSwallowsBindings(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)

	m = press(t, m, tea.KeyPressMsg{Code: ':', Text: ":"})
	m = press(t, m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModAlt})
	if got := countLeaves(m.ctx.Workspace()); got != 1 {
		t.Errorf("binding fired while the command bar was open: %d leaves", got)
	}
}

func TestExecMsgRepliesWithResults(t *testing.T) {
	m := newTestModel(t, 2)
	m = resize(t, m, 80, 24)

	reply := make(chan []commands.Results, 1)
	updated, _ := m.Update(ExecMsg{Line: "focus right; focus left", Reply: reply})
	m = updated.(Model)

	results := <-reply
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for i, res := range results {
		if res.Status != commands.Success {
			t.Errorf("results[%d] = %v (%s)", i, res.Status, res.Message)
		}
	}
}

func TestExecMsgFailureSetsStatus(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)

	reply := make(chan []commands.Results, 1)
	updated, _ := m.Update(ExecMsg{Line: "scratchpad show", Reply: reply})
	m = updated.(Model)
	<-reply

	if !m.statusErr || m.status != "Scratchpad is empty" {
		t.Errorf("status = %q (err=%v)", m.status, m.statusErr)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, 1)
	m = resize(t, m, 80, 24)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Errorf("ctrl+c returned no command, want quit")
	}
}
