package tui

import (
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/tilo/internal/tree"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

// renderContent paints the visible workspace onto a cell canvas, floating
// panes above tiled ones, with the status bar (or command bar) last.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}
	rows := m.height - statusRows
	if rows < 1 {
		rows = 1
	}
	c := newCanvas(m.width, rows)

	ws := m.ctx.Workspace()
	for _, con := range ws.Tiling {
		m.paintContainer(c, con)
	}
	for _, con := range ws.Floating {
		m.paintContainer(c, con)
	}

	var b strings.Builder
	b.WriteString(c.render(m.styles))
	b.WriteByte('\n')
	m.renderStatusBar(&b, ws)
	return b.String()
}

// paintContainer draws the frames of every leaf in con's subtree.
func (m Model) paintContainer(c *canvas, con *tree.Container) {
	if len(con.Children) > 0 {
		for _, child := range con.Children {
			m.paintContainer(c, child)
		}
		return
	}

	x := toCells(con.X, cellWidth)
	y := toCells(con.Y, cellHeight)
	w := toCells(con.X+con.Width, cellWidth) - x
	h := toCells(con.Y+con.Height, cellHeight) - y

	p := paintBorder
	switch {
	case con == m.ctx.Focused:
		p = paintFocused
	case con.IsFloating():
		p = paintFloating
	}
	c.box(x, y, w, h, p, con.Title)
}

func (m Model) renderStatusBar(b *strings.Builder, ws *tree.Workspace) {
	if m.cmdbarOpen {
		b.WriteString(m.styles.Prompt.Render(":"))
		b.WriteString(firstLine(m.cmdbar.View()))
		return
	}

	left := m.styles.Status.Render(" " + ws.Name)
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusError
		}
		left += "  " + style.Render(m.status)
	}
	right := m.styles.Status.Render("tilo ")

	pad := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(right)
}

// firstLine guards against the textarea ever reporting extra rows.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return s[:i]
	}
	return s
}

// toCells converts a virtual pixel coordinate to terminal cells.
func toCells(px, scale int) int {
	return int(math.Round(float64(px) / float64(scale)))
}

// ---------------------------------------------------------------------------
// Canvas
// ---------------------------------------------------------------------------

// paint identifies which style a canvas cell is rendered with.
type paint byte

const (
	paintNone paint = iota
	paintBorder
	paintFocused
	paintFloating
	paintTitle
)

// canvas is a rune grid with a parallel style layer. Later paints win, so
// floating panes drawn after tiled ones stack above them.
type canvas struct {
	width, height int
	runes         [][]rune
	layers        [][]paint
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.layers = make([][]paint, height)
	for y := range c.runes {
		c.runes[y] = make([]rune, width)
		c.layers[y] = make([]paint, width)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.layers[y][x] = p
}

// box draws a frame with an optional title in the top edge and blanks the
// interior.
func (c *canvas) box(x, y, w, h int, p paint, title string) {
	if w < 2 || h < 2 {
		return
	}
	for ix := x + 1; ix < x+w-1; ix++ {
		c.set(ix, y, '─', p)
		c.set(ix, y+h-1, '─', p)
	}
	for iy := y + 1; iy < y+h-1; iy++ {
		c.set(x, iy, '│', p)
		c.set(x+w-1, iy, '│', p)
		for ix := x + 1; ix < x+w-1; ix++ {
			c.set(ix, iy, ' ', paintNone)
		}
	}
	c.set(x, y, '╭', p)
	c.set(x+w-1, y, '╮', p)
	c.set(x, y+h-1, '╰', p)
	c.set(x+w-1, y+h-1, '╯', p)

	if title == "" || w < 8 {
		return
	}
	label := " " + ansi.Truncate(title, w-6, "…") + " "
	ix := x + 2
	for _, r := range label {
		c.set(ix, y, r, paintTitle)
		ix++
	}
}

// render flattens the canvas into styled lines, batching runs that share a
// paint so styling cost stays proportional to edges, not cells.
func (c *canvas) render(s Styles) string {
	styleFor := map[paint]lipgloss.Style{
		paintBorder:   s.Border,
		paintFocused:  s.FocusedBorder,
		paintFloating: s.FloatingBorder,
		paintTitle:    s.Title,
	}
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		x := 0
		for x < c.width {
			p := c.layers[y][x]
			start := x
			for x < c.width && c.layers[y][x] == p {
				x++
			}
			segment := string(c.runes[y][start:x])
			if p == paintNone {
				b.WriteString(segment)
			} else {
				b.WriteString(styleFor[p].Render(segment))
			}
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
