package tree

import "testing"

func newArranged(t *testing.T, n int) (*Workspace, []*Container) {
	t.Helper()
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	panes := make([]*Container, n)
	for i := range panes {
		panes[i] = NewContainer(string(rune('a' + i)))
		ws.AddTiling(panes[i])
	}
	Arrange(ws)
	return ws, panes
}

func TestArrangeSeedsFractions(t *testing.T) {
	_, panes := newArranged(t, 3)
	for i, c := range panes {
		if c.WidthFraction != 1.0 {
			t.Errorf("pane %d fraction = %v, want 1.0", i, c.WidthFraction)
		}
	}
}

func TestArrangeLastAbsorbsRemainder(t *testing.T) {
	_, panes := newArranged(t, 3)
	if panes[0].Width != 267 || panes[1].Width != 267 || panes[2].Width != 266 {
		t.Errorf("widths = %d, %d, %d, want 267, 267, 266",
			panes[0].Width, panes[1].Width, panes[2].Width)
	}
	if panes[1].X != 267 || panes[2].X != 534 {
		t.Errorf("origins = %d, %d, want 267, 534", panes[1].X, panes[2].X)
	}
}

func TestArrangeNewcomerGetsAverage(t *testing.T) {
	ws, panes := newArranged(t, 1)
	panes[0].WidthFraction = 3.0

	b := NewContainer("b")
	ws.AddTiling(b)
	Arrange(ws)

	if b.WidthFraction != 3.0 {
		t.Errorf("newcomer fraction = %v, want the existing average 3.0", b.WidthFraction)
	}
	if panes[0].Width != 400 || b.Width != 400 {
		t.Errorf("widths = %d, %d, want 400, 400", panes[0].Width, b.Width)
	}
}

func TestArrangeExistingFractionsKept(t *testing.T) {
	_, panes := newArranged(t, 2)
	panes[0].WidthFraction = 1.5
	panes[1].WidthFraction = 0.5
	Arrange(panes[0].Workspace)

	if panes[0].Width != 600 || panes[1].Width != 200 {
		t.Errorf("widths = %d, %d, want 600, 200", panes[0].Width, panes[1].Width)
	}
}

func TestArrangeNestedSplit(t *testing.T) {
	ws, panes := newArranged(t, 2)
	b := panes[1]
	Split(b, LayoutVert)
	c := NewContainer("c")
	InsertSibling(b, c, 1)
	Arrange(ws)

	if b.Width != 400 || c.Width != 400 {
		t.Errorf("split children widths = %d, %d, want 400", b.Width, c.Width)
	}
	if b.Height != 300 || c.Height != 300 {
		t.Errorf("split children heights = %d, %d, want 300", b.Height, c.Height)
	}
	if c.Y != 300 {
		t.Errorf("c.Y = %d, want 300", c.Y)
	}
}

func TestArrangeSyncsContentBox(t *testing.T) {
	_, panes := newArranged(t, 2)
	a := panes[0]
	if a.ContentX != a.X || a.ContentWidth != a.Width {
		t.Errorf("content box out of sync: %d/%d vs %d/%d",
			a.ContentX, a.ContentWidth, a.X, a.Width)
	}
}

func TestArrangeLeavesFloatingAlone(t *testing.T) {
	ws, _ := newArranged(t, 1)
	f := NewContainer("f")
	ws.AddFloating(f)
	f.X, f.Y, f.Width, f.Height = 123, 45, 300, 200
	Arrange(ws)

	if f.X != 123 || f.Y != 45 || f.Width != 300 || f.Height != 200 {
		t.Errorf("floating geometry rewritten: %d,%d %dx%d", f.X, f.Y, f.Width, f.Height)
	}
}
