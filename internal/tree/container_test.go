package tree

import "testing"

func TestSiblings(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	b := NewContainer("b")
	ws.AddTiling(a)
	ws.AddTiling(b)
	f := NewContainer("f")
	ws.AddFloating(f)

	if got := a.Siblings(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("top-level siblings = %v", got)
	}
	if got := f.Siblings(); len(got) != 1 || got[0] != f {
		t.Errorf("floating siblings = %v", got)
	}
	if a.SiblingIndex() != 0 || b.SiblingIndex() != 1 {
		t.Errorf("sibling indexes = %d, %d", a.SiblingIndex(), b.SiblingIndex())
	}
	if a.ParentLayout() != LayoutHoriz {
		t.Errorf("top-level parent layout = %v", a.ParentLayout())
	}

	split := Split(a, LayoutVert)
	if got := a.Siblings(); len(got) != 1 || got[0] != a {
		t.Errorf("nested siblings = %v", got)
	}
	if a.ParentLayout() != LayoutVert {
		t.Errorf("nested parent layout = %v", a.ParentLayout())
	}
	if split.SiblingIndex() != 0 {
		t.Errorf("split index = %d, want 0", split.SiblingIndex())
	}

	ScratchpadStash(root, f, FloatingLimits{})
	if got := f.Siblings(); got != nil {
		t.Errorf("hidden scratchpad siblings = %v, want nil", got)
	}
}

func TestSplitTakesPlace(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	b := NewContainer("b")
	ws.AddTiling(a)
	ws.AddTiling(b)
	Arrange(ws)

	split := Split(a, LayoutVert)
	if ws.Tiling[0] != split || ws.Tiling[1] != b {
		t.Fatalf("split did not take a's place in the tiling list")
	}
	if a.Parent != split || split.Children[0] != a {
		t.Fatalf("a not reparented under the split")
	}
	if split.Width != 400 || split.WidthFraction != 1.0 {
		t.Errorf("split geometry = %d/%v, want a's 400/1.0", split.Width, split.WidthFraction)
	}
	if a.WidthFraction != 0 {
		t.Errorf("a.WidthFraction = %v, want reset to 0", a.WidthFraction)
	}
	if a.Workspace != ws || split.Workspace != ws {
		t.Errorf("workspace back references broken")
	}
}

func TestInsertSibling(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	ws.AddTiling(a)

	before := NewContainer("before")
	after := NewContainer("after")
	InsertSibling(a, after, 1)
	InsertSibling(a, before, 0)

	want := []*Container{before, a, after}
	for i, con := range want {
		if ws.Tiling[i] != con {
			t.Fatalf("tiling[%d] = %q, want %q", i, ws.Tiling[i].Title, con.Title)
		}
	}
	if before.Workspace != ws || after.Workspace != ws {
		t.Errorf("inserted siblings missing workspace back reference")
	}
}

func TestReapEmptyFlattens(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	b := NewContainer("b")
	ws.AddTiling(a)
	ws.AddTiling(b)
	Arrange(ws)

	split := Split(b, LayoutVert)
	c := NewContainer("c")
	InsertSibling(b, c, 1)

	// Removing c leaves a single-child split, which flattens away and
	// hands its share back to b.
	c.Detach()
	ReapEmpty(split)
	if b.Parent != nil {
		t.Fatalf("b still nested after flatten")
	}
	if ws.Tiling[1] != b {
		t.Fatalf("b did not take the split's place")
	}
	if b.WidthFraction != 1.0 {
		t.Errorf("b.WidthFraction = %v, want the split's 1.0", b.WidthFraction)
	}
}

func TestReapEmptyRemovesEmptySplit(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	b := NewContainer("b")
	ws.AddTiling(a)
	ws.AddTiling(b)

	split := Split(b, LayoutVert)
	b.Detach()
	ReapEmpty(split)
	if len(ws.Tiling) != 1 || ws.Tiling[0] != a {
		t.Errorf("empty split not removed: %v", ws.Tiling)
	}
}

func TestIsFloating(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"1"})
	ws := root.CurrentWorkspace()
	a := NewContainer("a")
	f := NewContainer("f")
	ws.AddTiling(a)
	ws.AddFloating(f)

	if a.IsFloating() {
		t.Errorf("tiled container reports floating")
	}
	if !f.IsFloating() {
		t.Errorf("floating container reports tiled")
	}

	ScratchpadStash(root, f, FloatingLimits{})
	if !f.IsFloating() || !f.IsScratchpadHidden() {
		t.Errorf("hidden scratchpad container should float: %v %v",
			f.IsFloating(), f.IsScratchpadHidden())
	}
}
