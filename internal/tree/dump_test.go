package tree

import (
	"testing"

	"github.com/charmbracelet/x/exp/golden"
)

func TestDump(t *testing.T) {
	root := NewRoot(800, 600, LayoutHoriz, []string{"main"})
	ws := root.CurrentWorkspace()

	a := NewContainer("a")
	b := NewContainer("b")
	ws.AddTiling(a)
	ws.AddTiling(b)
	Split(b, LayoutVert)
	c := NewContainer("c")
	InsertSibling(b, c, 1)

	f := NewContainer("f")
	ws.AddFloating(f)
	f.X, f.Y, f.Width, f.Height = 100, 100, 300, 200

	Arrange(ws)
	golden.RequireEqual(t, []byte(Dump(ws)))
}
