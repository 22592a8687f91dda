package commands

import (
	"strings"

	"github.com/xonecas/tilo/internal/tree"
)

// cmdSplit wraps the focused container in a new split.
//
//	split h|horizontal|v|vertical|t|toggle|none
func cmdSplit(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("split", args, 1); !okArgs {
		return res
	}
	con := ctx.Focused
	if con == nil {
		return failf("Cannot split nothing")
	}

	var layout tree.Layout
	switch strings.ToLower(args[0]) {
	case "h", "horizontal":
		layout = tree.LayoutHoriz
	case "v", "vertical":
		layout = tree.LayoutVert
	case "t", "toggle":
		if con.ParentLayout() == tree.LayoutVert {
			layout = tree.LayoutHoriz
		} else {
			layout = tree.LayoutVert
		}
	case "none":
		// Dissolve the immediate split if it only holds this container.
		parent := con.Parent
		if parent == nil || len(parent.Children) != 1 {
			return failf("Can only undo a split with one child")
		}
		tree.ReapEmpty(parent)
		tree.Arrange(ctx.Workspace())
		return ok()
	default:
		return invalidf("Expected 'split <horizontal|vertical|toggle|none>'")
	}

	if con.IsFloating() {
		return failf("Cannot split a floating container")
	}
	tree.Split(con, layout)
	tree.Arrange(ctx.Workspace())
	return ok()
}

// cmdLayout changes the split orientation of the focused container's owner.
//
//	layout splith|splitv|toggle
func cmdLayout(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("layout", args, 1); !okArgs {
		return res
	}
	con := ctx.Focused
	if con == nil {
		return failf("Cannot change the layout of nothing")
	}
	if con.IsFloating() {
		return failf("Cannot change the layout of a floating container")
	}

	current := con.ParentLayout()
	var layout tree.Layout
	switch strings.ToLower(args[0]) {
	case "splith":
		layout = tree.LayoutHoriz
	case "splitv":
		layout = tree.LayoutVert
	case "toggle":
		if current == tree.LayoutHoriz {
			layout = tree.LayoutVert
		} else {
			layout = tree.LayoutHoriz
		}
	default:
		return invalidf("Expected 'layout <splith|splitv|toggle>'")
	}

	if con.Parent != nil {
		con.Parent.Layout = layout
	} else {
		con.Workspace.Layout = layout
	}
	tree.Arrange(ctx.Workspace())
	return ok()
}
