package commands

import (
	"strings"

	"github.com/xonecas/tilo/internal/tree"
)

// cmdFocus moves focus between containers.
//
//	focus left|right|up|down|parent|next|prev
func cmdFocus(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("focus", args, 1); !okArgs {
		return res
	}
	con := ctx.Focused
	if con == nil {
		return failf("Cannot focus nothing")
	}

	var target *tree.Container
	switch strings.ToLower(args[0]) {
	case "left":
		target = neighbor(con, tree.LayoutHoriz, -1)
	case "right":
		target = neighbor(con, tree.LayoutHoriz, +1)
	case "up":
		target = neighbor(con, tree.LayoutVert, -1)
	case "down":
		target = neighbor(con, tree.LayoutVert, +1)
	case "parent":
		target = con.Parent
	case "next":
		target = cycleSibling(con, +1)
	case "prev":
		target = cycleSibling(con, -1)
	default:
		return invalidf("Expected 'focus <left|right|up|down|parent|next|prev>'")
	}

	if target == nil {
		return failf("Cannot focus in that direction")
	}
	ctx.Focused = target
	return ok()
}

// neighbor walks upward looking for an ancestor with a sibling in the
// requested direction under a matching split, then descends to the leaf
// nearest the crossed edge.
func neighbor(con *tree.Container, layout tree.Layout, dir int) *tree.Container {
	for con != nil {
		if con.ParentLayout() == layout {
			siblings := con.Siblings()
			index := con.SiblingIndex()
			if next := index + dir; next >= 0 && next < len(siblings) {
				return descend(siblings[next], layout, dir)
			}
		}
		con = con.Parent
	}
	return nil
}

// descend drills into the child closest to the edge we entered from.
func descend(con *tree.Container, layout tree.Layout, dir int) *tree.Container {
	for len(con.Children) > 0 {
		if con.Layout == layout && dir > 0 {
			con = con.Children[0]
		} else if con.Layout == layout {
			con = con.Children[len(con.Children)-1]
		} else {
			con = con.Children[0]
		}
	}
	return con
}

// cycleSibling wraps around the sibling list.
func cycleSibling(con *tree.Container, dir int) *tree.Container {
	siblings := con.Siblings()
	if len(siblings) < 2 {
		return nil
	}
	index := con.SiblingIndex()
	next := (index + dir + len(siblings)) % len(siblings)
	target := siblings[next]
	for len(target.Children) > 0 {
		target = target.Children[0]
	}
	return target
}
