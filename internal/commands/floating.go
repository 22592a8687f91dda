package commands

import (
	"strings"

	"github.com/xonecas/tilo/internal/tree"
)

// cmdFloating toggles the focused container between tiled and floating.
//
//	floating enable|disable|toggle
func cmdFloating(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("floating", args, 1); !okArgs {
		return res
	}
	con := ctx.Focused
	if con == nil {
		return failf("Cannot float nothing")
	}
	if con.IsScratchpadHidden() {
		return failf("Cannot float a hidden scratchpad container")
	}

	var enable bool
	switch strings.ToLower(args[0]) {
	case "enable":
		enable = true
	case "disable":
		enable = false
	case "toggle":
		enable = !con.IsFloating()
	default:
		return invalidf("Expected 'floating <enable|disable|toggle>'")
	}

	tree.SetFloating(con, enable, ctx.limits())
	tree.Arrange(ctx.Workspace())
	return ok()
}

// cmdMove implements the subset of move this manager supports.
//
//	move scratchpad
func cmdMove(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("move", args, 1); !okArgs {
		return res
	}
	con := ctx.Focused
	if con == nil {
		return failf("Cannot move nothing")
	}
	if !strings.EqualFold(args[0], "scratchpad") {
		return invalidf("Expected 'move scratchpad'")
	}
	if con.IsScratchpadHidden() {
		return failf("Container is already in the scratchpad")
	}

	ws := ctx.Workspace()
	tree.ScratchpadStash(ctx.Root, con, ctx.limits())
	ctx.Focused = firstFocusable(ws)
	tree.Arrange(ws)
	return ok()
}

// cmdScratchpad shows the oldest hidden scratchpad container.
//
//	scratchpad show
func cmdScratchpad(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("scratchpad", args, 1); !okArgs {
		return res
	}
	if !strings.EqualFold(args[0], "show") {
		return invalidf("Expected 'scratchpad show'")
	}

	ws := ctx.Workspace()
	con := tree.ScratchpadShow(ctx.Root, ws)
	if con == nil {
		return failf("Scratchpad is empty")
	}
	ctx.Focused = con
	tree.Arrange(ws)
	return ok()
}

// cmdWorkspace switches the visible workspace.
//
//	workspace <name>
func cmdWorkspace(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("workspace", args, 1); !okArgs {
		return res
	}
	ws := ctx.Root.SwitchWorkspace(args[0])
	if ws.Name != args[0] {
		return failf("No workspace named %q", args[0])
	}
	ctx.Focused = firstFocusable(ws)
	tree.Arrange(ws)
	return ok()
}

// firstFocusable picks a fallback focus target on the workspace.
func firstFocusable(ws *tree.Workspace) *tree.Container {
	for _, con := range ws.Descendants() {
		if len(con.Children) == 0 {
			return con
		}
	}
	return nil
}
