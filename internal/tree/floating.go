package tree

import "math"

// Automatic floating size bounds, used when a limit is configured as 0.
const (
	autoMinWidth  = 75
	autoMinHeight = 50
)

// FloatingLimits carries the configured floating size bounds.
// -1 disables a bound, 0 selects the automatic value, anything else is a
// literal pixel size.
type FloatingLimits struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// FloatingConstraints resolves the configured limits against the root box.
func (r *Root) FloatingConstraints(l FloatingLimits) (minWidth, maxWidth, minHeight, maxHeight int) {
	resolve := func(v, auto int) int {
		switch v {
		case -1:
			return 0
		case 0:
			return auto
		default:
			return v
		}
	}
	resolveMax := func(v, auto int) int {
		switch v {
		case -1:
			return math.MaxInt32
		case 0:
			return auto
		default:
			return v
		}
	}
	minWidth = resolve(l.MinWidth, autoMinWidth)
	minHeight = resolve(l.MinHeight, autoMinHeight)
	maxWidth = resolveMax(l.MaxWidth, r.Width)
	maxHeight = resolveMax(l.MaxHeight, r.Height)
	return minWidth, maxWidth, minHeight, maxHeight
}

// FloatingResizeAndCenter gives con a default floating size clamped to the
// constraints and centers it on its workspace. Containers with no
// workspace are left alone; they keep the geometry they were stashed with.
func FloatingResizeAndCenter(con *Container, limits FloatingLimits) {
	ws := con.Workspace
	if ws == nil {
		return
	}
	minW, maxW, minH, maxH := ws.Root.FloatingConstraints(limits)
	con.Width = clamp(ws.Width/2, minW, maxW)
	con.Height = clamp(ws.Height*3/4, minH, maxH)
	con.X = ws.X + (ws.Width-con.Width)/2
	con.Y = ws.Y + (ws.Height-con.Height)/2
	con.ContentX, con.ContentY = con.X, con.Y
	con.ContentWidth, con.ContentHeight = con.Width, con.Height
}

// SetFloating moves a container between the tiled tree and the floating
// list. Re-tiled containers get fresh fractions from the next arrange.
func SetFloating(con *Container, enable bool, limits FloatingLimits) {
	if con.IsFloating() == enable {
		return
	}
	ws := con.Workspace
	if ws == nil {
		return
	}
	oldParent := con.Parent
	con.Detach()
	if enable {
		ws.AddFloating(con)
		FloatingResizeAndCenter(con, limits)
	} else {
		con.Scratchpad = false
		ws.AddTiling(con)
		con.Width, con.Height = ws.Width, ws.Height
		con.WidthFraction = 0
		con.HeightFraction = 0
	}
	if oldParent != nil {
		ReapEmpty(oldParent)
	}
}

// ScratchpadStash hides a container in the scratchpad. Tiled containers
// are floated first so they come back with absolute geometry.
func ScratchpadStash(r *Root, con *Container, limits FloatingLimits) {
	if !con.IsFloating() {
		SetFloating(con, true, limits)
	}
	con.Detach()
	con.Scratchpad = true
	con.Workspace = nil
	if indexOf(r.Scratchpad, con) == -1 {
		r.Scratchpad = append(r.Scratchpad, con)
	}
}

// ScratchpadShow moves the oldest hidden scratchpad container onto the
// workspace, centered. Returns nil when the scratchpad is empty.
func ScratchpadShow(r *Root, ws *Workspace) *Container {
	for _, con := range r.Scratchpad {
		if !con.IsScratchpadHidden() {
			continue
		}
		ws.AddFloating(con)
		con.X = ws.X + (ws.Width-con.Width)/2
		con.Y = ws.Y + (ws.Height-con.Height)/2
		con.ContentX, con.ContentY = con.X, con.Y
		return con
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
