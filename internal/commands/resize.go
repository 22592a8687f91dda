package commands

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/tilo/internal/tree"
)

// Smallest size a tiled container may be resized to. Any redistribution
// that would push a touched container below this is rejected whole.
const (
	minSaneWidth  = 100
	minSaneHeight = 60
)

// defaultAdjustAmount is used when grow/shrink gives no amount.
const defaultAdjustAmount = 10

// ---------------------------------------------------------------------------
// Amounts and units
// ---------------------------------------------------------------------------

type resizeUnit int

const (
	unitPx resizeUnit = iota
	unitPpt
	unitDefault
	unitInvalid
)

// resizeAmount is a parsed "<n>[unit]" argument. It lives only for the
// duration of one command.
type resizeAmount struct {
	amount int
	unit   resizeUnit
}

func parseResizeUnit(s string) resizeUnit {
	switch strings.ToLower(s) {
	case "px":
		return unitPx
	case "ppt":
		return unitPpt
	case "default":
		return unitDefault
	default:
		return unitInvalid
	}
}

// parseResizeAmount parses arguments such as "10", "10px" or "10 px" from
// the front of args and returns the number of arguments consumed.
func parseResizeAmount(args []string) (resizeAmount, int) {
	n, suffix := splitLeadingInt(args[0])
	a := resizeAmount{amount: n}
	if suffix != "" {
		// e.g. 10px
		a.unit = parseResizeUnit(suffix)
		return a, 1
	}
	if len(args) == 1 {
		a.unit = unitDefault
		return a, 1
	}
	// Try the second argument.
	a.unit = parseResizeUnit(args[1])
	if a.unit == unitInvalid {
		// Not a unit; leave it for the caller.
		a.unit = unitDefault
		return a, 1
	}
	return a, 2
}

// splitLeadingInt splits a token into its leading integer and whatever
// trails it. A token with no leading digits comes back whole as the
// suffix, with amount 0.
func splitLeadingInt(s string) (int, string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, s
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// pptToPixels converts a percentage amount against a reference size.
func pptToPixels(amount, reference int) int {
	return reference * amount / 100
}

// ---------------------------------------------------------------------------
// Axes
// ---------------------------------------------------------------------------

// edges is a bitmask of container edges involved in a resize.
type edges uint8

const (
	edgeNone   edges = 0
	edgeTop    edges = 1 << 0
	edgeBottom edges = 1 << 1
	edgeLeft   edges = 1 << 2
	edgeRight  edges = 1 << 3

	// Pair axes grow or shrink symmetrically on both edges.
	axisHorizontal = edgeLeft | edgeRight
	axisVertical   = edgeTop | edgeBottom
)

func parseResizeAxis(s string) edges {
	switch strings.ToLower(s) {
	case "width", "horizontal":
		return axisHorizontal
	case "height", "vertical":
		return axisVertical
	case "up":
		return edgeTop
	case "down":
		return edgeBottom
	case "left":
		return edgeLeft
	case "right":
		return edgeRight
	default:
		return edgeNone
	}
}

func (e edges) horizontal() bool {
	return e&(edgeLeft|edgeRight) != 0
}

// ---------------------------------------------------------------------------
// Tiled resize
// ---------------------------------------------------------------------------

// findResizeParent walks upward from con (inclusive) to the nearest
// ancestor that can absorb a resize along axis: its owner splits along the
// parallel orientation, it has a sibling, and it is not pinned to the
// boundary the resize would push against (no previous sibling for a
// top/left edge, no next sibling for a bottom/right edge).
func findResizeParent(con *tree.Container, axis edges) *tree.Container {
	parallel := tree.LayoutVert
	if axis.horizontal() {
		parallel = tree.LayoutHoriz
	}
	allowFirst := axis != edgeTop && axis != edgeLeft
	allowLast := axis != edgeRight && axis != edgeBottom

	for con != nil {
		siblings := con.Siblings()
		index := con.SiblingIndex()
		if con.ParentLayout() == parallel && len(siblings) > 1 &&
			(allowFirst || index > 0) &&
			(allowLast || index < len(siblings)-1) {
			return con
		}
		con = con.Parent
	}
	return nil
}

// containerResizeTiled moves amount pixels of space into con from its
// adjacent sibling(s) along axis by shifting fractional weights. The
// operation is all-or-nothing: if any touched container would drop below
// the minimum sane size, nothing changes. Callers detect the no-op by
// comparing fractions before and after.
func containerResizeTiled(con *tree.Container, axis edges, amount int) {
	if con == nil {
		return
	}
	con = findResizeParent(con, axis)
	if con == nil {
		// Can't resize in this direction.
		return
	}

	// For a pair axis we grow in two directions, so select both adjacent
	// siblings. For RIGHT or DOWN, just the next sibling. For LEFT or UP,
	// convert to a RIGHT or DOWN resize on the previous sibling.
	var prev, next *tree.Container
	siblings := con.Siblings()
	index := con.SiblingIndex()

	switch {
	case axis == axisHorizontal || axis == axisVertical:
		switch index {
		case 0:
			next = siblings[1]
		case len(siblings) - 1:
			next = con
			con = siblings[index-1]
			amount = -amount
		default:
			prev = siblings[index-1]
			next = siblings[index+1]
		}
	case axis == edgeTop || axis == edgeLeft:
		// The locator guarantees a previous sibling for these axes.
		next = con
		con = siblings[index-1]
		amount = -amount
	default:
		next = siblings[index+1]
	}

	// On a pair axis prev absorbs half; next takes the rest, which is the
	// larger half on odd amounts.
	prevAmount := 0
	nextAmount := amount
	if prev != nil {
		prevAmount = amount / 2
		nextAmount = amount - prevAmount
	}

	if axis.horizontal() {
		if con.Width == 0 || con.Width+amount < minSaneWidth ||
			next.Width-nextAmount < minSaneWidth ||
			(prev != nil && prev.Width-prevAmount < minSaneWidth) {
			return
		}
		// The weight moved to con comes out of the absorbing siblings in
		// proportion to their share of the pixel delta, so the sum of
		// sibling fractions is unchanged.
		grow := con.WidthFraction * float64(amount) / float64(con.Width)
		if prev != nil {
			prevLoss := con.WidthFraction * float64(prevAmount) / float64(con.Width)
			prev.WidthFraction -= prevLoss
			next.WidthFraction -= grow - prevLoss
		} else {
			next.WidthFraction -= grow
		}
		con.WidthFraction += grow
	} else {
		if con.Height == 0 || con.Height+amount < minSaneHeight ||
			next.Height-nextAmount < minSaneHeight ||
			(prev != nil && prev.Height-prevAmount < minSaneHeight) {
			return
		}
		grow := con.HeightFraction * float64(amount) / float64(con.Height)
		if prev != nil {
			prevLoss := con.HeightFraction * float64(prevAmount) / float64(con.Height)
			prev.HeightFraction -= prevLoss
			next.HeightFraction -= grow - prevLoss
		} else {
			next.HeightFraction -= grow
		}
		con.HeightFraction += grow
	}

	log.Debug().Int("container", con.ID).Int("amount", amount).
		Msg("redistributed tiled siblings")

	if con.Parent != nil {
		tree.ArrangeContainer(con.Parent)
	} else {
		tree.Arrange(con.Workspace)
	}
}

// ---------------------------------------------------------------------------
// grow/shrink handlers
// ---------------------------------------------------------------------------

// resizeAdjustFloating implements `resize grow|shrink` for a floating
// container. The amount is always pixels here.
func resizeAdjustFloating(ctx *Context, axis edges, amount resizeAmount) Results {
	con := ctx.Focused
	growWidth, growHeight := 0, 0
	if axis.horizontal() {
		growWidth = amount.amount
	} else {
		growHeight = amount.amount
	}

	// Clamp against the floating min/max constraints.
	minW, maxW, minH, maxH := ctx.Root.FloatingConstraints(ctx.limits())
	if con.Width+growWidth < minW {
		growWidth = minW - con.Width
	} else if con.Width+growWidth > maxW {
		growWidth = maxW - con.Width
	}
	if con.Height+growHeight < minH {
		growHeight = minH - con.Height
	} else if con.Height+growHeight > maxH {
		growHeight = maxH - con.Height
	}
	if growWidth == 0 && growHeight == 0 {
		return failf("Cannot resize any further")
	}

	// Pair axes keep the center fixed; top/left edges drag the origin.
	growX, growY := 0, 0
	switch axis {
	case axisHorizontal:
		growX = -growWidth / 2
	case axisVertical:
		growY = -growHeight / 2
	case edgeTop:
		growY = -growHeight
	case edgeLeft:
		growX = -growWidth
	}

	con.X += growX
	con.Y += growY
	con.Width += growWidth
	con.Height += growHeight

	con.ContentX += growX
	con.ContentY += growY
	con.ContentWidth += growWidth
	con.ContentHeight += growHeight

	tree.ArrangeContainer(con)
	return ok()
}

// resizeAdjustTiled implements `resize grow|shrink` for a tiled container.
func resizeAdjustTiled(ctx *Context, axis edges, amount resizeAmount) Results {
	con := ctx.Focused

	if amount.unit == unitDefault {
		amount.unit = unitPpt
	}
	if amount.unit == unitPpt {
		if axis.horizontal() {
			amount.amount = pptToPixels(amount.amount, con.Width)
		} else {
			amount.amount = pptToPixels(amount.amount, con.Height)
		}
	}

	oldWidth := con.WidthFraction
	oldHeight := con.HeightFraction
	containerResizeTiled(con, axis, amount.amount)
	if con.WidthFraction == oldWidth && con.HeightFraction == oldHeight {
		return failf("Cannot resize any further")
	}
	return ok()
}

// ---------------------------------------------------------------------------
// set handlers
// ---------------------------------------------------------------------------

// resizeSetTiled implements `resize set` for a tiled container.
// Percentages are normalized against the nearest ancestor split along the
// matching orientation, or the workspace when none exists.
func resizeSetTiled(ctx *Context, con *tree.Container, width, height resizeAmount) Results {
	if width.amount != 0 {
		if width.unit == unitPpt || width.unit == unitDefault {
			reference := con.Workspace.Width
			for parent := con.Parent; parent != nil; parent = parent.Parent {
				if parent.Layout == tree.LayoutHoriz {
					reference = parent.Width
					break
				}
			}
			width.amount = pptToPixels(width.amount, reference)
			width.unit = unitPx
		}
		containerResizeTiled(con, axisHorizontal, width.amount-con.Width)
	}

	if height.amount != 0 {
		if height.unit == unitPpt || height.unit == unitDefault {
			reference := con.Workspace.Height
			for parent := con.Parent; parent != nil; parent = parent.Parent {
				if parent.Layout == tree.LayoutVert {
					reference = parent.Height
					break
				}
			}
			height.amount = pptToPixels(height.amount, reference)
			height.unit = unitPx
		}
		containerResizeTiled(con, axisVertical, height.amount-con.Height)
	}

	return ok()
}

// resizeSetFloating implements `resize set` for a floating container:
// normalize both targets to pixels and reject bad units first, then clamp
// and apply once, so a failed command leaves the geometry untouched.
func resizeSetFloating(ctx *Context, con *tree.Container, width, height resizeAmount) Results {
	minW, maxW, minH, maxH := ctx.Root.FloatingConstraints(ctx.limits())

	targetWidth, targetHeight := con.Width, con.Height
	if width.amount != 0 {
		target := width.amount
		if width.unit == unitPpt {
			if con.IsScratchpadHidden() {
				return failf("Cannot resize a hidden scratchpad container by ppt")
			}
			target = pptToPixels(width.amount, con.Workspace.Width)
		}
		targetWidth = clampInt(target, minW, maxW)
	}
	if height.amount != 0 {
		target := height.amount
		if height.unit == unitPpt {
			if con.IsScratchpadHidden() {
				return failf("Cannot resize a hidden scratchpad container by ppt")
			}
			target = pptToPixels(height.amount, con.Workspace.Height)
		}
		targetHeight = clampInt(target, minH, maxH)
	}

	growWidth := targetWidth - con.Width
	growHeight := targetHeight - con.Height
	con.X -= growWidth / 2
	con.Y -= growHeight / 2
	con.Width = targetWidth
	con.Height = targetHeight

	con.ContentX -= growWidth / 2
	con.ContentY -= growHeight / 2
	con.ContentWidth += growWidth
	con.ContentHeight += growHeight

	tree.ArrangeContainer(con)
	return ok()
}

// ---------------------------------------------------------------------------
// Command surface
// ---------------------------------------------------------------------------

const usageResizeSet = "Expected 'resize set [width] <width> [px|ppt]' or " +
	"'resize set height <height> [px|ppt]' or " +
	"'resize set [width] <width> [px|ppt] [height] <height> [px|ppt]'"

const usageResizeAdjust = "Expected 'resize grow|shrink <direction> " +
	"[<amount> px|ppt [or <amount> px|ppt]]'"

// cmdResizeSet parses `resize set <args>`.
//
// args: [width] <width> [px|ppt]
//     : height <height> [px|ppt]
//     : [width] <width> [px|ppt] [height] <height> [px|ppt]
func cmdResizeSet(ctx *Context, args []string) Results {
	if res, okArgs := checkArgAtLeast("resize set", args, 1); !okArgs {
		return res
	}

	// Width
	var width resizeAmount
	if len(args) >= 2 && strings.EqualFold(args[0], "width") &&
		!strings.EqualFold(args[1], "height") {
		args = args[1:]
	}
	if !strings.EqualFold(args[0], "height") {
		var consumed int
		width, consumed = parseResizeAmount(args)
		args = args[consumed:]
		if width.unit == unitInvalid {
			return invalidf(usageResizeSet)
		}
	}

	// Height
	var height resizeAmount
	if len(args) > 0 {
		if len(args) >= 2 && strings.EqualFold(args[0], "height") {
			args = args[1:]
		}
		var consumed int
		height, consumed = parseResizeAmount(args)
		if len(args) > consumed {
			return invalidf(usageResizeSet)
		}
		if height.unit == unitInvalid {
			return invalidf(usageResizeSet)
		}
	}

	// A zero or absent amount leaves that dimension unchanged.
	con := ctx.Focused
	if width.amount <= 0 {
		width = resizeAmount{amount: con.Width, unit: unitPx}
	}
	if height.amount <= 0 {
		height = resizeAmount{amount: con.Height, unit: unitPx}
	}

	if con.IsFloating() {
		return resizeSetFloating(ctx, con, width, height)
	}
	return resizeSetTiled(ctx, con, width, height)
}

// cmdResizeAdjust parses `resize grow|shrink <args>`.
//
// args: <direction>
// args: <direction> <amount> <unit>
// args: <direction> <amount> <unit> or <amount> <other_unit>
func cmdResizeAdjust(ctx *Context, args []string, multiplier int) Results {
	axis := parseResizeAxis(args[0])
	if axis == edgeNone {
		return invalidf(usageResizeAdjust)
	}
	args = args[1:]

	// First amount
	first := resizeAmount{amount: defaultAdjustAmount, unit: unitDefault}
	if len(args) > 0 {
		var consumed int
		first, consumed = parseResizeAmount(args)
		args = args[consumed:]
		if first.unit == unitInvalid {
			return invalidf(usageResizeAdjust)
		}
	}

	// "or"
	if len(args) > 0 {
		if !strings.EqualFold(args[0], "or") {
			return invalidf(usageResizeAdjust)
		}
		args = args[1:]
	}

	// Second amount
	second := resizeAmount{unit: unitInvalid}
	if len(args) > 0 {
		var consumed int
		second, consumed = parseResizeAmount(args)
		if len(args) > consumed {
			return invalidf(usageResizeAdjust)
		}
		if second.unit == unitInvalid {
			return invalidf(usageResizeAdjust)
		}
	}

	first.amount *= multiplier
	second.amount *= multiplier

	if ctx.Focused.IsFloating() {
		// Floating containers only resize in px. Prefer an explicit px
		// amount, fall back to one with no unit.
		switch {
		case first.unit == unitPx:
			return resizeAdjustFloating(ctx, axis, first)
		case second.unit == unitPx:
			return resizeAdjustFloating(ctx, axis, second)
		case first.unit == unitDefault:
			return resizeAdjustFloating(ctx, axis, first)
		case second.unit == unitDefault:
			return resizeAdjustFloating(ctx, axis, second)
		default:
			return failf("Floating containers cannot use ppt measurements")
		}
	}

	// For tiling, prefer ppt, then default, then whatever came first.
	switch {
	case first.unit == unitPpt:
		return resizeAdjustTiled(ctx, axis, first)
	case second.unit == unitPpt:
		return resizeAdjustTiled(ctx, axis, second)
	case first.unit == unitDefault:
		return resizeAdjustTiled(ctx, axis, first)
	case second.unit == unitDefault:
		return resizeAdjustTiled(ctx, axis, second)
	default:
		return resizeAdjustTiled(ctx, axis, first)
	}
}

// cmdResize dispatches the three resize verbs.
func cmdResize(ctx *Context, args []string) Results {
	if ctx.Focused == nil {
		return invalidf("Cannot resize nothing")
	}
	if res, okArgs := checkArgAtLeast("resize", args, 2); !okArgs {
		return res
	}

	switch strings.ToLower(args[0]) {
	case "set":
		return cmdResizeSet(ctx, args[1:])
	case "grow":
		return cmdResizeAdjust(ctx, args[1:], 1)
	case "shrink":
		return cmdResizeAdjust(ctx, args[1:], -1)
	}

	return invalidf("Expected 'resize <shrink|grow> " +
		"<width|height|up|down|left|right> [<amount>] [px|ppt]'")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
