package tree

import (
	"math"

	"github.com/rs/zerolog/log"
)

// Arrange recomputes pixel geometry for every container on the workspace
// from the fractional weights. Tiled containers are packed into the
// workspace box; floating containers keep their absolute geometry.
func Arrange(ws *Workspace) {
	arrangeChildren(ws.Layout, ws.Tiling, ws.X, ws.Y, ws.Width, ws.Height)
	for _, con := range ws.Tiling {
		ArrangeContainer(con)
	}
	for _, con := range ws.Floating {
		ArrangeContainer(con)
	}
	log.Debug().Str("workspace", ws.Name).Msg("arranged workspace")
}

// ArrangeContainer recomputes geometry for con's subtree from con's own
// box. Leaves just sync their content box.
func ArrangeContainer(con *Container) {
	if len(con.Children) == 0 {
		if !con.IsFloating() {
			con.ContentX, con.ContentY = con.X, con.Y
			con.ContentWidth, con.ContentHeight = con.Width, con.Height
		}
		return
	}
	arrangeChildren(con.Layout, con.Children, con.X, con.Y, con.Width, con.Height)
	for _, child := range con.Children {
		ArrangeContainer(child)
	}
}

func arrangeChildren(layout Layout, children []*Container, x, y, width, height int) {
	if layout == LayoutVert {
		applyVert(children, x, y, width, height)
		return
	}
	// LayoutNone packs horizontally too.
	applyHoriz(children, x, y, width, height)
}

func applyHoriz(children []*Container, x, y, width, height int) {
	total := seedFractions(children, func(c *Container) *float64 { return &c.WidthFraction })
	used := 0
	for i, c := range children {
		c.X = x + used
		c.Y = y
		c.Height = height
		if i == len(children)-1 {
			c.Width = width - used
		} else {
			c.Width = int(math.Round(float64(width) * c.WidthFraction / total))
		}
		if c.Width < 0 {
			c.Width = 0
		}
		used += c.Width
	}
}

func applyVert(children []*Container, x, y, width, height int) {
	total := seedFractions(children, func(c *Container) *float64 { return &c.HeightFraction })
	used := 0
	for i, c := range children {
		c.X = x
		c.Y = y + used
		c.Width = width
		if i == len(children)-1 {
			c.Height = height - used
		} else {
			c.Height = int(math.Round(float64(height) * c.HeightFraction / total))
		}
		if c.Height < 0 {
			c.Height = 0
		}
		used += c.Height
	}
}

// seedFractions gives children that have no weight yet the average of the
// existing weights (or 1.0 when none exist) and returns the new total.
// Existing weights are never renormalized; only newcomers are touched.
func seedFractions(children []*Container, frac func(*Container) *float64) float64 {
	if len(children) == 0 {
		return 0
	}
	var total float64
	seeded := 0
	for _, c := range children {
		if f := *frac(c); f > 0 {
			total += f
			seeded++
		}
	}
	if seeded < len(children) {
		share := 1.0
		if seeded > 0 {
			share = total / float64(seeded)
		}
		for _, c := range children {
			if *frac(c) <= 0 {
				*frac(c) = share
				total += share
			}
		}
	}
	return total
}
