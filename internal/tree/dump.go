package tree

import (
	"fmt"
	"strings"
)

// Dump renders the workspace tree as indented text. Used by tests and
// debug logging; the format is stable.
func Dump(ws *Workspace) string {
	var b strings.Builder
	fmt.Fprintf(&b, "workspace %s %s %d,%d %dx%d\n",
		ws.Name, ws.Layout, ws.X, ws.Y, ws.Width, ws.Height)
	for _, con := range ws.Tiling {
		dumpContainer(&b, con, 1, "")
	}
	for _, con := range ws.Floating {
		dumpContainer(&b, con, 1, "float ")
	}
	return b.String()
}

func dumpContainer(b *strings.Builder, con *Container, depth int, prefix string) {
	kind := "con"
	if len(con.Children) > 0 {
		kind = con.Layout.String()
	}
	fmt.Fprintf(b, "%s%s%s %q %d,%d %dx%d wf=%.2f hf=%.2f\n",
		strings.Repeat("  ", depth), prefix, kind, con.Title,
		con.X, con.Y, con.Width, con.Height,
		con.WidthFraction, con.HeightFraction)
	for _, child := range con.Children {
		dumpContainer(b, child, depth+1, "")
	}
}
