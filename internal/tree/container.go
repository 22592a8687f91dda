// Package tree holds the layout tree: workspaces, containers and the
// arrange pass that turns fractional weights into pixel geometry.
package tree

// Layout describes how a container (or workspace) splits its children.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutHoriz
	LayoutVert
)

func (l Layout) String() string {
	switch l {
	case LayoutHoriz:
		return "splith"
	case LayoutVert:
		return "splitv"
	default:
		return "none"
	}
}

// Container is a node in the layout tree. Leaves are panes; interior nodes
// are splits. A container is owned by its parent's Children slice (or by a
// workspace list for top-level containers); Parent and Workspace are
// navigation-only back references.
type Container struct {
	ID    int
	Title string

	Layout    Layout
	Parent    *Container
	Children  []*Container
	Workspace *Workspace

	// Geometry in virtual pixels, written by the arrange pass and, for
	// floating containers, by the resize engine directly.
	X, Y          int
	Width, Height int

	// Fractional share of the parent's space along its split axis.
	// Meaningful only among siblings under a matching split layout.
	WidthFraction  float64
	HeightFraction float64

	// Content box. Tracked separately so floating resize can move both.
	ContentX, ContentY          int
	ContentWidth, ContentHeight int

	// Scratchpad marks containers owned by the scratchpad. A scratchpad
	// container with no workspace is hidden.
	Scratchpad bool
}

var nextContainerID int

// NewContainer creates a detached leaf container.
func NewContainer(title string) *Container {
	nextContainerID++
	return &Container{ID: nextContainerID, Title: title}
}

// Siblings returns the ordered list the container shares space with: its
// parent's children, or the workspace list holding it. Hidden scratchpad
// containers have no siblings.
func (c *Container) Siblings() []*Container {
	if c.Parent != nil {
		return c.Parent.Children
	}
	if c.IsScratchpadHidden() || c.Workspace == nil {
		return nil
	}
	if indexOf(c.Workspace.Tiling, c) != -1 {
		return c.Workspace.Tiling
	}
	return c.Workspace.Floating
}

// SiblingIndex returns the container's position among its siblings, or -1.
func (c *Container) SiblingIndex() int {
	return indexOf(c.Siblings(), c)
}

// ParentLayout returns the split layout of whatever owns the container.
func (c *Container) ParentLayout() Layout {
	if c.Parent != nil {
		return c.Parent.Layout
	}
	if c.Workspace != nil {
		return c.Workspace.Layout
	}
	return LayoutNone
}

// IsFloating reports whether the container has absolute geometry rather
// than a tiled share. Hidden scratchpad containers count as floating.
func (c *Container) IsFloating() bool {
	if c.Parent == nil && c.Workspace != nil &&
		indexOf(c.Workspace.Floating, c) != -1 {
		return true
	}
	return c.IsScratchpadHidden()
}

// IsScratchpadHidden reports whether the container is stashed in the
// scratchpad with no visible workspace.
func (c *Container) IsScratchpadHidden() bool {
	return c.Scratchpad && c.Workspace == nil
}

// Detach removes the container from whatever list owns it. The workspace
// back reference is left for the caller to update.
func (c *Container) Detach() {
	if c.Parent != nil {
		c.Parent.Children = remove(c.Parent.Children, c)
		c.Parent = nil
		return
	}
	if c.Workspace != nil {
		c.Workspace.Tiling = remove(c.Workspace.Tiling, c)
		c.Workspace.Floating = remove(c.Workspace.Floating, c)
	}
}

// InsertSibling places con next to ref under the same owner.
// offset 0 inserts before ref, 1 after.
func InsertSibling(ref, con *Container, offset int) {
	con.Parent = ref.Parent
	setWorkspace(con, ref.Workspace)
	if ref.Parent != nil {
		i := indexOf(ref.Parent.Children, ref)
		ref.Parent.Children = insertAt(ref.Parent.Children, i+offset, con)
		return
	}
	ws := ref.Workspace
	if i := indexOf(ws.Tiling, ref); i != -1 {
		ws.Tiling = insertAt(ws.Tiling, i+offset, con)
	} else if i := indexOf(ws.Floating, ref); i != -1 {
		ws.Floating = insertAt(ws.Floating, i+offset, con)
	}
}

// Split inserts a new split container of the given layout in con's place
// and reparents con under it. Returns the new split.
func Split(con *Container, layout Layout) *Container {
	split := NewContainer("")
	split.Layout = layout
	split.Parent = con.Parent
	split.Workspace = con.Workspace
	split.X, split.Y = con.X, con.Y
	split.Width, split.Height = con.Width, con.Height
	split.WidthFraction = con.WidthFraction
	split.HeightFraction = con.HeightFraction

	if con.Parent != nil {
		replace(con.Parent.Children, con, split)
	} else if ws := con.Workspace; ws != nil {
		replace(ws.Tiling, con, split)
		replace(ws.Floating, con, split)
	}

	con.Parent = split
	con.WidthFraction = 0
	con.HeightFraction = 0
	split.Children = []*Container{con}
	return split
}

// ReapEmpty walks upward from con removing split containers that lost all
// children and flattening splits left with exactly one child.
func ReapEmpty(con *Container) {
	for con != nil {
		next := con.Parent
		switch {
		case len(con.Children) == 0 && con.Layout != LayoutNone:
			con.Detach()
		case len(con.Children) == 1 && con.Layout != LayoutNone:
			flatten(con)
		}
		con = next
	}
}

// flatten replaces a single-child split with its child, inheriting the
// split's fractional share.
func flatten(split *Container) {
	child := split.Children[0]
	child.WidthFraction = split.WidthFraction
	child.HeightFraction = split.HeightFraction
	child.Parent = split.Parent
	setWorkspace(child, split.Workspace)
	if split.Parent != nil {
		replace(split.Parent.Children, split, child)
	} else if ws := split.Workspace; ws != nil {
		replace(ws.Tiling, split, child)
		replace(ws.Floating, split, child)
	}
	split.Children = nil
	split.Parent = nil
	split.Workspace = nil
}

// setWorkspace updates the workspace back reference for a whole subtree.
func setWorkspace(con *Container, ws *Workspace) {
	con.Workspace = ws
	for _, child := range con.Children {
		setWorkspace(child, ws)
	}
}

func indexOf(list []*Container, con *Container) int {
	for i, c := range list {
		if c == con {
			return i
		}
	}
	return -1
}

func remove(list []*Container, con *Container) []*Container {
	i := indexOf(list, con)
	if i == -1 {
		return list
	}
	return append(list[:i], list[i+1:]...)
}

func insertAt(list []*Container, i int, con *Container) []*Container {
	if i < 0 {
		i = 0
	}
	if i > len(list) {
		i = len(list)
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = con
	return list
}

// replace swaps old for new in place, if present.
func replace(list []*Container, old, new *Container) {
	if i := indexOf(list, old); i != -1 {
		list[i] = new
	}
}
