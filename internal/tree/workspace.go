package tree

// Workspace is one screenful of containers: an ordered tiling list sharing
// the workspace box, plus floating containers stacked above it.
type Workspace struct {
	Name   string
	Layout Layout

	X, Y          int
	Width, Height int

	Tiling   []*Container
	Floating []*Container

	Root *Root
}

// Root is the top of the tree: the output box, its workspaces and the
// scratchpad. Containers are never owned here except via the scratchpad.
type Root struct {
	Width, Height int

	Workspaces []*Workspace
	Scratchpad []*Container

	current int
}

// NewRoot creates a root with one workspace per name, all sized to the
// given box and using the given default layout.
func NewRoot(width, height int, layout Layout, names []string) *Root {
	if len(names) == 0 {
		names = []string{"1"}
	}
	r := &Root{Width: width, Height: height}
	for _, name := range names {
		r.Workspaces = append(r.Workspaces, &Workspace{
			Name:   name,
			Layout: layout,
			Width:  width,
			Height: height,
			Root:   r,
		})
	}
	return r
}

// Resize updates the root box and every workspace box.
func (r *Root) Resize(width, height int) {
	r.Width, r.Height = width, height
	for _, ws := range r.Workspaces {
		ws.Width, ws.Height = width, height
	}
}

// CurrentWorkspace returns the visible workspace.
func (r *Root) CurrentWorkspace() *Workspace {
	return r.Workspaces[r.current]
}

// SwitchWorkspace makes the named workspace current. Unknown names are
// ignored and the current workspace is returned either way.
func (r *Root) SwitchWorkspace(name string) *Workspace {
	for i, ws := range r.Workspaces {
		if ws.Name == name {
			r.current = i
			break
		}
	}
	return r.CurrentWorkspace()
}

// AddTiling appends con to the workspace tiling list.
func (ws *Workspace) AddTiling(con *Container) {
	con.Parent = nil
	setWorkspace(con, ws)
	ws.Tiling = append(ws.Tiling, con)
}

// AddFloating appends con to the workspace floating list.
func (ws *Workspace) AddFloating(con *Container) {
	con.Parent = nil
	setWorkspace(con, ws)
	ws.Floating = append(ws.Floating, con)
}

// Descendants returns every container on the workspace in depth-first
// order, tiling before floating.
func (ws *Workspace) Descendants() []*Container {
	var out []*Container
	var walk func(c *Container)
	walk = func(c *Container) {
		out = append(out, c)
		for _, child := range c.Children {
			walk(child)
		}
	}
	for _, c := range ws.Tiling {
		walk(c)
	}
	for _, c := range ws.Floating {
		walk(c)
	}
	return out
}
