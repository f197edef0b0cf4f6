package maze

// Cell is a single cell in the maze grid. It records the set of neighboring
// points it is directly connected to; a wall on a side is simply the absence
// of the neighbor on that side from the connection set. A cell with no
// connections has not been visited by the generator yet.
type Cell struct {
	position    Point
	connections map[Point]struct{}
}

func newCell(position Point) *Cell {
	return &Cell{
		position:    position,
		connections: make(map[Point]struct{}),
	}
}

func (c *Cell) connect(to Point) {
	c.connections[to] = struct{}{}
}

// Connected reports whether the cell has at least one open wall.
func (c *Cell) Connected() bool {
	return len(c.connections) > 0
}

// ConnectedTo reports whether the wall toward target is open.
func (c *Cell) ConnectedTo(target Point) bool {
	_, ok := c.connections[target]
	return ok
}

// HasWallAbove reports whether the north wall is standing.
func (c *Cell) HasWallAbove() bool {
	return !c.ConnectedTo(c.position.Above())
}

// HasWallBelow reports whether the south wall is standing.
func (c *Cell) HasWallBelow() bool {
	return !c.ConnectedTo(c.position.Below())
}

// HasWallLeft reports whether the west wall is standing.
func (c *Cell) HasWallLeft() bool {
	return !c.ConnectedTo(c.position.Left())
}

// HasWallRight reports whether the east wall is standing.
func (c *Cell) HasWallRight() bool {
	return !c.ConnectedTo(c.position.Right())
}
