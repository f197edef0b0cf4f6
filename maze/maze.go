/*
Package maze provides the computational core of a rectangular maze: the
direction model, the cell/wall grid, and randomized generation.

Mazes are perfect: the corridor graph produced by generation is a spanning
tree over all width x height cells, so exactly one path exists between any two
cells. Generation consumes an injected randomness source, which makes a maze
fully reproducible from a seed.

The package renders nothing itself, but exposes the wall topology (Layout,
String, CharPosition) that an external renderer needs to draw corridors.
*/
package maze

import (
	"errors"
	"fmt"
)

// Rand is the source of randomness consumed during generation. *math/rand.Rand
// satisfies it; tests may supply a scripted source to pin down a layout.
type Rand interface {
	Intn(n int) int
}

// Maze-related errors.
var (
	ErrInvalidSize = errors.New("maze: width and height must be positive")
)

// Maze is a two dimensional maze. The start cell sits on the left edge and
// the end cell on the right edge, each at a randomly drawn row.
type Maze struct {
	width  int
	height int
	start  Point
	end    Point
	cells  map[Point]*Cell
}

// New creates a maze of the given dimensions with all walls standing, then
// carves corridors with the randomized Prim's algorithm. The rng drives the
// start/end rows and every generation choice: the same source state always
// yields the same maze.
func New(width, height int, rng Rand) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	m := &Maze{
		width:  width,
		height: height,
		cells:  make(map[Point]*Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			m.cells[p] = newCell(p)
		}
	}

	// The draw order (start row, end row, then generation) is part of the
	// reproducibility contract.
	m.start = Point{X: 0, Y: rng.Intn(height)}
	m.end = Point{X: width - 1, Y: rng.Intn(height)}
	m.generate(rng)
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the entry cell on the left edge.
func (m *Maze) Start() Point { return m.start }

// End returns the exit cell on the right edge.
func (m *Maze) End() Point { return m.end }

// CellCount returns the total number of cells.
func (m *Maze) CellCount() int { return m.width * m.height }

// InBound reports whether p is a cell of the grid.
func (m *Maze) InBound(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// CanMove reports whether the wall between position and its neighbor in the
// given direction is open. Moving None, moving off the grid, or querying from
// outside the grid all report false rather than failing.
func (m *Maze) CanMove(position Point, direction AbsoluteDirection) bool {
	if direction == None {
		return false
	}
	cell, ok := m.cells[position]
	if !ok {
		return false
	}
	return cell.ConnectedTo(m.Move(position, direction))
}

// Move returns the neighboring point in the given direction, or position
// unchanged for None. It deliberately ignores walls so that callers can apply
// their own crash semantics; pair it with CanMove.
func (m *Maze) Move(position Point, direction AbsoluteDirection) Point {
	switch direction {
	case None:
		return position
	case Up:
		return position.Above()
	case Down:
		return position.Below()
	case Left:
		return position.Left()
	case Right:
		return position.Right()
	}
	panic(fmt.Sprintf("maze: invalid absolute direction %d", int(direction)))
}

// Heading infers which absolute direction takes from to the adjacent point
// to, or None when the points are not immediate neighbors.
func Heading(from, to Point) AbsoluteDirection {
	switch to {
	case from.Above():
		return Up
	case from.Below():
		return Down
	case from.Left():
		return Left
	case from.Right():
		return Right
	}
	return None
}

// ConnectedNeighbors returns the points position has open walls toward.
// The result is a copy in stable left/right/up/down order.
func (m *Maze) ConnectedNeighbors(position Point) []Point {
	cell, ok := m.cells[position]
	if !ok {
		return nil
	}
	var out []Point
	for _, p := range m.adjacent(position) {
		if cell.ConnectedTo(p) {
			out = append(out, p)
		}
	}
	return out
}

// adjacent returns the in-grid neighbors of p. The order is fixed because
// generation indexes into it with a random draw; changing it changes the maze
// produced by a given seed.
func (m *Maze) adjacent(p Point) []Point {
	out := make([]Point, 0, 4)
	if p.X > 0 {
		out = append(out, p.Left())
	}
	if p.X+1 < m.width {
		out = append(out, p.Right())
	}
	if p.Y > 0 {
		out = append(out, p.Above())
	}
	if p.Y+1 < m.height {
		out = append(out, p.Below())
	}
	return out
}

// visited reports whether p is already carved into the maze. The start cell
// counts as visited from the beginning.
func (m *Maze) visited(p Point) bool {
	return p == m.start || m.cells[p].Connected()
}

// generate carves the corridors with the randomized Prim's algorithm,
// frontier variant: keep the set of unvisited cells adjacent to the visited
// region, repeatedly pull a random frontier cell and connect it to a random
// visited neighbor. Each iteration adds exactly one spanning-tree edge, so
// the loop runs width*height-1 times and the result is connected and acyclic.
//
// Every iteration makes two independent draws, first the frontier cell and
// then the neighbor to connect to. Collapsing them into one draw would
// change the maze generated by a given seed.
func (m *Maze) generate(rng Rand) {
	frontier := make([]Point, 0, m.width*m.height)
	inFrontier := make(map[Point]struct{})
	push := func(p Point) {
		if _, ok := inFrontier[p]; ok {
			return
		}
		inFrontier[p] = struct{}{}
		frontier = append(frontier, p)
	}

	for _, p := range m.adjacent(m.start) {
		push(p)
	}

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cell := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)
		delete(inFrontier, cell)

		adjacent := m.adjacent(cell)
		connectable := make([]Point, 0, len(adjacent))
		for _, p := range adjacent {
			if m.visited(p) {
				connectable = append(connectable, p)
			}
		}

		// A frontier cell borders the visited region by construction.
		connectTo := connectable[rng.Intn(len(connectable))]
		m.cells[cell].connect(connectTo)
		m.cells[connectTo].connect(cell)

		for _, p := range adjacent {
			if !m.visited(p) {
				push(p)
			}
		}
	}
}
