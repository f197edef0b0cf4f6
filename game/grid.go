/*
Package game simulates runners traversing a maze. A Simulation owns the grid
and the runner population; an externally supplied decision function steers
each runner once per tick. The package does no I/O: rendering, input, and
pacing belong to the caller.
*/
package game

import "github.com/beka-birhanu/mazerunner-api/maze"

// Grid defines the view of a maze the simulation needs. *maze.Maze
// implements it.
type Grid interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// CellCount returns the total number of cells, which caps the runner
	// population.
	CellCount() int

	// Start returns the cell runners spawn in.
	Start() maze.Point

	// End returns the cell that wins the maze.
	End() maze.Point

	// CanMove reports whether the wall from position in the given direction
	// is open.
	CanMove(position maze.Point, direction maze.AbsoluteDirection) bool

	// Move translates position one cell in the given direction without
	// checking walls.
	Move(position maze.Point, direction maze.AbsoluteDirection) maze.Point
}
