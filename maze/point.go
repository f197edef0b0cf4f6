package maze

import "fmt"

// Point is a 2d position in the maze grid. The origin is the top-left cell;
// x grows to the right and y grows downward.
type Point struct {
	X int
	Y int
}

// Above returns the point directly above p.
func (p Point) Above() Point {
	return Point{X: p.X, Y: p.Y - 1}
}

// Below returns the point directly below p.
func (p Point) Below() Point {
	return Point{X: p.X, Y: p.Y + 1}
}

// Left returns the point directly left of p.
func (p Point) Left() Point {
	return Point{X: p.X - 1, Y: p.Y}
}

// Right returns the point directly right of p.
func (p Point) Right() Point {
	return Point{X: p.X + 1, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
