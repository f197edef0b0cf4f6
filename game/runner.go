package game

import (
	"fmt"

	"github.com/beka-birhanu/mazerunner-api/maze"
)

// Runner is the view of a maze runner handed to decision functions. It can be
// inspected freely and can request clones, but only the owning simulation
// advances it.
type Runner interface {
	// Name returns the runner's display name.
	Name() string

	// Position returns the cell the runner currently occupies.
	Position() maze.Point

	// Heading returns the absolute direction the runner is facing.
	Heading() maze.AbsoluteDirection

	// CanMove reports whether moving in the given direction would succeed.
	// Relative directions are resolved against the current heading.
	CanMove(direction maze.Direction) (bool, error)

	// Clone requests a copy of this runner at the current position, facing
	// the given direction resolved against the current heading. An empty name
	// gets a sequential default. The clone joins the population within the
	// current tick. Returns ErrTooManyRunners when the population would
	// outgrow the maze.
	Clone(direction maze.Direction, name string) error

	// History returns every point the runner has occupied, oldest first,
	// ending with the current position. The slice is a copy.
	History() []maze.Point

	// AbsoluteHistory returns the compass direction of every move taken.
	AbsoluteHistory() []maze.AbsoluteDirection

	// RelativeHistory returns every move as a turn relative to the heading
	// the runner had before it.
	RelativeHistory() []maze.RelativeDirection

	// BornAt returns where the runner was cloned into existence. The second
	// return is false for the original runner, which was never born.
	BornAt() (maze.Point, bool)

	// Age returns the number of history entries since the runner came into
	// existence. The original runner's age exceeds the length of its own
	// past; as far as anyone can tell it has always existed.
	Age() int

	// Display returns the glyph a renderer draws for the runner, chosen by
	// heading.
	Display() string

	// CharPosition returns the character cell where Display belongs,
	// derived from Position via the maze scale factor.
	CharPosition() maze.Point
}

var headingGlyphs = map[maze.AbsoluteDirection]string{
	maze.None:  "●",
	maze.Up:    "▲",
	maze.Right: "▶",
	maze.Down:  "▼",
	maze.Left:  "◀",
}

type runner struct {
	owner    *Simulation
	name     string
	position maze.Point

	// heading reorients on every attempted move, even a blocked one; a
	// runner that crashes dies facing the wall it ran into.
	heading        maze.AbsoluteDirection
	initialHeading maze.AbsoluteDirection

	// past holds previously occupied points, oldest first, excluding the
	// current position.
	past []maze.Point

	// bornAtIndex is the index into History() where the runner was spawned,
	// or -1 for the original runner.
	bornAtIndex int
}

func (r *runner) Name() string                    { return r.name }
func (r *runner) Position() maze.Point            { return r.position }
func (r *runner) Heading() maze.AbsoluteDirection { return r.heading }

func (r *runner) CanMove(direction maze.Direction) (bool, error) {
	abs, err := r.resolveAbsolute(direction)
	if err != nil {
		return false, err
	}
	return r.owner.grid.CanMove(r.position, abs), nil
}

func (r *runner) Clone(direction maze.Direction, name string) error {
	return r.owner.requestClone(r, direction, name)
}

func (r *runner) History() []maze.Point {
	// Always a copy, so callers cannot rewrite the past.
	out := make([]maze.Point, 0, len(r.past)+1)
	out = append(out, r.past...)
	return append(out, r.position)
}

func (r *runner) AbsoluteHistory() []maze.AbsoluteDirection {
	points := r.History()
	out := make([]maze.AbsoluteDirection, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, maze.Heading(points[i-1], points[i]))
	}
	return out
}

func (r *runner) RelativeHistory() []maze.RelativeDirection {
	headings := append([]maze.AbsoluteDirection{r.initialHeading}, r.AbsoluteHistory()...)
	out := make([]maze.RelativeDirection, 0, len(headings)-1)
	for i := 1; i < len(headings); i++ {
		out = append(out, headings[i-1].Relative(headings[i]))
	}
	return out
}

func (r *runner) BornAt() (maze.Point, bool) {
	if r.bornAtIndex < 0 {
		return maze.Point{}, false
	}
	return r.History()[r.bornAtIndex], true
}

func (r *runner) Age() int {
	// The original runner has bornAtIndex -1, which makes its age one longer
	// than its entire past.
	return len(r.past) - r.bornAtIndex
}

func (r *runner) Display() string {
	return headingGlyphs[r.heading]
}

func (r *runner) CharPosition() maze.Point {
	return maze.CharPosition(r.position)
}

// move resolves the direction, reorients the runner, then attempts the move.
// Reorienting happens before the wall check: heading always reflects the last
// attempt. A false return without error means the runner ran into a wall.
func (r *runner) move(direction maze.Direction) (bool, error) {
	abs, err := r.resolveAbsolute(direction)
	if err != nil {
		return false, err
	}
	r.heading = abs
	if abs == maze.None || !r.owner.grid.CanMove(r.position, abs) {
		return false, nil
	}
	r.past = append(r.past, r.position)
	r.position = r.owner.grid.Move(r.position, abs)
	return true, nil
}

func (r *runner) resolveAbsolute(direction maze.Direction) (maze.AbsoluteDirection, error) {
	switch d := direction.(type) {
	case maze.AbsoluteDirection:
		return d, nil
	case maze.RelativeDirection:
		return r.heading.Absolute(d), nil
	case nil:
		return maze.None, ErrInvalidDirection
	default:
		return maze.None, fmt.Errorf("%w: %T", ErrInvalidDirection, direction)
	}
}
