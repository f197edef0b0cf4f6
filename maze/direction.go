package maze

import (
	"errors"
	"fmt"
	"strings"
)

// AbsoluteDirection is a compass direction on the grid. The four real
// directions are ordered clockwise starting at Up; the rotation math in
// Absolute and Relative depends on that ordering.
type AbsoluteDirection int

const (
	None AbsoluteDirection = iota
	Up
	Right
	Down
	Left
)

// RelativeDirection is a direction relative to a runner's current heading.
type RelativeDirection int

const (
	Stay RelativeDirection = iota
	Forward
	Backward
	TurnLeft
	TurnRight
)

// Direction is a generic direction: either an AbsoluteDirection or a
// RelativeDirection. Anything accepting a Direction must resolve it to an
// AbsoluteDirection against a heading before consulting the maze.
type Direction interface {
	direction()
}

func (AbsoluteDirection) direction() {}
func (RelativeDirection) direction() {}

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("maze: unknown direction")

// Absolute rotates the heading d by the turn implied by r. None and Stay are
// absorbing: combining with either yields None. Values outside the two
// enumerations are programming errors and panic.
func (d AbsoluteDirection) Absolute(r RelativeDirection) AbsoluteDirection {
	if d == None || r == Stay {
		return None
	}
	if d < Up || d > Left {
		panic(fmt.Sprintf("maze: invalid absolute direction %d", int(d)))
	}

	var offset int
	switch r {
	case Forward:
		offset = 0
	case TurnRight:
		offset = 1
	case Backward:
		offset = 2
	case TurnLeft:
		offset = -1
	default:
		panic(fmt.Sprintf("maze: invalid relative direction %d", int(r)))
	}

	// Up..Left occupy 1..4, so shift into 0..3 for the modulo and back out.
	return AbsoluteDirection((int(d)-1+offset+4)%4 + 1)
}

// Relative is the inverse of Absolute: given the heading d and a target
// absolute direction o, it returns the relative direction that rotates d into
// o. None on either side yields Stay.
func (d AbsoluteDirection) Relative(o AbsoluteDirection) RelativeDirection {
	if d == None || o == None {
		return Stay
	}
	if d < Up || d > Left {
		panic(fmt.Sprintf("maze: invalid absolute direction %d", int(d)))
	}
	if o < Up || o > Left {
		panic(fmt.Sprintf("maze: invalid absolute direction %d", int(o)))
	}

	switch (int(d) - int(o) + 4) % 4 {
	case 0:
		return Forward
	case 1:
		return TurnLeft
	case 2:
		return Backward
	default:
		return TurnRight
	}
}

func (d AbsoluteDirection) String() string {
	switch d {
	case None:
		return "NONE"
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	}
	return fmt.Sprintf("AbsoluteDirection(%d)", int(d))
}

func (r RelativeDirection) String() string {
	switch r {
	case Stay:
		return "STAY"
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	}
	return fmt.Sprintf("RelativeDirection(%d)", int(r))
}

// ParseDirection maps the wire names produced by the String methods back to a
// Direction. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return None, nil
	case "UP":
		return Up, nil
	case "RIGHT":
		return Right, nil
	case "DOWN":
		return Down, nil
	case "LEFT":
		return Left, nil
	case "STAY":
		return Stay, nil
	case "FORWARD":
		return Forward, nil
	case "BACKWARD":
		return Backward, nil
	case "TURN_LEFT":
		return TurnLeft, nil
	case "TURN_RIGHT":
		return TurnRight, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
