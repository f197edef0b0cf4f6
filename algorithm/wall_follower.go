package algorithm

import (
	"github.com/beka-birhanu/mazerunner-api/game"
	"github.com/beka-birhanu/mazerunner-api/maze"
)

// Hand selects which wall a WallFollower keeps its hand on.
type Hand int

const (
	RightHand Hand = iota
	LeftHand
)

// WallFollower keeps one hand on the wall: prefer turning toward the hand,
// then straight ahead, then away, then back the way it came. A perfect maze
// is simply connected, so the follower walks every corridor at most twice
// and always reaches the end.
func WallFollower(hand Hand) game.Algorithm {
	order := []maze.RelativeDirection{maze.TurnRight, maze.Forward, maze.TurnLeft, maze.Backward}
	if hand == LeftHand {
		order = []maze.RelativeDirection{maze.TurnLeft, maze.Forward, maze.TurnRight, maze.Backward}
	}

	return func(r game.Runner) (maze.Direction, error) {
		for _, turn := range order {
			ok, err := r.CanMove(turn)
			if err != nil {
				return maze.None, err
			}
			if ok {
				return turn, nil
			}
		}
		// Walled in on all four sides: only a 1x1 maze, which is won before
		// any decision is asked for.
		return maze.None, nil
	}
}
