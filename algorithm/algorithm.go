/*
Package algorithm ships ready-made decision functions for driving maze
runners. The simulation core knows nothing about solving mazes; anything that
does lives here, supplied to game.Simulation as a game.Algorithm.
*/
package algorithm

import (
	"github.com/beka-birhanu/mazerunner-api/game"
	"github.com/beka-birhanu/mazerunner-api/maze"
)

// Replay deals out a fixed sequence of directions, one per tick. Once the
// sequence is exhausted it keeps answering None, which crashes the runner.
// Useful for recorded solutions of a known seed and for scripted tests.
func Replay(moves []maze.Direction) game.Algorithm {
	i := 0
	return func(game.Runner) (maze.Direction, error) {
		if i >= len(moves) {
			return maze.None, nil
		}
		move := moves[i]
		i++
		return move, nil
	}
}

// MultiMe has the original runner clone itself to the left and to the right
// on its very first turn; after that everyone just walks forward and hopes.
func MultiMe() game.Algorithm {
	return func(r game.Runner) (maze.Direction, error) {
		if _, born := r.BornAt(); !born && r.Age() == 1 {
			// A full maze simply means no clones today.
			_ = r.Clone(maze.TurnLeft, "Lefty")
			_ = r.Clone(maze.TurnRight, "Mr. Right")
		}
		return maze.Forward, nil
	}
}
