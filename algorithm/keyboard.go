package algorithm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/mazerunner-api/game"
	"github.com/beka-birhanu/mazerunner-api/maze"
)

// ErrQuit reports that the player asked to leave the maze. The simulation
// unwinds the run and leaves its state inspectable for a final report.
var ErrQuit = errors.New("algorithm: user requested to quit")

// Keyboard reads one direction per turn from in, a line at a time: wasd for
// the absolute directions, or any name maze.ParseDirection accepts (so
// FORWARD, TURN_LEFT and friends steer relative to the heading). Unrecognized
// lines re-prompt; q, quit or end of input aborts the run with ErrQuit.
func Keyboard(in io.Reader, prompt io.Writer) game.Algorithm {
	scanner := bufio.NewScanner(in)
	return func(r game.Runner) (maze.Direction, error) {
		for {
			if prompt != nil {
				fmt.Fprintf(prompt, "%s %s> ", r.Name(), r.Heading())
			}
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return maze.None, err
				}
				return maze.None, ErrQuit
			}

			line := strings.ToLower(strings.TrimSpace(scanner.Text()))
			switch line {
			case "":
				continue
			case "q", "quit":
				return maze.None, ErrQuit
			case "w":
				return maze.Up, nil
			case "a":
				return maze.Left, nil
			case "s":
				return maze.Down, nil
			case "d":
				return maze.Right, nil
			}

			if d, err := maze.ParseDirection(line); err == nil {
				return d, nil
			}
			if prompt != nil {
				fmt.Fprintf(prompt, "unknown direction %q\n", line)
			}
		}
	}
}
