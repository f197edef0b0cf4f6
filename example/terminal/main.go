// Command terminal runs a maze in the console, redrawing the board every
// tick. Try:
//
//	go run ./example/terminal -width 12 -height 8 -algorithm multi-me
//	go run ./example/terminal -algorithm keyboard
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/mazerunner-api/algorithm"
	"github.com/beka-birhanu/mazerunner-api/game"
	"github.com/beka-birhanu/mazerunner-api/maze"
)

var solvers = map[string]func() game.Algorithm{
	"wall-follower-right": func() game.Algorithm { return algorithm.WallFollower(algorithm.RightHand) },
	"wall-follower-left":  func() game.Algorithm { return algorithm.WallFollower(algorithm.LeftHand) },
	"multi-me":            algorithm.MultiMe,
}

func main() {
	width := flag.Int("width", 10, "maze width in cells")
	height := flag.Int("height", 10, "maze height in cells")
	seed := flag.Int64("seed", time.Now().UnixNano(), "maze seed, same seed same maze")
	solverName := flag.String("algorithm", "wall-follower-right", "wall-follower-right, wall-follower-left, multi-me or keyboard")
	delay := flag.Duration("delay", 100*time.Millisecond, "pause between ticks")
	flag.Parse()

	mz, err := maze.New(*width, *height, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sim, err := game.NewSimulation(&game.Config{Grid: mz})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	interactive := *solverName == "keyboard"
	var decide game.Algorithm
	if interactive {
		decide = algorithm.Keyboard(os.Stdin, os.Stdout)
	} else {
		newSolver, ok := solvers[*solverName]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown algorithm %q\n", *solverName)
			os.Exit(1)
		}
		decide = newSolver()
	}

	board := frame(mz, sim)
	fmt.Println(board)
	for {
		done, err := sim.Tick(decide)
		if errors.Is(err, algorithm.ErrQuit) {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		board = frame(mz, sim)
		if interactive {
			fmt.Println(board)
		} else {
			// Rewind the cursor over the previous frame and overwrite it.
			fmt.Printf("\033[%dA%s\n", strings.Count(board, "\n")+1, board)
			time.Sleep(*delay)
		}

		if done {
			break
		}
	}

	fmt.Printf("%s after %d ticks", sim.Status(), sim.Ticks())
	if winner, ok := sim.Winner(); ok {
		fmt.Printf(", won by %s", winner.Name())
	}
	if crashed := sim.Crashed(); len(crashed) > 0 {
		names := make([]string, len(crashed))
		for i, r := range crashed {
			names[i] = r.Name()
		}
		fmt.Printf(", crashed: %s", strings.Join(names, ", "))
	}
	fmt.Println()
}

// frame overlays every runner's glyph on the maze drawing.
func frame(mz *maze.Maze, sim *game.Simulation) string {
	rows := strings.Split(mz.String(), "\n")
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}

	for _, r := range sim.Active() {
		at := r.CharPosition()
		if at.Y < 0 || at.Y >= len(grid) || at.X < 0 || at.X >= len(grid[at.Y]) {
			continue
		}
		grid[at.Y][at.X] = []rune(r.Display())[0]
	}

	out := make([]string, len(grid))
	for y, row := range grid {
		out[y] = string(row)
	}
	return strings.Join(out, "\n")
}
