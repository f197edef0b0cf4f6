package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/mazerunner-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationRequiresGrid(t *testing.T) {
	_, err := NewSimulation(nil)
	assert.ErrorIs(t, err, ErrNilGrid)
	_, err = NewSimulation(&Config{})
	assert.ErrorIs(t, err, ErrNilGrid)
}

func TestOneByOneMazeWinsAtTickZero(t *testing.T) {
	m, err := maze.New(1, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	s, err := NewSimulation(&Config{Grid: m})
	require.NoError(t, err)

	assert.Equal(t, StatusWon, s.Status())
	assert.Equal(t, 0, s.Ticks())

	status, err := s.Run(func(Runner) (maze.Direction, error) {
		t.Fatal("the decision function must not be consulted on a won run")
		return maze.None, nil
	})
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)

	winner, ok := s.Winner()
	require.True(t, ok)
	assert.Equal(t, "Runner0000", winner.Name())
}

func TestClonesActWithinTheSameTick(t *testing.T) {
	s := newCorridorSim(t, 5)

	var turns []string
	decide := func(r Runner) (maze.Direction, error) {
		turns = append(turns, r.Name())
		if r.Name() == "Runner0000" && r.Age() == 1 {
			require.NoError(t, r.Clone(maze.Right, "Lefty"))
			require.NoError(t, r.Clone(maze.Right, "Mr. Right"))
		}
		return maze.Right, nil
	}

	done, err := s.Tick(decide)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, []string{"Runner0000", "Lefty", "Mr. Right"}, turns,
		"both clones take a turn in the tick they were requested")
	assert.Len(t, s.Active(), 3)
	assert.Empty(t, s.Crashed())
}

func TestCloneCapacityIsTheCellCount(t *testing.T) {
	s := newCorridorSim(t, 2)

	decide := func(r Runner) (maze.Direction, error) {
		if r.Name() != "Runner0000" {
			return maze.Right, nil
		}
		require.NoError(t, r.Clone(maze.Right, "Second"))
		err := r.Clone(maze.Right, "Third")
		assert.ErrorIs(t, err, ErrTooManyRunners,
			"a third runner would outnumber the two cells")
		return maze.Right, nil
	}

	done, err := s.Tick(decide)
	require.NoError(t, err)
	assert.True(t, done, "the root reaches the end of the two-cell corridor")
	assert.Len(t, s.Active(), 2, "the rejected clone must not join")
}

func TestWinnerEndsTheTickImmediately(t *testing.T) {
	s := newCorridorSim(t, 2)

	var turns int
	decide := func(r Runner) (maze.Direction, error) {
		turns++
		if r.Name() == "Runner0000" && r.Age() == 1 {
			require.NoError(t, r.Clone(maze.Right, "Second"))
		}
		return maze.Right, nil
	}

	done, err := s.Tick(decide)
	require.NoError(t, err)
	assert.True(t, done)

	winner, ok := s.Winner()
	require.True(t, ok)
	assert.Equal(t, "Runner0000", winner.Name())
	assert.Equal(t, 1, turns, "no other runner takes a turn after the win")
	assert.Equal(t, StatusWon, s.Status())

	// The clone exists but never moved.
	require.Len(t, s.Active(), 2)
	assert.Equal(t, maze.Point{X: 0, Y: 0}, s.Active()[1].Position())
}

func TestCrashedRunnerFreesItsSlotMidTick(t *testing.T) {
	s := newCorridorSim(t, 5)

	// Tick one: the root spawns A and B.
	_, err := s.Tick(func(r Runner) (maze.Direction, error) {
		if r.Name() == "Runner0000" && r.Age() == 1 {
			require.NoError(t, r.Clone(maze.Right, "A"))
			require.NoError(t, r.Clone(maze.Right, "B"))
		}
		return maze.Right, nil
	})
	require.NoError(t, err)
	require.Len(t, s.Active(), 3)

	// Tick two: A walks into the wall; B must still get its turn.
	var turns []string
	_, err = s.Tick(func(r Runner) (maze.Direction, error) {
		turns = append(turns, r.Name())
		if r.Name() == "A" {
			return maze.Up, nil
		}
		return maze.Right, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Runner0000", "A", "B"}, turns)
	require.Len(t, s.Crashed(), 1)
	assert.Equal(t, "A", s.Crashed()[0].Name())
	assert.Len(t, s.Active(), 2)
}

func TestInvalidDirectionAbortsTheRun(t *testing.T) {
	s := newCorridorSim(t, 3)

	_, err := s.Tick(func(Runner) (maze.Direction, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrInvalidDirection)

	// The runner did not crash; the state remains inspectable.
	assert.Len(t, s.Active(), 1)
	assert.Equal(t, StatusRunning, s.Status())
}

func TestDecisionErrorUnwindsTheRun(t *testing.T) {
	s := newCorridorSim(t, 3)
	quit := errors.New("user requested to quit")

	status, err := s.Run(func(Runner) (maze.Direction, error) { return nil, quit })
	assert.ErrorIs(t, err, quit)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, 1, s.Ticks())
}

func TestRunUntilEveryoneCrashes(t *testing.T) {
	s := newCorridorSim(t, 3)

	status, err := s.Run(func(Runner) (maze.Direction, error) { return maze.Down, nil })
	require.NoError(t, err)
	assert.Equal(t, StatusCrashed, status)
	assert.Len(t, s.Crashed(), 1)
	_, ok := s.Winner()
	assert.False(t, ok)
}

func TestRunToVictory(t *testing.T) {
	s := newCorridorSim(t, 4)

	status, err := s.Run(func(Runner) (maze.Direction, error) { return maze.Forward, nil })
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
	assert.Equal(t, 3, s.Ticks())

	winner, ok := s.Winner()
	require.True(t, ok)
	assert.Equal(t, maze.Point{X: 3, Y: 0}, winner.Position())
	assert.Equal(t, []maze.RelativeDirection{maze.Forward, maze.Forward, maze.Forward}, winner.RelativeHistory())
}
