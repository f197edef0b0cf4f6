package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/mazerunner-api/maze"
	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always draws 0, which forces single-row mazes into a plain
// left-to-right corridor.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type submission struct {
	key      string
	username string
	ticks    int64
}

type fakeLeaderboard struct {
	submissions []submission
}

func (f *fakeLeaderboard) SubmitSolve(_ context.Context, mazeKey, username string, ticks int64) (bool, error) {
	f.submissions = append(f.submissions, submission{key: mazeKey, username: username, ticks: ticks})
	return true, nil
}

func (f *fakeLeaderboard) Top(context.Context, string, int64) ([]i.SolveRecord, error) {
	return nil, nil
}

func newTestManager(t *testing.T, factory func(int, int, int64) (*maze.Maze, error)) (*RunSessionManager, *fakeLeaderboard) {
	t.Helper()
	board := &fakeLeaderboard{}
	manager, err := NewRunSessionManager(&RunSessionConfig{
		MazeFactory: factory,
		Leaderboard: board,
		Logger:      log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return manager, board
}

// corridorFactory ignores the seed and builds a straight single-row corridor.
func corridorFactory(width, _ int, _ int64) (*maze.Maze, error) {
	return maze.New(width, 1, zeroRand{})
}

func TestNewSessionRejectsOversizedMazes(t *testing.T) {
	manager, _ := newTestManager(t, nil)

	_, err := manager.NewSession(uuid.New(), "wall_hugger", maxMazeSize+1, 5, 7)
	assert.Error(t, err)
}

func TestStepToVictory(t *testing.T) {
	manager, board := newTestManager(t, corridorFactory)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", snap.Status)
	require.Len(t, snap.Active, 1)
	assert.Equal(t, "Runner0000", snap.Active[0].Name)

	snap, err = manager.Step(snap.ID, "right")
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", snap.Status)
	assert.Equal(t, 1, snap.Active[0].X)

	snap, err = manager.Step(snap.ID, "right")
	require.NoError(t, err)
	assert.Equal(t, "WON", snap.Status)
	assert.Equal(t, "Runner0000", snap.Winner)
	assert.Equal(t, 2, snap.Ticks)

	require.Len(t, board.submissions, 1)
	assert.Equal(t, submission{key: "3x1:7", username: "wall_hugger", ticks: 2}, board.submissions[0])
}

func TestStepIntoWallCrashes(t *testing.T) {
	manager, board := newTestManager(t, corridorFactory)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)

	snap, err = manager.Step(snap.ID, "up")
	require.NoError(t, err)
	assert.Equal(t, "CRASHED", snap.Status)
	assert.Empty(t, snap.Active)
	require.Len(t, snap.Crashed, 1)
	assert.Equal(t, "Runner0000", snap.Crashed[0].Name)
	assert.Empty(t, board.submissions)

	_, err = manager.Step(snap.ID, "right")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestStepRejectsUnknownDirections(t *testing.T) {
	manager, _ := newTestManager(t, corridorFactory)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)

	_, err = manager.Step(snap.ID, "sideways")
	assert.ErrorIs(t, err, maze.ErrUnknownDirection)
}

func TestSolveWithWallFollower(t *testing.T) {
	manager, board := newTestManager(t, nil)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 6, 5, 42)
	require.NoError(t, err)

	snap, err = manager.Solve(snap.ID, "wall-follower-right")
	require.NoError(t, err)
	assert.Equal(t, "WON", snap.Status)

	require.Len(t, board.submissions, 1)
	assert.Equal(t, "6x5:42", board.submissions[0].key)
	assert.Equal(t, int64(snap.Ticks), board.submissions[0].ticks)

	_, err = manager.Solve(snap.ID, "wall-follower-right")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestSolveRejectsUnknownAlgorithms(t *testing.T) {
	manager, _ := newTestManager(t, corridorFactory)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)

	_, err = manager.Solve(snap.ID, "dig-through-walls")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSessionLookup(t *testing.T) {
	manager, _ := newTestManager(t, corridorFactory)

	_, err := manager.Snapshot(uuid.New())
	assert.ErrorIs(t, err, ErrNoSession)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)

	require.NoError(t, manager.EndSession(snap.ID))
	_, err = manager.Snapshot(snap.ID)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, manager.EndSession(snap.ID), ErrNoSession)
}

func TestRenderedSnapshotShowsTheRunner(t *testing.T) {
	manager, _ := newTestManager(t, corridorFactory)

	snap, err := manager.NewSession(uuid.New(), "wall_hugger", 3, 1, 7)
	require.NoError(t, err)

	assert.Contains(t, snap.Rendered, "▶")
}
