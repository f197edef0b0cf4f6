package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/beka-birhanu/mazerunner-api/algorithm"
	"github.com/beka-birhanu/mazerunner-api/config"
	"github.com/beka-birhanu/mazerunner-api/game"
	"github.com/beka-birhanu/mazerunner-api/maze"
	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeSize = 10
	maxMazeSize     = 50

	leaderboardTimeout = 2 * time.Second
)

var (
	// ErrNoSession is returned when a session ID is unknown.
	ErrNoSession = errors.New("no such session")

	// ErrUnknownAlgorithm is returned for solve requests naming an
	// unregistered algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrSessionOver is returned for step and solve requests against a
	// session that has already been won or fully crashed.
	ErrSessionOver = errors.New("session already over")
)

type runSession struct {
	ownerID   uuid.UUID
	ownerName string
	maze      *maze.Maze
	sim       *game.Simulation
	seed      int64
}

// RunSessionManager keeps the live maze runs in memory, keyed by session ID.
type RunSessionManager struct {
	sessions    map[uuid.UUID]*runSession
	mazeFactory func(width, height int, seed int64) (*maze.Maze, error)
	algorithms  map[string]func() game.Algorithm
	leaderboard i.Leaderboard
	logger      *log.Logger
	sync.RWMutex
}

// RunSessionConfig holds the settings for creating a RunSessionManager.
type RunSessionConfig struct {
	// MazeFactory optionally overrides maze generation. The default seeds
	// math/rand so a (width, height, seed) triple always yields the same maze.
	MazeFactory func(width, height int, seed int64) (*maze.Maze, error)

	Leaderboard i.Leaderboard
	Logger      *log.Logger
}

// NewRunSessionManager creates a RunSessionManager with the stock algorithm
// registry.
func NewRunSessionManager(c *RunSessionConfig) (*RunSessionManager, error) {
	if c == nil || c.Leaderboard == nil || c.Logger == nil {
		return nil, errors.New("run session manager requires a leaderboard and a logger")
	}

	factory := c.MazeFactory
	if factory == nil {
		factory = func(width, height int, seed int64) (*maze.Maze, error) {
			return maze.New(width, height, rand.New(rand.NewSource(seed)))
		}
	}

	return &RunSessionManager{
		sessions:    make(map[uuid.UUID]*runSession),
		mazeFactory: factory,
		leaderboard: c.Leaderboard,
		logger:      c.Logger,
		algorithms: map[string]func() game.Algorithm{
			"wall-follower-right": func() game.Algorithm { return algorithm.WallFollower(algorithm.RightHand) },
			"wall-follower-left":  func() game.Algorithm { return algorithm.WallFollower(algorithm.LeftHand) },
			"multi-me":            algorithm.MultiMe,
		},
	}, nil
}

// Algorithms lists the registered solver names.
func (m *RunSessionManager) Algorithms() []string {
	names := make([]string, 0, len(m.algorithms))
	for name := range m.algorithms {
		names = append(names, name)
	}
	return names
}

func (m *RunSessionManager) NewSession(ownerID uuid.UUID, ownerName string, width, height int, seed int64) (*i.RunSnapshot, error) {
	if width == 0 {
		width = defaultMazeSize
	}
	if height == 0 {
		height = defaultMazeSize
	}
	if width > maxMazeSize || height > maxMazeSize {
		return nil, fmt.Errorf("maze exceeds %dx%d", maxMazeSize, maxMazeSize)
	}

	mz, err := m.mazeFactory(width, height, seed)
	if err != nil {
		return nil, err
	}

	sim, err := game.NewSimulation(&game.Config{Grid: mz})
	if err != nil {
		return nil, err
	}

	session := &runSession{
		ownerID:   ownerID,
		ownerName: ownerName,
		maze:      mz,
		sim:       sim,
		seed:      seed,
	}

	m.Lock()
	sessionID := uuid.New()
	for {
		if _, ok := m.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}
	m.sessions[sessionID] = session
	m.Unlock()

	m.logger.Printf("%s[INFO]%s started %dx%d session %s for %s", config.LogInfoColor, config.LogColorReset, width, height, sessionID, ownerName)
	return m.snapshot(sessionID, session), nil
}

func (m *RunSessionManager) Snapshot(sessionID uuid.UUID) (*i.RunSnapshot, error) {
	m.RLock()
	defer m.RUnlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	return m.snapshot(sessionID, session), nil
}

func (m *RunSessionManager) Step(sessionID uuid.UUID, direction string) (*i.RunSnapshot, error) {
	d, err := maze.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	if session.sim.Status() != game.StatusRunning {
		return nil, ErrSessionOver
	}

	_, err = session.sim.Tick(func(game.Runner) (maze.Direction, error) { return d, nil })
	if err != nil {
		return nil, err
	}

	m.recordIfWon(session)
	return m.snapshot(sessionID, session), nil
}

func (m *RunSessionManager) Solve(sessionID uuid.UUID, algorithmName string) (*i.RunSnapshot, error) {
	newAlgorithm, ok := m.algorithms[algorithmName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithmName)
	}

	m.Lock()
	defer m.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	if session.sim.Status() != game.StatusRunning {
		return nil, ErrSessionOver
	}

	started := time.Now()
	status, err := session.sim.Run(newAlgorithm())
	if err != nil {
		return nil, err
	}
	m.logger.Printf("%s[INFO]%s session %s solved with %q in %s: %s", config.LogInfoColor, config.LogColorReset, sessionID, algorithmName, time.Since(started), status)

	m.recordIfWon(session)
	return m.snapshot(sessionID, session), nil
}

func (m *RunSessionManager) EndSession(sessionID uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return ErrNoSession
	}
	delete(m.sessions, sessionID)
	return nil
}

// recordIfWon submits a winning run to the leaderboard. Callers hold the lock.
func (m *RunSessionManager) recordIfWon(session *runSession) {
	if session.sim.Status() != game.StatusWon {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	defer cancel()

	key := mazeKey(session.maze.Width(), session.maze.Height(), session.seed)
	improved, err := m.leaderboard.SubmitSolve(ctx, key, session.ownerName, int64(session.sim.Ticks()))
	if err != nil {
		m.logger.Printf("%s[ERROR]%s submitting solve for %s: %s", config.LogErrorColor, config.LogColorReset, session.ownerName, err)
		return
	}
	if improved {
		m.logger.Printf("%s[INFO]%s new best for %s on %s: %d ticks", config.LogInfoColor, config.LogColorReset, session.ownerName, key, session.sim.Ticks())
	}
}

// mazeKey identifies a reproducible maze for leaderboard grouping.
func mazeKey(width, height int, seed int64) string {
	return fmt.Sprintf("%dx%d:%d", width, height, seed)
}

// snapshot builds the public view of a session. Callers hold at least a read
// lock.
func (m *RunSessionManager) snapshot(sessionID uuid.UUID, session *runSession) *i.RunSnapshot {
	snap := &i.RunSnapshot{
		ID:       sessionID,
		Width:    session.maze.Width(),
		Height:   session.maze.Height(),
		Seed:     session.seed,
		Rendered: renderWithRunners(session.maze, session.sim),
		Ticks:    session.sim.Ticks(),
		Status:   session.sim.Status().String(),
	}
	if winner, ok := session.sim.Winner(); ok {
		snap.Winner = winner.Name()
	}
	for _, r := range session.sim.Active() {
		snap.Active = append(snap.Active, runnerState(r))
	}
	for _, r := range session.sim.Crashed() {
		snap.Crashed = append(snap.Crashed, runnerState(r))
	}
	return snap
}

func runnerState(r game.Runner) i.RunnerState {
	return i.RunnerState{
		Name:    r.Name(),
		X:       r.Position().X,
		Y:       r.Position().Y,
		Heading: r.Heading().String(),
		Display: r.Display(),
	}
}

// renderWithRunners overlays runner glyphs on the maze drawing. A winner is
// still in the active set, sitting on the end cell.
func renderWithRunners(mz *maze.Maze, sim *game.Simulation) string {
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
