package game

import (
	"fmt"

	"github.com/beka-birhanu/mazerunner-api/maze"
)

// Algorithm decides one move for one runner. It is called once per active
// runner per tick and may call back into the runner's Clone during its own
// invocation. A non-nil error aborts the whole run (the user-requested-quit
// path); the simulation state stays inspectable afterwards.
type Algorithm func(Runner) (maze.Direction, error)

// Status is the overall outcome of a simulation.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusCrashed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusWon:
		return "WON"
	case StatusCrashed:
		return "CRASHED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

const defaultRootName = "Runner0000"

// Simulation owns the maze and the runner population and drives them tick by
// tick. It is single-threaded by design: all state is mutated only from Tick,
// and a blocking decision function simply blocks the tick.
type Simulation struct {
	grid     Grid
	runners  []*runner
	crashed  []*runner
	pending  []*runner
	winner   *runner
	cloneSeq int
	ticks    int
}

// Config holds the settings for creating a Simulation.
type Config struct {
	Grid Grid

	// RootName optionally names the first runner.
	RootName string
}

// NewSimulation creates a simulation with a single runner at the maze start.
// The root runner faces right, mirroring the fixed left-edge start. On a 1x1
// maze the start is the end and the run is won at tick zero, before any
// decision function is consulted.
func NewSimulation(c *Config) (*Simulation, error) {
	if c == nil || c.Grid == nil {
		return nil, ErrNilGrid
	}

	name := c.RootName
	if name == "" {
		name = defaultRootName
	}

	s := &Simulation{grid: c.Grid}
	root := &runner{
		owner:          s,
		name:           name,
		position:       c.Grid.Start(),
		heading:        maze.Right,
		initialHeading: maze.Right,
		bornAtIndex:    -1,
	}
	s.runners = append(s.runners, root)
	if root.position == c.Grid.End() {
		s.winner = root
	}
	return s, nil
}

// Tick gives every active runner one turn. Runners that attempt a blocked
// move crash and take no further turns; clones requested during a turn join
// the end of the line and still act within this tick; a runner reaching the
// end wins and ends the tick immediately. The returned bool reports whether
// the run is over (won or everyone crashed). An error from the decision
// function or an invalid direction aborts the tick and propagates.
func (s *Simulation) Tick(decide Algorithm) (bool, error) {
	if s.winner != nil || len(s.runners) == 0 {
		return true, nil
	}
	s.ticks++

	i := 0
	for i < len(s.runners) {
		r := s.runners[i]

		direction, err := decide(r)
		if err != nil {
			s.flushPending()
			return false, err
		}

		moved, err := r.move(direction)
		s.flushPending()
		if err != nil {
			return false, err
		}

		if !moved {
			// The next runner shifts into the freed slot, so the index stays.
			s.crashed = append(s.crashed, r)
			s.runners = append(s.runners[:i], s.runners[i+1:]...)
			continue
		}
		i++

		if r.position == s.grid.End() {
			s.winner = r
			return true, nil
		}
	}
	return len(s.runners) == 0, nil
}

// Run ticks until the maze is won, every runner has crashed, or the decision
// function aborts the run.
func (s *Simulation) Run(decide Algorithm) (Status, error) {
	for {
		done, err := s.Tick(decide)
		if err != nil {
			return s.Status(), err
		}
		if done {
			return s.Status(), nil
		}
	}
}

// requestClone buffers a copy of parent for insertion after the current
// move resolves, keeping the runner list stable while it is being iterated.
func (s *Simulation) requestClone(parent *runner, direction maze.Direction, name string) error {
	if len(s.runners)+len(s.pending) >= s.grid.CellCount() {
		return ErrTooManyRunners
	}

	heading, err := parent.resolveAbsolute(direction)
	if err != nil {
		return err
	}

	if name == "" {
		s.cloneSeq++
		name = fmt.Sprintf("Runner%04d", s.cloneSeq)
	}

	past := make([]maze.Point, len(parent.past))
	copy(past, parent.past)
	s.pending = append(s.pending, &runner{
		owner:          s,
		name:           name,
		position:       parent.position,
		heading:        heading,
		initialHeading: heading,
		past:           past,
		bornAtIndex:    len(parent.past),
	})
	return nil
}

func (s *Simulation) flushPending() {
	if len(s.pending) == 0 {
		return
	}
	s.runners = append(s.runners, s.pending...)
	s.pending = s.pending[:0]
}

// Ticks returns how many ticks have started.
func (s *Simulation) Ticks() int { return s.ticks }

// Status reports the overall outcome so far.
func (s *Simulation) Status() Status {
	switch {
	case s.winner != nil:
		return StatusWon
	case len(s.runners) == 0:
		return StatusCrashed
	default:
		return StatusRunning
	}
}

// Winner returns the winning runner, if the maze has been solved.
func (s *Simulation) Winner() (Runner, bool) {
	if s.winner == nil {
		return nil, false
	}
	return s.winner, true
}

// Active returns the runners still in the maze.
func (s *Simulation) Active() []Runner {
	out := make([]Runner, len(s.runners))
	for i, r := range s.runners {
		out[i] = r
	}
	return out
}

// Crashed returns the runners that have run into a wall, in crash order.
func (s *Simulation) Crashed() []Runner {
	out := make([]Runner, len(s.crashed))
	for i, r := range s.crashed {
		out[i] = r
	}
	return out
}

// Grid returns the maze being run.
func (s *Simulation) Grid() Grid { return s.grid }
