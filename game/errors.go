package game

import "errors"

// Simulation-related errors.
var (
	// ErrNilGrid indicates a Simulation was configured without a maze.
	ErrNilGrid = errors.New("game: grid must not be nil")

	// ErrInvalidDirection indicates a decision function produced a value that
	// is neither an absolute nor a relative direction. It is a contract
	// violation and aborts the run.
	ErrInvalidDirection = errors.New("game: direction is neither absolute nor relative")

	// ErrTooManyRunners indicates a clone request that would grow the
	// population beyond the number of cells in the maze. The request is
	// rejected; the run continues.
	ErrTooManyRunners = errors.New("game: more runners than cells in the maze")
)
