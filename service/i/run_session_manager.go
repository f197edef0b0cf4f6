package i

import (
	"github.com/google/uuid"
)

// RunnerState is the public view of one runner inside a session.
type RunnerState struct {
	Name    string
	X       int
	Y       int
	Heading string
	Display string
}

// RunSnapshot is a point-in-time view of a run session.
type RunSnapshot struct {
	ID       uuid.UUID
	Width    int
	Height   int
	Seed     int64
	Rendered string
	Ticks    int
	Status   string
	Winner   string
	Active   []RunnerState
	Crashed  []RunnerState
}

// RunSessionManager owns the live maze runs. Sessions are in-memory and die
// with the process; only winning solve times outlive them, via the
// leaderboard.
type RunSessionManager interface {
	// NewSession generates a maze and places a single runner at its start.
	NewSession(ownerID uuid.UUID, ownerName string, width, height int, seed int64) (*RunSnapshot, error)

	// Snapshot returns the current state of a session.
	Snapshot(sessionID uuid.UUID) (*RunSnapshot, error)

	// Step advances the session one tick, steering every active runner in the
	// named direction (absolute or relative).
	Step(sessionID uuid.UUID, direction string) (*RunSnapshot, error)

	// Solve runs the named algorithm until the session is won or every runner
	// has crashed, submitting winning times to the leaderboard.
	Solve(sessionID uuid.UUID, algorithm string) (*RunSnapshot, error)

	// EndSession discards a session.
	EndSession(sessionID uuid.UUID) error
}
