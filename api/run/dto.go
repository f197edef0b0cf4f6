// Package runapi provides structures and utilities for managing maze run requests and responses.
package runapi

// NewRunRequest asks for a fresh maze run. Zero width or height fall back to
// the server default; the seed makes the maze reproducible and names it on
// the leaderboard.
type NewRunRequest struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
}

// StepRequest steers every active runner for one tick.
type StepRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// SolveRequest hands the run over to a named algorithm.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// RunnerResponse describes one runner inside a run.
type RunnerResponse struct {
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
	Display string `json:"display"`
}

// RunResponse is the full state of a run.
type RunResponse struct {
	ID       string           `json:"id"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Seed     int64            `json:"seed"`
	Ticks    int              `json:"ticks"`
	Status   string           `json:"status"`
	Winner   string           `json:"winner,omitempty"`
	Rendered string           `json:"rendered"`
	Active   []RunnerResponse `json:"active"`
	Crashed  []RunnerResponse `json:"crashed"`
}

// LeaderboardEntry is one row of a maze's leaderboard.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Ticks    int64  `json:"ticks"`
}
