package i

import (
	"context"
)

// SolveRecord is one leaderboard entry: who solved a maze and in how many ticks.
type SolveRecord struct {
	Username string
	Ticks    int64
}

// Leaderboard keeps the best solve per player per maze.
type Leaderboard interface {
	// SubmitSolve records a solve if it beats the player's previous best for
	// the maze. It reports whether the record improved.
	SubmitSolve(ctx context.Context, mazeKey, username string, ticks int64) (bool, error)

	// Top returns the best solves for a maze, fastest first.
	Top(ctx context.Context, mazeKey string, n int64) ([]SolveRecord, error)
}
