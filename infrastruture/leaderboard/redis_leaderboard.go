package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "leaderboard"

	defaultTopN int64 = 10

	// sorted set key string format, one set per maze
	mazeSetKeyFmt = "%s:maze:%s"
)

// Options configures a RedisLeaderboard.
type Options struct {
	// key prefix
	Prefix string

	// Leaderboard Logger
	Logger *log.Logger
}

// RedisLeaderboard keeps the best solve per player per maze in a sorted set,
// scored by tick count so the fastest solves rank first.
type RedisLeaderboard struct {
	// Redis client
	client *redis.Client

	// Redis lock to serialize the read-compare-write of a submit
	locker *redsync.Redsync

	opts *Options
}

// New creates a RedisLeaderboard with the provided Redis client and options.
func New(client *redis.Client, opts *Options) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("leaderboard requires a redis client")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, fmt.Sprintf("%s: ", opts.Prefix), log.LstdFlags|log.Lshortfile)
	}

	board := &RedisLeaderboard{
		client: client,
		opts:   opts,
	}
	pool := goredis.NewPool(board.client)
	board.locker = redsync.New(pool)
	return board, nil
}

// SubmitSolve records a solve if it beats the player's previous best for the
// maze. It reports whether the record improved.
func (rl *RedisLeaderboard) SubmitSolve(ctx context.Context, mazeKey, username string, ticks int64) (bool, error) {
	setKey := rl.mazeSetKey(mazeKey)
	mutex := rl.locker.NewMutex(setKey + ":submit_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return false, fmt.Errorf("obtaining submit lock: %w", err)
	}

	defer func() {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			rl.opts.Logger.Printf("error while releasing submit lock: %s", err.Error())
		}

		if !ok {
			rl.opts.Logger.Printf("error while releasing submit lock: %s", "redis eval func returned 0 while releasing")
		}
	}()

	best, err := rl.client.ZScore(ctx, setKey, username).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if err == nil && int64(best) <= ticks {
		return false, nil
	}

	if err := rl.client.ZAdd(ctx, setKey, redis.Z{
		Score:  float64(ticks),
		Member: username,
	}).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Top returns the best solves for a maze, fastest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, mazeKey string, n int64) ([]i.SolveRecord, error) {
	if n <= 0 {
		n = defaultTopN
	}

	entries, err := rl.client.ZRangeWithScores(ctx, rl.mazeSetKey(mazeKey), 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]i.SolveRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, i.SolveRecord{
			Username: fmt.Sprint(entry.Member),
			Ticks:    int64(entry.Score),
		})
	}
	return records, nil
}

func (rl *RedisLeaderboard) mazeSetKey(mazeKey string) string {
	return fmt.Sprintf(mazeSetKeyFmt, rl.opts.Prefix, mazeKey)
}
