package npc

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeusync/arenabot/internal/core/arena"
)

var (
	// ErrSense marks a failed state fetch or radar scan. It is fatal to the
	// task that hit it.
	ErrSense = errors.New("npc: sense failed")
	// ErrCommand marks a failed velocity or fire command. The cycle is lost
	// but the task keeps running.
	ErrCommand = errors.New("npc: command failed")
)

// Snapshot is what one cycle perceives: the bot itself plus a single-use scan.
type Snapshot struct {
	Self    arena.SelfState
	Objects arena.Scan
}

// Sense fetches a fresh snapshot. Nothing is cached between cycles.
func Sense(ctx context.Context, a arena.Arena) (Snapshot, error) {
	self, err := a.FetchSelfState(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: fetch self state: %w", ErrSense, err)
	}
	objects, err := a.ScanEnvironment(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: radar scan: %w", ErrSense, err)
	}
	return Snapshot{Self: self, Objects: objects}, nil
}
