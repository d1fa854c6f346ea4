package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// CycleFunc is one decision cycle. A returned error is fatal to the task.
type CycleFunc func(ctx context.Context) error

// PeriodicTask repeats a cycle with a fixed delay between the end of one
// cycle and the start of the next. Cycles never overlap.
type PeriodicTask struct {
	name     string
	interval time.Duration
	cycle    CycleFunc
	cycles   atomic.Uint64
}

func NewPeriodicTask(name string, interval time.Duration, cycle CycleFunc) *PeriodicTask {
	return &PeriodicTask{name: name, interval: interval, cycle: cycle}
}

func (t *PeriodicTask) Name() string { return t.name }

// Cycles returns how many cycles completed without error.
func (t *PeriodicTask) Cycles() uint64 { return t.cycles.Load() }

// Run executes cycles until stop is raised or ctx is done, checking both only
// at the top of a cycle. The inter-cycle wait wakes early on either, so a
// raised signal is honored within one delay period. Run returns nil on a
// clean stop and the cycle's error otherwise.
func (t *PeriodicTask) Run(ctx context.Context, stop *StopSignal) error {
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		if stop.Raised() || ctx.Err() != nil {
			return nil
		}

		if err := t.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s task: %w", t.name, err)
		}
		t.cycles.Add(1)

		timer.Reset(t.interval)
		select {
		case <-timer.C:
		case <-stop.Done():
		case <-ctx.Done():
		}
	}
}
