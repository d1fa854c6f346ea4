package npc

import (
	"context"
	"fmt"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

// Target is the enemy picked for this cycle.
type Target struct {
	ID       uint32
	Distance float64
	Bearing  float64 // radians
}

// Shot describes what the targeting cycle did.
type Shot struct {
	Target Target
	Fired  bool
	Result arena.ShotResult
}

// Targeting picks the nearest enemy strictly inside weapon range.
type Targeting struct {
	cfg TargetingConfig
}

func NewTargeting(cfg TargetingConfig) *Targeting {
	return &Targeting{cfg: cfg}
}

func (t *Targeting) Config() TargetingConfig { return t.cfg }

// Acquire runs a running-minimum over the scan. An enemy exactly at max range
// is never chosen, and on equal distance the first one scanned wins.
func (t *Targeting) Acquire(self arena.SelfState, objects arena.Scan) (Target, bool) {
	var (
		best  Target
		found bool
	)
	if objects == nil {
		return best, false
	}

	nearest := t.cfg.MaxShootRange
	for obj := range objects {
		if !obj.IsEnemyOf(self.ID) {
			continue
		}
		d := physics.Distance(self.Position, obj.Position)
		if d < nearest {
			nearest = d
			best = Target{ID: obj.ID, Distance: d, Bearing: physics.Bearing(self.Position, obj.Position)}
			found = true
		}
	}
	return best, found
}

// Cycle senses, acquires and fires at most once. A failed shot is an outcome,
// not an error; only transport failures are returned.
func (t *Targeting) Cycle(ctx context.Context, a arena.Arena) (Shot, error) {
	snap, err := Sense(ctx, a)
	if err != nil {
		return Shot{}, err
	}

	target, ok := t.Acquire(snap.Self, snap.Objects)
	if !ok {
		return Shot{}, nil
	}

	result, err := a.FireAt(ctx, physics.Degrees(target.Bearing))
	if err != nil {
		return Shot{Target: target}, fmt.Errorf("%w: fire: %w", ErrCommand, err)
	}
	return Shot{Target: target, Fired: true, Result: result}, nil
}
