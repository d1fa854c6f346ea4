package npc

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

// Steering turns a radar snapshot into a velocity by summing potential
// fields: walls repel, boosts attract while health is critical, and enemies
// pull weakly toward engagement range.
//
// A Steering owns its random source and must only be used from one goroutine.
type Steering struct {
	cfg SteeringConfig
	rng *rand.Rand
}

// SeedFromName derives a stable exploration seed from a bot name.
func SeedFromName(name string) uint64 {
	return xxhash.Sum64String(name)
}

func NewSteering(cfg SteeringConfig, seed uint64) *Steering {
	return &Steering{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Steering) Config() SteeringConfig { return s.cfg }

// Force returns the raw field sum for one scan. Z is always zero.
func (s *Steering) Force(self arena.SelfState, objects arena.Scan) physics.Vec3 {
	var acc physics.Vec3
	if objects == nil {
		return acc
	}

	for obj := range objects {
		d := physics.Distance(self.Position, obj.Position)
		if d <= s.cfg.Epsilon {
			continue
		}
		bearing := physics.Bearing(self.Position, obj.Position)

		switch {
		case obj.Kind == arena.KindWall && d < s.cfg.WallRadius:
			acc = acc.Sub(physics.FromAngle(bearing, s.cfg.WallGain/d))
		case obj.Kind == arena.KindBoost && self.Health < s.cfg.CriticalHealth && d < s.cfg.BoostRadius:
			acc = acc.Add(physics.FromAngle(bearing, s.cfg.BoostGain/d))
		case obj.IsEnemyOf(self.ID) && d < s.cfg.EngageRange:
			acc = acc.Add(physics.FromAngle(bearing, s.cfg.EnemyGain/math.Max(d, s.cfg.EnemyStandoff)))
		}
	}

	return acc
}

// Steer returns the velocity command for one scan: the field direction scaled
// to base speed, or a random heading when no field acts on the bot.
func (s *Steering) Steer(self arena.SelfState, objects arena.Scan) physics.Vec3 {
	force := s.Force(self, objects)
	if math.Abs(force.X) < s.cfg.ZeroForce && math.Abs(force.Y) < s.cfg.ZeroForce {
		force = physics.FromAngle(s.rng.Float64()*2*math.Pi, 1)
	}
	return force.Normalize2().Scale(s.cfg.BaseSpeed)
}

// Cycle senses, steers and issues one SetVelocity command.
func (s *Steering) Cycle(ctx context.Context, a arena.Arena) (physics.Vec3, error) {
	snap, err := Sense(ctx, a)
	if err != nil {
		return physics.Vec3{}, err
	}

	velocity := s.Steer(snap.Self, snap.Objects)
	if err = a.SetVelocity(ctx, velocity.X, velocity.Y, 0); err != nil {
		return velocity, fmt.Errorf("%w: set velocity: %w", ErrCommand, err)
	}
	return velocity, nil
}
