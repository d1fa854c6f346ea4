package sim

import (
	"context"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

var _ arena.Arena = (*Session)(nil)

// Session is one player's in-process view of a World.
type Session struct {
	world *World
	id    uint32
}

func (s *Session) ID() uint32 { return s.id }

func (s *Session) FetchSelfState(ctx context.Context) (arena.SelfState, error) {
	if err := ctx.Err(); err != nil {
		return arena.SelfState{}, err
	}
	return s.world.self(s.id)
}

func (s *Session) ScanEnvironment(ctx context.Context) (arena.Scan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objects, err := s.world.scan(s.id)
	if err != nil {
		return nil, err
	}
	return arena.NewScan(objects), nil
}

func (s *Session) SetVelocity(ctx context.Context, x, y, z float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.world.setVelocity(s.id, physics.Vec3{X: x, Y: y, Z: z})
}

func (s *Session) FireAt(ctx context.Context, angleDeg float64) (arena.ShotResult, error) {
	if err := ctx.Err(); err != nil {
		return arena.ShotResult{}, err
	}
	return s.world.fire(s.id, angleDeg)
}

// Close removes the player from the world.
func (s *Session) Close() error {
	s.world.Leave(s.id)
	return nil
}
