package npc

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/arena/mocks"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

const selfID = 7

func selfAt(x, y float64, health uint32) arena.SelfState {
	return arena.SelfState{ID: selfID, Position: physics.V2(x, y), Health: health}
}

func wall(id uint32, x, y float64) arena.ScannedObject {
	return arena.ScannedObject{ID: id, Kind: arena.KindWall, Position: physics.V2(x, y)}
}

func boost(id uint32, x, y float64) arena.ScannedObject {
	return arena.ScannedObject{ID: id, Kind: arena.KindBoost, Position: physics.V2(x, y)}
}

func player(id uint32, x, y float64) arena.ScannedObject {
	return arena.ScannedObject{ID: id, Kind: arena.KindPlayer, Position: physics.V2(x, y)}
}

func TestSteer_NoObjectsExploresAtBaseSpeed(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 42)

	for range 20 {
		v := s.Steer(selfAt(0, 0, 100), arena.NewScan(nil))
		assert.InDelta(t, DefaultBaseSpeed, v.Length2(), 1e-9)
		assert.Zero(t, v.Z)
	}
}

func TestSteer_WallEastPushesWest(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 1)

	v := s.Steer(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{wall(1, 1, 0)}))

	assert.Less(t, v.X, 0.0)
	assert.InDelta(t, 0, v.Y, 1e-9)
	assert.InDelta(t, DefaultBaseSpeed, v.Length2(), 1e-9)
}

func TestSteer_WallOutsideRadiusIgnored(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 1)

	f := s.Force(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{wall(1, DefaultWallRadius, 0)}))

	assert.Equal(t, physics.Vec3{}, f)
}

func TestSteer_BoostOnlyWhenHealthCritical(t *testing.T) {
	objects := []arena.ScannedObject{boost(2, 10, 0)}

	low := NewSteering(DefaultSteeringConfig(), 3)
	v := low.Steer(selfAt(0, 0, 40), arena.NewScan(objects))
	assert.Greater(t, v.X, 0.0)
	assert.InDelta(t, 0, v.Y, 1e-9)

	healthy := NewSteering(DefaultSteeringConfig(), 3)
	reference := NewSteering(DefaultSteeringConfig(), 3)
	got := healthy.Steer(selfAt(0, 0, 80), arena.NewScan(objects))
	want := reference.Steer(selfAt(0, 0, 80), arena.NewScan(nil))
	assert.Equal(t, want, got, "a healthy bot should ignore the boost and explore")
}

func TestSteer_BoostForceMagnitude(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 1)

	f := s.Force(selfAt(0, 0, 10), arena.NewScan([]arena.ScannedObject{boost(2, 0, 10)}))

	assert.InDelta(t, 0, f.X, 1e-12)
	assert.InDelta(t, DefaultBoostGain/10, f.Y, 1e-12)
}

func TestSteer_ObjectOnTopOfSelfExcluded(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 9)
	objects := []arena.ScannedObject{wall(1, 0, 0), boost(2, 0, 0), player(3, 0, 0)}

	f := s.Force(selfAt(0, 0, 10), arena.NewScan(objects))

	assert.Equal(t, physics.Vec3{}, f)
}

func TestSteer_IgnoresSelfInScan(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 9)

	f := s.Force(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{player(selfID, 3, 0)}))

	assert.Equal(t, physics.Vec3{}, f)
}

func TestSteer_EnemyPullsWithinEngageRange(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 9)

	near := s.Force(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{player(3, 0, -20)}))
	assert.InDelta(t, 0, near.X, 1e-12)
	assert.InDelta(t, -DefaultEnemyGain/20, near.Y, 1e-12)

	far := s.Force(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{player(3, 0, -30)}))
	assert.Equal(t, physics.Vec3{}, far)
}

func TestSteer_WallDominatesCloseEnemy(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 9)
	objects := []arena.ScannedObject{wall(1, 4.9, 0), player(3, 0.01, 0)}

	v := s.Steer(selfAt(0, 0, 100), arena.NewScan(objects))

	assert.Less(t, v.X, 0.0)
}

func TestSteer_ForcesAccumulate(t *testing.T) {
	s := NewSteering(DefaultSteeringConfig(), 9)
	objects := []arena.ScannedObject{wall(1, 2, 0), wall(2, 0, 2)}

	v := s.Steer(selfAt(0, 0, 100), arena.NewScan(objects))

	assert.InDelta(t, -math.Sqrt2/2, v.X, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, v.Y, 1e-9)
}

func TestSteer_SameSeedSameHeading(t *testing.T) {
	a := NewSteering(DefaultSteeringConfig(), SeedFromName("bot-a"))
	b := NewSteering(DefaultSteeringConfig(), SeedFromName("bot-a"))

	assert.Equal(t, a.Steer(selfAt(0, 0, 100), nil), b.Steer(selfAt(0, 0, 100), nil))
}

func TestSteeringCycle_SendsVelocity(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)
	ctx := context.Background()

	a.EXPECT().FetchSelfState(ctx).Return(selfAt(0, 0, 100), nil)
	a.EXPECT().ScanEnvironment(ctx).Return(arena.NewScan([]arena.ScannedObject{wall(1, 0, 1)}), nil)
	a.EXPECT().SetVelocity(ctx, gomock.Any(), gomock.Any(), 0.0).DoAndReturn(
		func(_ context.Context, x, y, _ float64) error {
			assert.InDelta(t, 0, x, 1e-9)
			assert.InDelta(t, -1, y, 1e-9)
			return nil
		})

	v, err := NewSteering(DefaultSteeringConfig(), 1).Cycle(ctx, a)
	require.NoError(t, err)
	assert.InDelta(t, -1, v.Y, 1e-9)
}

func TestSteeringCycle_FetchFailureIsSenseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)
	boom := errors.New("boom")

	a.EXPECT().FetchSelfState(gomock.Any()).Return(arena.SelfState{}, boom)

	_, err := NewSteering(DefaultSteeringConfig(), 1).Cycle(context.Background(), a)
	assert.ErrorIs(t, err, ErrSense)
	assert.ErrorIs(t, err, boom)
}

func TestSteeringCycle_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	a.EXPECT().FetchSelfState(gomock.Any()).Return(selfAt(0, 0, 100), nil)
	a.EXPECT().ScanEnvironment(gomock.Any()).Return(arena.NewScan(nil), nil)
	a.EXPECT().SetVelocity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(arena.ErrClosed)

	_, err := NewSteering(DefaultSteeringConfig(), 1).Cycle(context.Background(), a)
	assert.ErrorIs(t, err, ErrCommand)
	assert.NotErrorIs(t, err, ErrSense)
}

func TestSteeringConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultSteeringConfig().Validate())

	cfg := DefaultSteeringConfig()
	cfg.EnemyStandoff = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTuning)

	cfg = DefaultSteeringConfig()
	cfg.BaseSpeed = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTuning)
}
