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
)

func TestAcquire_PicksNearestInRange(t *testing.T) {
	tg := NewTargeting(DefaultTargetingConfig())
	objects := []arena.ScannedObject{
		player(10, 9, 0),
		player(11, 0, 3),
		player(12, -7, 0),
	}

	target, ok := tg.Acquire(selfAt(0, 0, 100), arena.NewScan(objects))

	require.True(t, ok)
	assert.Equal(t, uint32(11), target.ID)
	assert.InDelta(t, 3, target.Distance, 1e-12)
	assert.InDelta(t, math.Pi/2, target.Bearing, 1e-12)
}

func TestAcquire_ExactlyAtRangeNotSelected(t *testing.T) {
	tg := NewTargeting(DefaultTargetingConfig())

	_, ok := tg.Acquire(selfAt(0, 0, 100), arena.NewScan([]arena.ScannedObject{player(10, 10, 0)}))

	assert.False(t, ok)
}

func TestAcquire_TieFirstSeenWins(t *testing.T) {
	tg := NewTargeting(DefaultTargetingConfig())
	objects := []arena.ScannedObject{player(20, 0, 5), player(21, 5, 0)}

	target, ok := tg.Acquire(selfAt(0, 0, 100), arena.NewScan(objects))

	require.True(t, ok)
	assert.Equal(t, uint32(20), target.ID)
}

func TestAcquire_IgnoresSelfWallsAndBoosts(t *testing.T) {
	tg := NewTargeting(DefaultTargetingConfig())
	objects := []arena.ScannedObject{player(selfID, 1, 0), wall(1, 1, 1), boost(2, 2, 2)}

	_, ok := tg.Acquire(selfAt(0, 0, 100), arena.NewScan(objects))

	assert.False(t, ok)
}

func TestTargetingCycle_FiresInDegrees(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	a.EXPECT().FetchSelfState(gomock.Any()).Return(selfAt(1, 1, 100), nil)
	a.EXPECT().ScanEnvironment(gomock.Any()).Return(arena.NewScan([]arena.ScannedObject{player(3, 1, -2)}), nil)
	a.EXPECT().FireAt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, angle float64) (arena.ShotResult, error) {
			assert.InDelta(t, -90, angle, 1e-9)
			return arena.ShotResult{Success: true, Damage: 12}, nil
		})

	shot, err := NewTargeting(DefaultTargetingConfig()).Cycle(context.Background(), a)

	require.NoError(t, err)
	assert.True(t, shot.Fired)
	assert.Equal(t, uint64(12), shot.Result.Damage)
}

func TestTargetingCycle_NoEnemyNoFire(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	a.EXPECT().FetchSelfState(gomock.Any()).Return(selfAt(0, 0, 100), nil)
	a.EXPECT().ScanEnvironment(gomock.Any()).Return(arena.NewScan([]arena.ScannedObject{player(3, 40, 0)}), nil)

	shot, err := NewTargeting(DefaultTargetingConfig()).Cycle(context.Background(), a)

	require.NoError(t, err)
	assert.False(t, shot.Fired)
}

func TestTargetingCycle_FailedShotIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	a.EXPECT().FetchSelfState(gomock.Any()).Return(selfAt(0, 0, 100), nil)
	a.EXPECT().ScanEnvironment(gomock.Any()).Return(arena.NewScan([]arena.ScannedObject{player(3, 2, 0)}), nil)
	a.EXPECT().FireAt(gomock.Any(), 0.0).Return(arena.ShotResult{FailReason: arena.FailReasonCooldown}, nil)

	shot, err := NewTargeting(DefaultTargetingConfig()).Cycle(context.Background(), a)

	require.NoError(t, err)
	assert.True(t, shot.Fired)
	assert.False(t, shot.Result.Success)
	assert.Equal(t, arena.FailReasonCooldown, shot.Result.FailReason)
}

func TestTargetingCycle_ScanFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)
	boom := errors.New("radar down")

	a.EXPECT().FetchSelfState(gomock.Any()).Return(selfAt(0, 0, 100), nil)
	a.EXPECT().ScanEnvironment(gomock.Any()).Return(nil, boom)

	_, err := NewTargeting(DefaultTargetingConfig()).Cycle(context.Background(), a)

	assert.ErrorIs(t, err, ErrSense)
	assert.ErrorIs(t, err, boom)
}
