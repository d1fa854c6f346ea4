package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/arena/mocks"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

func TestInspect_ReadsSelfThenRadar(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	gomock.InOrder(
		a.EXPECT().FetchSelfState(gomock.Any()).Return(arena.SelfState{ID: 1, Health: 100}, nil),
		a.EXPECT().ScanEnvironment(gomock.Any()).Return(arena.NewScan([]arena.ScannedObject{
			{ID: 2, Kind: arena.KindWall, Position: physics.V2(3, 4)},
		}), nil),
	)

	assert.NoError(t, inspect(context.Background(), a, log.NewNop()))
}

func TestInspect_StopsOnFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockArena(ctrl)

	a.EXPECT().FetchSelfState(gomock.Any()).Return(arena.SelfState{}, arena.ErrNotConnected)

	assert.ErrorIs(t, inspect(context.Background(), a, log.NewNop()), arena.ErrNotConnected)
}
