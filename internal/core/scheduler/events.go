package scheduler

import (
	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

// Event types published by the Agent.
const (
	EventVelocity    = "agent.velocity"
	EventShot        = "agent.shot"
	EventDied        = "agent.died"
	EventTaskStopped = "agent.task.stopped"
)

type VelocityEvent struct {
	Velocity physics.Vec3
}

type ShotEvent struct {
	Shot npc.Shot
}

type DiedEvent struct {
	Self arena.SelfState
}

// TaskStoppedEvent is published once per task when it leaves its loop. Err is
// nil for a clean stop.
type TaskStoppedEvent struct {
	Task   string
	Cycles uint64
	Err    error
}
