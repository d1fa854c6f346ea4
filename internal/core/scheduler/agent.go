// Package scheduler drives a bot's decision tasks. Movement, shooting and
// liveness each run as an independent periodic task sharing one stop signal.
package scheduler

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/events/bus"
	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/observability/log"
)

const (
	TaskMovement = "movement"
	TaskShooting = "shooting"
	TaskLiveness = "liveness"
)

// Agent owns the three tasks of one bot session.
type Agent struct {
	name      string
	arena     arena.Arena
	steering  *npc.Steering
	targeting *npc.Targeting
	events    bus.EventBus
	logger    log.Log
	stop      *StopSignal

	tasks []*PeriodicTask
}

func NewAgent(
	name string,
	a arena.Arena,
	steering *npc.Steering,
	targeting *npc.Targeting,
	cfg Config,
	events bus.EventBus,
	logger log.Log,
) *Agent {
	ag := &Agent{
		name:      name,
		arena:     a,
		steering:  steering,
		targeting: targeting,
		events:    events,
		logger:    logger.With(log.String("bot", name)),
		stop:      NewStopSignal(),
	}

	liveness := NewLiveness(a, ag.stop, ag.logger, func(self arena.SelfState) {
		ag.publish(EventDied, DiedEvent{Self: self})
	})

	ag.tasks = []*PeriodicTask{
		NewPeriodicTask(TaskLiveness, cfg.LivenessInterval, liveness.Check),
		NewPeriodicTask(TaskMovement, cfg.MovementInterval, ag.move),
		NewPeriodicTask(TaskShooting, cfg.ShootingInterval, ag.shoot),
	}
	return ag
}

// Stopped reports whether the bot has been observed dead.
func (ag *Agent) Stopped() bool { return ag.stop.Raised() }

// Run starts every task and blocks until all of them have returned. The first
// fatal task error cancels the others and is returned.
func (ag *Agent) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range ag.tasks {
		g.Go(func() error {
			err := t.Run(gctx, ag.stop)
			ag.logger.Debug("task stopped",
				log.String("task", t.Name()),
				log.Uint64("cycles", t.Cycles()),
			)
			ag.publish(EventTaskStopped, TaskStoppedEvent{Task: t.Name(), Cycles: t.Cycles(), Err: err})
			return err
		})
	}

	err := g.Wait()
	if err != nil {
		ag.logger.Error("agent stopped on error", log.Error(err))
		return err
	}
	ag.logger.Info("agent stopped", log.Bool("dead", ag.stop.Raised()))
	return nil
}

func (ag *Agent) move(ctx context.Context) error {
	v, err := ag.steering.Cycle(ctx, ag.arena)
	if err != nil {
		if errors.Is(err, npc.ErrCommand) {
			ag.logger.Warn("velocity command failed", log.Error(err))
			return nil
		}
		return err
	}
	ag.publish(EventVelocity, VelocityEvent{Velocity: v})
	return nil
}

func (ag *Agent) shoot(ctx context.Context) error {
	shot, err := ag.targeting.Cycle(ctx, ag.arena)
	if err != nil {
		if errors.Is(err, npc.ErrCommand) {
			ag.logger.Warn("fire command failed", log.Error(err))
			return nil
		}
		return err
	}
	if !shot.Fired {
		return nil
	}

	if shot.Result.Success {
		ag.logger.Debug("hit",
			log.Uint64("target", uint64(shot.Target.ID)),
			log.Uint64("damage", shot.Result.Damage),
		)
	} else {
		ag.logger.Debug("shot failed",
			log.Uint64("target", uint64(shot.Target.ID)),
			log.String("reason", shot.Result.FailReason.String()),
		)
	}
	ag.publish(EventShot, ShotEvent{Shot: shot})
	return nil
}

func (ag *Agent) publish(typ string, data any) {
	if ag.events == nil {
		return
	}
	if err := ag.events.Publish(bus.NewEvent(typ, ag.name, data)); err != nil {
		ag.logger.Warn("event handler failed", log.String("event", typ), log.Error(err))
	}
}
