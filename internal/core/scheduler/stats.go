package scheduler

import (
	"errors"
	"sync"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/events/bus"
)

// Summary is a point-in-time copy of a run's counters.
type Summary struct {
	VelocityCommands uint64
	ShotsFired       uint64
	Hits             uint64
	Damage           uint64
	Failures         map[arena.FailReason]uint64
	Died             bool
	FinalScore       uint32
	TaskCycles       map[string]uint64
}

// Stats aggregates agent events into a Summary.
type Stats struct {
	mu   sync.Mutex
	sum  Summary
	subs []bus.Subscription
}

// NewStats subscribes to every agent event on events.
func NewStats(events bus.EventBus) (*Stats, error) {
	s := &Stats{sum: Summary{
		Failures:   make(map[arena.FailReason]uint64),
		TaskCycles: make(map[string]uint64),
	}}

	handlers := map[string]bus.EventHandler{
		EventVelocity:    s.onVelocity,
		EventShot:        s.onShot,
		EventDied:        s.onDied,
		EventTaskStopped: s.onTaskStopped,
	}
	for typ, h := range handlers {
		sub, err := events.Subscribe(typ, h)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.subs = append(s.subs, sub)
	}
	return s, nil
}

func (s *Stats) Close() error {
	var all error
	for _, sub := range s.subs {
		all = errors.Join(all, sub.Cancel())
	}
	s.subs = nil
	return all
}

func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.sum
	out.Failures = make(map[arena.FailReason]uint64, len(s.sum.Failures))
	for k, v := range s.sum.Failures {
		out.Failures[k] = v
	}
	out.TaskCycles = make(map[string]uint64, len(s.sum.TaskCycles))
	for k, v := range s.sum.TaskCycles {
		out.TaskCycles[k] = v
	}
	return out
}

func (s *Stats) onVelocity(bus.Event) error {
	s.mu.Lock()
	s.sum.VelocityCommands++
	s.mu.Unlock()
	return nil
}

func (s *Stats) onShot(e bus.Event) error {
	ev, ok := e.Data().(ShotEvent)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sum.ShotsFired++
	if ev.Shot.Result.Success {
		s.sum.Hits++
		s.sum.Damage += ev.Shot.Result.Damage
	} else {
		s.sum.Failures[ev.Shot.Result.FailReason]++
	}
	return nil
}

func (s *Stats) onDied(e bus.Event) error {
	ev, ok := e.Data().(DiedEvent)
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.sum.Died = true
	s.sum.FinalScore = ev.Self.Score
	s.mu.Unlock()
	return nil
}

func (s *Stats) onTaskStopped(e bus.Event) error {
	ev, ok := e.Data().(TaskStoppedEvent)
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.sum.TaskCycles[ev.Task] = ev.Cycles
	s.mu.Unlock()
	return nil
}
