package scheduler

import (
	"errors"
	"fmt"
	"time"
)

const DefaultInterval = 300 * time.Millisecond

var ErrInvalidSchedule = errors.New("invalid schedule")

// Config holds the delay between consecutive cycles of each task.
type Config struct {
	MovementInterval time.Duration `json:"movement_interval" yaml:"movement_interval"`
	ShootingInterval time.Duration `json:"shooting_interval" yaml:"shooting_interval"`
	LivenessInterval time.Duration `json:"liveness_interval" yaml:"liveness_interval"`
}

func DefaultConfig() Config {
	return Config{
		MovementInterval: DefaultInterval,
		ShootingInterval: DefaultInterval,
		LivenessInterval: DefaultInterval,
	}
}

func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"movement_interval": c.MovementInterval,
		"shooting_interval": c.ShootingInterval,
		"liveness_interval": c.LivenessInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidSchedule, name, d)
		}
	}
	return nil
}
