package sim

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("sim: invalid config")

// Config describes the simulated arena. Distances are in world units, speeds
// in units per second.
type Config struct {
	Width        float64       `json:"width" yaml:"width"`
	Height       float64       `json:"height" yaml:"height"`
	WallSpacing  float64       `json:"wall_spacing" yaml:"wall_spacing"`
	Obstacles    int           `json:"obstacles" yaml:"obstacles"`
	Boosts       int           `json:"boosts" yaml:"boosts"`
	BoostHeal    uint32        `json:"boost_heal" yaml:"boost_heal"`
	PickupRadius float64       `json:"pickup_radius" yaml:"pickup_radius"`
	MaxHealth    uint32        `json:"max_health" yaml:"max_health"`
	MaxSpeed     float64       `json:"max_speed" yaml:"max_speed"`
	RadarRange   float64       `json:"radar_range" yaml:"radar_range"`
	WeaponRange  float64       `json:"weapon_range" yaml:"weapon_range"`
	WeaponDamage uint64        `json:"weapon_damage" yaml:"weapon_damage"`
	AimTolerance float64       `json:"aim_tolerance" yaml:"aim_tolerance"` // degrees
	FireCooldown time.Duration `json:"fire_cooldown" yaml:"fire_cooldown"`
	Tick         time.Duration `json:"tick" yaml:"tick"`
	Seed         uint64        `json:"seed" yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:        100,
		Height:       100,
		WallSpacing:  2,
		Obstacles:    8,
		Boosts:       5,
		BoostHeal:    30,
		PickupRadius: 1,
		MaxHealth:    100,
		MaxSpeed:     5,
		RadarRange:   60,
		WeaponRange:  10,
		WeaponDamage: 10,
		AimTolerance: 5,
		FireCooldown: 500 * time.Millisecond,
		Tick:         50 * time.Millisecond,
		Seed:         1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive", ErrInvalidConfig)
	case c.WallSpacing <= 0:
		return fmt.Errorf("%w: wall_spacing must be positive", ErrInvalidConfig)
	case c.Obstacles < 0 || c.Boosts < 0:
		return fmt.Errorf("%w: object counts must not be negative", ErrInvalidConfig)
	case c.MaxHealth == 0:
		return fmt.Errorf("%w: max_health must be positive", ErrInvalidConfig)
	case c.WeaponRange <= 0 || c.RadarRange <= 0:
		return fmt.Errorf("%w: ranges must be positive", ErrInvalidConfig)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive", ErrInvalidConfig)
	}
	return nil
}
