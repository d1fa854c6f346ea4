package npc

import (
	"errors"
	"fmt"
)

const (
	DefaultWallRadius     = 5.0
	DefaultWallGain       = 5.0
	DefaultBoostRadius    = 50.0
	DefaultBoostGain      = 3.0
	DefaultCriticalHealth = 50
	DefaultEnemyGain      = 0.5
	DefaultEnemyStandoff  = 1.0
	DefaultMaxShootRange  = 10.0
	DefaultEngageFactor   = 3.0
	DefaultEpsilon        = 0.001
	DefaultZeroForce      = 0.0001
	DefaultBaseSpeed      = 1.0
)

var ErrInvalidTuning = errors.New("npc: invalid tuning")

// SteeringConfig holds the potential field coefficients.
type SteeringConfig struct {
	WallRadius     float64 `json:"wall_radius" yaml:"wall_radius"`
	WallGain       float64 `json:"wall_gain" yaml:"wall_gain"`
	BoostRadius    float64 `json:"boost_radius" yaml:"boost_radius"`
	BoostGain      float64 `json:"boost_gain" yaml:"boost_gain"`
	CriticalHealth uint32  `json:"critical_health" yaml:"critical_health"`
	// EngageRange bounds enemy attraction; normally 3x the weapon range.
	EngageRange float64 `json:"engage_range" yaml:"engage_range"`
	EnemyGain   float64 `json:"enemy_gain" yaml:"enemy_gain"`
	// EnemyStandoff caps the enemy pull at EnemyGain/EnemyStandoff so walls
	// inside WallRadius always push harder than any enemy pulls.
	EnemyStandoff float64 `json:"enemy_standoff" yaml:"enemy_standoff"`
	Epsilon       float64 `json:"epsilon" yaml:"epsilon"`
	ZeroForce     float64 `json:"zero_force" yaml:"zero_force"`
	BaseSpeed     float64 `json:"base_speed" yaml:"base_speed"`
}

// TargetingConfig holds the weapon parameters.
type TargetingConfig struct {
	MaxShootRange float64 `json:"max_shoot_range" yaml:"max_shoot_range"`
}

func DefaultSteeringConfig() SteeringConfig {
	return SteeringConfig{
		WallRadius:     DefaultWallRadius,
		WallGain:       DefaultWallGain,
		BoostRadius:    DefaultBoostRadius,
		BoostGain:      DefaultBoostGain,
		CriticalHealth: DefaultCriticalHealth,
		EngageRange:    DefaultEngageFactor * DefaultMaxShootRange,
		EnemyGain:      DefaultEnemyGain,
		EnemyStandoff:  DefaultEnemyStandoff,
		Epsilon:        DefaultEpsilon,
		ZeroForce:      DefaultZeroForce,
		BaseSpeed:      DefaultBaseSpeed,
	}
}

func DefaultTargetingConfig() TargetingConfig {
	return TargetingConfig{MaxShootRange: DefaultMaxShootRange}
}

// Validate validates the steering configuration
func (c SteeringConfig) Validate() error {
	switch {
	case c.WallRadius < 0 || c.BoostRadius < 0 || c.EngageRange < 0:
		return fmt.Errorf("%w: radii must be non-negative", ErrInvalidTuning)
	case c.Epsilon <= 0:
		return fmt.Errorf("%w: epsilon must be positive", ErrInvalidTuning)
	case c.ZeroForce <= 0:
		return fmt.Errorf("%w: zero_force must be positive", ErrInvalidTuning)
	case c.EnemyStandoff < c.Epsilon:
		return fmt.Errorf("%w: enemy_standoff must be at least epsilon", ErrInvalidTuning)
	case c.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidTuning)
	}
	return nil
}

// Validate validates the targeting configuration
func (c TargetingConfig) Validate() error {
	if c.MaxShootRange <= 0 {
		return fmt.Errorf("%w: max_shoot_range must be positive", ErrInvalidTuning)
	}
	return nil
}
