// Package config provides YAML-based tuning, keybinding and theme
// configuration for the runner.
package config

import (
	"errors"
	"fmt"
)

// DinoConfig contains all configuration for the Dino runner.
type DinoConfig struct {
	Physics   DinoPhysics   `yaml:"physics"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	Player    DinoPlayer    `yaml:"player"`
	Abilities DinoAbilities `yaml:"abilities"`
	Keybinds  Keybinds      `yaml:"keybinds"`
	Theme     string        `yaml:"theme"` // "normal", "paper" or "inverted"
}

// DinoPhysics defines the playfield and vertical physics.
// All distances are in playfield pixels, all durations in ticks.
type DinoPhysics struct {
	FieldWidth        float64 `yaml:"field_width"`
	FieldHeight       float64 `yaml:"field_height"`
	GroundY           float64 `yaml:"ground_y"`
	CeilingY          float64 `yaml:"ceiling_y"`
	Gravity           float64 `yaml:"gravity"`
	JumpForce         float64 `yaml:"jump_force"`           // Negative = up
	JumpBoostPerLevel float64 `yaml:"jump_boost_per_level"` // Fraction of jump force added per level
	AirJumpForce      float64 `yaml:"air_jump_force"`
}

// DinoObstacles defines spawning and the speed ramp.
type DinoObstacles struct {
	BlockSize                int     `yaml:"block_size"` // Pixels per pattern cell
	BaseSpeed                float64 `yaml:"base_speed"`
	MinSpeed                 float64 `yaml:"min_speed"`
	SpeedBoostPerLevel       float64 `yaml:"speed_boost_per_level"`
	SlowMotionPerLevel       float64 `yaml:"slow_motion_per_level"`
	RampEvery                int     `yaml:"ramp_every"` // Ticks between speed steps
	Acceleration             float64 `yaml:"acceleration"`
	MinAcceleration          float64 `yaml:"min_acceleration"`
	SlowAccelerationPerLevel float64 `yaml:"slow_acceleration_per_level"`
	BaseSpawnInterval        int     `yaml:"base_spawn_interval"`
	MinSpawnInterval         int     `yaml:"min_spawn_interval"`
	MaxSpawnInterval         int     `yaml:"max_spawn_interval"`
	SpawnSpeedFactor         float64 `yaml:"spawn_speed_factor"` // Interval shrink per unit of extra speed
	MinSpawnScale            float64 `yaml:"min_spawn_scale"`
	PassAnchorX              float64 `yaml:"pass_anchor_x"`
	HitboxInset              int     `yaml:"hitbox_inset"`
}

// DinoPlayer defines the player's placement and hit geometry.
type DinoPlayer struct {
	X                 float64 `yaml:"x"`
	MaxX              float64 `yaml:"max_x"`
	HitboxInset       int     `yaml:"hitbox_inset"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
	AnimTicks         int     `yaml:"anim_ticks"`
}

// DinoAbilities defines shield, dash and dodge tuning.
type DinoAbilities struct {
	ShieldDuration         int     `yaml:"shield_duration"`
	ShieldDurationPerLevel int     `yaml:"shield_duration_per_level"`
	ShieldCooldown         int     `yaml:"shield_cooldown"`
	ShieldCooldownPerLevel int     `yaml:"shield_cooldown_per_level"`
	ShieldMinCooldown      int     `yaml:"shield_min_cooldown"`
	DashVelocity           float64 `yaml:"dash_velocity"`
	DashVelocityPerLevel   float64 `yaml:"dash_velocity_per_level"`
	DashDuration           int     `yaml:"dash_duration"`
	DashCooldown           int     `yaml:"dash_cooldown"`
	DodgePercentPerLevel   int     `yaml:"dodge_percent_per_level"`
}

// Keybinds lists key names per action, in Bubble Tea key notation.
type Keybinds struct {
	Jump    []string `yaml:"jump"`
	Shield  []string `yaml:"shield"`
	Dash    []string `yaml:"dash"`
	Pause   []string `yaml:"pause"`
	Back    []string `yaml:"back"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Theme names accepted in config.
const (
	ThemeNormal   = "normal"
	ThemePaper    = "paper"
	ThemeInverted = "inverted"
)

// Validate reports tuning values the simulation cannot run with.
func (c DinoConfig) Validate() error {
	var errs []error

	p := c.Physics
	if p.FieldWidth <= 0 || p.FieldHeight <= 0 {
		errs = append(errs, fmt.Errorf("physics: field size must be positive"))
	}
	if p.GroundY <= p.CeilingY {
		errs = append(errs, fmt.Errorf("physics: ground_y %.0f must be below ceiling_y %.0f", p.GroundY, p.CeilingY))
	}
	if p.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics: gravity must be positive"))
	}
	if p.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics: jump_force must be negative (up)"))
	}

	o := c.Obstacles
	if o.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles: block_size must be positive"))
	}
	if o.RampEvery <= 0 {
		errs = append(errs, fmt.Errorf("obstacles: ramp_every must be positive"))
	}
	if o.MinSpawnInterval <= 0 || o.MinSpawnInterval > o.MaxSpawnInterval {
		errs = append(errs, fmt.Errorf("obstacles: spawn interval bounds [%d, %d] are invalid", o.MinSpawnInterval, o.MaxSpawnInterval))
	}
	if o.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles: min_speed must be positive"))
	}

	if c.Player.MaxX < c.Player.X {
		errs = append(errs, fmt.Errorf("player: max_x must not be left of x"))
	}
	if c.Abilities.DashDuration < 0 || c.Abilities.ShieldDuration < 0 {
		errs = append(errs, fmt.Errorf("abilities: durations must not be negative"))
	}

	switch c.Theme {
	case "", ThemeNormal, ThemePaper, ThemeInverted:
	default:
		errs = append(errs, fmt.Errorf("theme: unknown theme %q", c.Theme))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
