package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default Dino runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			FieldWidth:        800,
			FieldHeight:       400,
			GroundY:           350,
			CeilingY:          50,
			Gravity:           0.8,
			JumpForce:         -15,
			JumpBoostPerLevel: 0.04,
			AirJumpForce:      -8,
		},
		Obstacles: DinoObstacles{
			BlockSize:                4,
			BaseSpeed:                6.0,
			MinSpeed:                 1.0,
			SpeedBoostPerLevel:       0.5,
			SlowMotionPerLevel:       0.5,
			RampEvery:                300, // 5s at 60fps
			Acceleration:             0.05,
			MinAcceleration:          0.01,
			SlowAccelerationPerLevel: 0.01,
			BaseSpawnInterval:        100,
			MinSpawnInterval:         60,
			MaxSpawnInterval:         120,
			SpawnSpeedFactor:         0.1,
			MinSpawnScale:            0.5,
			PassAnchorX:              50,
			HitboxInset:              4,
		},
		Player: DinoPlayer{
			X:                 100,
			MaxX:              750,
			HitboxInset:       8,
			InvulnerableTicks: 120,
			AnimTicks:         8,
		},
		Abilities: DinoAbilities{
			ShieldDuration:         120,
			ShieldDurationPerLevel: 30,
			ShieldCooldown:         900,
			ShieldCooldownPerLevel: 150,
			ShieldMinCooldown:      600,
			DashVelocity:           12,
			DashVelocityPerLevel:   3,
			DashDuration:           15,
			DashCooldown:           300,
			DodgePercentPerLevel:   5,
		},
		Keybinds: DefaultKeybinds(),
		Theme:    ThemeNormal,
	}
}

// DefaultKeybinds returns the stock key layout.
func DefaultKeybinds() Keybinds {
	return Keybinds{
		Jump:    []string{" ", "up", "w"},
		Shield:  []string{"s"},
		Dash:    []string{"d"},
		Pause:   []string{"p"},
		Back:    []string{"esc", "b"},
		Restart: []string{"r"},
		Quit:    []string{"q", "ctrl+c"},
	}
}
