package runner

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// SpeedRamp calculates scroll speed and spawn pacing from elapsed ticks.
// Speed only grows with time; upgrades shift it by a constant.
type SpeedRamp struct {
	cfg config.DinoObstacles
}

// NewSpeedRamp creates a speed ramp from obstacle tuning.
func NewSpeedRamp(cfg config.DinoObstacles) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// AccelerationRate returns the speed added per ramp step.
func (r SpeedRamp) AccelerationRate(levels upgrades.Levels) float64 {
	rate := r.cfg.Acceleration - float64(levels.SlowAcceleration)*r.cfg.SlowAccelerationPerLevel
	return math.Max(r.cfg.MinAcceleration, rate)
}

// Speed returns the global scroll speed after elapsed ticks.
func (r SpeedRamp) Speed(elapsed int, levels upgrades.Levels) float64 {
	steps := float64(elapsed / r.cfg.RampEvery)
	return r.cfg.BaseSpeed + steps*r.AccelerationRate(levels) + float64(levels.SpeedBoost)*r.cfg.SpeedBoostPerLevel
}

// ObstacleSpeed returns how fast obstacles move at the given global speed.
func (r SpeedRamp) ObstacleSpeed(speed float64, levels upgrades.Levels) float64 {
	return math.Max(r.cfg.MinSpeed, speed-float64(levels.SlowMotion)*r.cfg.SlowMotionPerLevel)
}

// SpawnInterval returns the ticks between spawns at the given global speed.
// Faster runs spawn more often, bounded by the configured interval range.
func (r SpeedRamp) SpawnInterval(speed float64) int {
	scale := math.Max(r.cfg.MinSpawnScale, 1-(speed-r.cfg.BaseSpeed)*r.cfg.SpawnSpeedFactor)
	interval := int(math.Round(float64(r.cfg.BaseSpawnInterval) * scale))
	return clampInt(interval, r.cfg.MinSpawnInterval, r.cfg.MaxSpawnInterval)
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
