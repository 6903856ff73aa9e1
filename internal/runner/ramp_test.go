package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

func TestSpeedRampWithoutUpgrades(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	for n := 0; n <= 6000; n += 37 {
		expected := 6.0 + math.Floor(float64(n)/300)*0.05
		if got := ramp.Speed(n, upgrades.Levels{}); !approx(got, expected) {
			t.Errorf("Speed(%d) = %f, expected %f", n, got, expected)
		}
	}
}

func TestSpeedRampUpgrades(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	tests := []struct {
		name     string
		levels   upgrades.Levels
		elapsed  int
		expected float64
	}{
		{"speed boost", upgrades.Levels{SpeedBoost: 2}, 0, 7.0},
		{"slow acceleration", upgrades.Levels{SlowAcceleration: 2}, 600, 6.0 + 2*0.03},
		{"acceleration floor", upgrades.Levels{SlowAcceleration: 4}, 3000, 6.0 + 10*0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ramp.Speed(tc.elapsed, tc.levels); !approx(got, tc.expected) {
				t.Errorf("Speed(%d) = %f, expected %f", tc.elapsed, got, tc.expected)
			}
		})
	}
}

func TestAccelerationRateFloor(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	for level := 0; level <= 10; level++ {
		rate := ramp.AccelerationRate(upgrades.Levels{SlowAcceleration: level})
		if rate < 0.01-epsilon {
			t.Errorf("AccelerationRate at level %d = %f, below floor", level, rate)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	tests := []struct {
		speed    float64
		expected int
	}{
		{6.0, 100},
		{8.0, 80},
		{9.0, 70},
		{20.0, 60}, // Scale floors at 0.5 then clamps to 60
		{1.0, 120}, // Slower than base clamps to 120
	}

	for _, tc := range tests {
		if got := ramp.SpawnInterval(tc.speed); got != tc.expected {
			t.Errorf("SpawnInterval(%.1f) = %d, expected %d", tc.speed, got, tc.expected)
		}
	}
}

func TestSpawnIntervalAlwaysClamped(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	for speed := -10.0; speed <= 100; speed += 0.25 {
		got := ramp.SpawnInterval(speed)
		if got < 60 || got > 120 {
			t.Fatalf("SpawnInterval(%.2f) = %d, outside [60, 120]", speed, got)
		}
	}
}

func TestObstacleSpeedSlowMotion(t *testing.T) {
	ramp := NewSpeedRamp(config.DefaultDinoConfig().Obstacles)

	if got := ramp.ObstacleSpeed(6.0, upgrades.Levels{SlowMotion: 4}); !approx(got, 4.0) {
		t.Errorf("ObstacleSpeed = %f, expected 4.0", got)
	}
	if got := ramp.ObstacleSpeed(1.5, upgrades.Levels{SlowMotion: 4}); !approx(got, 1.0) {
		t.Errorf("ObstacleSpeed should floor at min speed, got %f", got)
	}
}
