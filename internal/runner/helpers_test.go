package runner

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// fixedRNG always returns the same roll.
type fixedRNG int

func (r fixedRNG) Intn(n int) int {
	return int(r) % n
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// quietRun returns a run whose spawn timer will not fire during a test.
func quietRun(levels upgrades.Levels) *Run {
	r := NewRun(config.DefaultDinoConfig(), levels, NewRNG(7))
	r.field.spawnTimer = -1 << 20
	return r
}

// groundCactus builds a small cactus standing on the default ground line.
func groundCactus(x float64) Obstacle {
	return Obstacle{Shape: ShapeSmall, X: x, Y: 350 - 48, W: 24, H: 48, Speed: 6}
}
