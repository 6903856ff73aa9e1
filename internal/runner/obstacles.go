package runner

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Obstacle is a ground-aligned cactus scrolling toward the player.
type Obstacle struct {
	Shape Shape
	X, Y  float64 // Top-left corner in playfield pixels
	W, H  int
	Speed float64 // Pixels moved per tick
}

// Bounds returns the visual bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(int(o.X), int(o.Y), o.W, o.H)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + float64(o.W)
}

// ObstacleField spawns, advances and retires obstacles and owns the speed ramp.
type ObstacleField struct {
	obstacles []Obstacle
	rng       RNG
	ramp      SpeedRamp
	cfg       config.DinoObstacles
	spawnX    float64
	groundY   float64

	elapsed    int     // Ticks since the run started
	spawnTimer int     // Ticks since the last spawn
	speed      float64 // Global scroll speed, never decreases
	destroyed  int     // Obstacles removed by dashing
}

// NewObstacleField creates an empty field. Obstacles spawn at the right edge
// of the playfield and stand on the ground line.
func NewObstacleField(cfg config.DinoConfig, rng RNG) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		ramp:      NewSpeedRamp(cfg.Obstacles),
		cfg:       cfg.Obstacles,
		spawnX:    cfg.Physics.FieldWidth,
		groundY:   cfg.Physics.GroundY,
		speed:     cfg.Obstacles.BaseSpeed,
	}
}

// Update advances the field by one tick: ramps speed, moves every obstacle,
// retires those fully off the left edge and spawns when the timer is due.
func (f *ObstacleField) Update(levels upgrades.Levels) {
	f.elapsed++
	f.speed = math.Max(f.speed, f.ramp.Speed(f.elapsed, levels))

	// Slow motion applies to live obstacles too, not only new ones
	speed := f.ObstacleSpeed(levels)
	for i := range f.obstacles {
		f.obstacles[i].Speed = speed
		f.obstacles[i].X -= speed
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept

	f.spawnTimer++
	if f.spawnTimer >= f.ramp.SpawnInterval(f.speed) {
		f.spawn(speed)
		f.spawnTimer = 0
	}
}

// spawn places one obstacle of a random shape at the right edge.
func (f *ObstacleField) spawn(speed float64) {
	shape := Shape(f.rng.Intn(int(shapeCount)))
	bw, bh := shape.Blocks()
	w, h := bw*f.cfg.BlockSize, bh*f.cfg.BlockSize

	f.obstacles = append(f.obstacles, Obstacle{
		Shape: shape,
		X:     f.spawnX,
		Y:     f.groundY - float64(h),
		W:     w,
		H:     h,
		Speed: speed,
	})
}

// CountAndRemovePassed removes obstacles whose trailing edge is behind the
// pass anchor and returns how many were removed.
func (f *ObstacleField) CountAndRemovePassed() int {
	passed := 0
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Right() < f.cfg.PassAnchorX {
			passed++
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept
	return passed
}

// Hitbox returns the forgiving collision box of obstacle i.
func (f *ObstacleField) Hitbox(i int) core.Rect {
	inset := f.cfg.HitboxInset
	return f.obstacles[i].Bounds().Inflate(-inset, -inset)
}

// CheckCollision returns the index of the first obstacle whose hitbox
// overlaps playerHitbox.
func (f *ObstacleField) CheckCollision(playerHitbox core.Rect) (int, bool) {
	for i := range f.obstacles {
		if playerHitbox.Intersects(f.Hitbox(i)) {
			return i, true
		}
	}
	return -1, false
}

// Remove deletes obstacle i. Out-of-range indexes are ignored.
func (f *ObstacleField) Remove(i int) {
	if i < 0 || i >= len(f.obstacles) {
		return
	}
	f.obstacles = append(f.obstacles[:i], f.obstacles[i+1:]...)
}

// DestroyByDash removes obstacle i and counts it as destroyed by a dash.
func (f *ObstacleField) DestroyByDash(i int) {
	if i < 0 || i >= len(f.obstacles) {
		return
	}
	f.Remove(i)
	f.destroyed++
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// CurrentSpeed returns the global scroll speed.
func (f *ObstacleField) CurrentSpeed() float64 {
	return f.speed
}

// ObstacleSpeed returns the speed obstacles move at under the given upgrades.
func (f *ObstacleField) ObstacleSpeed(levels upgrades.Levels) float64 {
	return f.ramp.ObstacleSpeed(f.speed, levels)
}

// Elapsed returns the number of ticks the field has been updated.
func (f *ObstacleField) Elapsed() int {
	return f.elapsed
}

// DestroyedByDash returns the number of obstacles removed by dashing.
func (f *ObstacleField) DestroyedByDash() int {
	return f.destroyed
}
