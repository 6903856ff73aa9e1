// Package runner is the endless-runner simulation: an obstacle field with a
// speed ramp, a player with jump, air-jump, air-dash, shield and dodge, and a
// Run that ties them together one fixed tick at a time.
//
// The package performs no I/O and keeps no timers of its own; callers drive it
// by calling Run.Tick at a fixed rate.
package runner

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// RunState is the cumulative state of one run.
type RunState struct {
	BaseScore       int // One point per tick
	Score           int // BaseScore times the score multiplier
	Coins           int
	Passed          int
	DestroyedByDash int
	Dodges          int
	HitsTaken       int
	Ticks           int
	Ended           bool
}

// TickResult reports what happened during one tick.
type TickResult struct {
	ScoreDelta      int
	Coins           int // Coins earned this tick
	Ended           bool
	DestroyedByDash int
	Dodged          bool
	Hit             bool // Lost health this tick
}

// Run orchestrates one playthrough.
type Run struct {
	field  *ObstacleField
	player *Player
	state  RunState
}

// NewRun starts a run. levels fixes the player's health and shield timings;
// rng drives obstacle shapes and dodge rolls.
func NewRun(cfg config.DinoConfig, levels upgrades.Levels, rng RNG) *Run {
	return &Run{
		field:  NewObstacleField(cfg, rng),
		player: NewPlayer(cfg, levels, cfg.Obstacles.BlockSize, rng),
	}
}

// Tick advances the run by one tick. After the run has ended Tick does
// nothing and keeps reporting Ended.
func (r *Run) Tick(in core.InputFrame, levels upgrades.Levels) TickResult {
	if r.state.Ended {
		return TickResult{Ended: true}
	}

	var res TickResult
	r.state.Ticks++

	r.field.Update(levels)
	r.player.Update(in, levels, r.field.ObstacleSpeed(levels))

	passed := r.field.CountAndRemovePassed()
	res.Coins = passed * levels.CoinsPerObstacle()
	r.state.Passed += passed
	r.state.Coins += res.Coins

	prev := r.state.Score
	r.state.BaseScore++
	r.state.Score = r.state.BaseScore * levels.ScoreMultiplierFactor()
	res.ScoreDelta = r.state.Score - prev

	r.resolveCollision(levels, &res)
	res.Ended = r.state.Ended
	return res
}

// resolveCollision handles at most one damaging obstacle per tick. A dashing
// player destroys everything it overlaps instead.
func (r *Run) resolveCollision(levels upgrades.Levels, res *TickResult) {
	hitbox := r.player.CollisionRect()

	if r.player.IsDashing() {
		for {
			i, ok := r.field.CheckCollision(hitbox)
			if !ok {
				break
			}
			r.field.DestroyByDash(i)
			res.DestroyedByDash++
		}
		r.state.DestroyedByDash += res.DestroyedByDash
		return
	}

	i, ok := r.field.CheckCollision(hitbox)
	if !ok {
		return
	}

	switch r.player.TakeDamage(levels) {
	case DamageImmune:
		// Obstacle stays; immunity covers the overlap
	case DamageDodged:
		r.field.Remove(i)
		r.state.Dodges++
		res.Dodged = true
	case DamageTaken:
		r.field.Remove(i)
		r.state.HitsTaken++
		res.Hit = true
	case DamageFatal:
		r.field.Remove(i)
		r.state.HitsTaken++
		r.state.Ended = true
		res.Hit = true
	}
}

// State returns a snapshot of the run totals.
func (r *Run) State() RunState {
	return r.state
}

// Stats summarises the run for persistence.
func (r *Run) Stats() core.RunStats {
	return core.RunStats{
		Ticks:           r.state.Ticks,
		Passed:          r.state.Passed,
		DestroyedByDash: r.state.DestroyedByDash,
		Dodges:          r.state.Dodges,
		HitsTaken:       r.state.HitsTaken,
	}
}

// Field returns the obstacle field for rendering.
func (r *Run) Field() *ObstacleField {
	return r.field
}

// Player returns the player for rendering.
func (r *Run) Player() *Player {
	return r.player
}
