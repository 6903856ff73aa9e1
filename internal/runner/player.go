package runner

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Damage is the outcome of TakeDamage.
type Damage int

const (
	DamageImmune Damage = iota // Shielded, invulnerable or dashing
	DamageDodged               // Dodge roll succeeded
	DamageTaken                // Lost one health, still alive
	DamageFatal                // Lost the last health
)

// Fatal reports whether the hit ended the run.
func (d Damage) Fatal() bool {
	return d == DamageFatal
}

// String returns the outcome name.
func (d Damage) String() string {
	switch d {
	case DamageImmune:
		return "immune"
	case DamageDodged:
		return "dodged"
	case DamageTaken:
		return "taken"
	case DamageFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Dash is the air-dash state. While Duration is positive the player moves
// right; afterwards it drifts back to its start column at obstacle speed.
type Dash struct {
	Velocity  float64
	Duration  int
	Cooldown  int
	Returning bool
}

// Player is the runner: vertical physics, abilities, health and hit geometry.
type Player struct {
	X, Y     float64 // Top-left corner in playfield pixels
	W, H     int
	StartX   float64
	VelY     float64
	OnGround bool

	Frame     int // Run-cycle frame
	animTimer int

	Shield      Shield
	Dash        Dash
	AirJumpUsed bool
	AirDashUsed bool

	Health       int
	MaxHealth    int
	Invulnerable int // Ticks of post-hit immunity left

	physics   config.DinoPhysics
	tuning    config.DinoPlayer
	abilities config.DinoAbilities
	inset     int
	rng       RNG
	edges     *core.EdgeTracker
}

// NewPlayer creates a player standing on the ground at its start column.
// Health and shield timings are fixed from levels for the whole run.
func NewPlayer(cfg config.DinoConfig, levels upgrades.Levels, blockSize int, rng RNG) *Player {
	ab := cfg.Abilities
	shieldDuration := ab.ShieldDuration + levels.ShieldUpgrade*ab.ShieldDurationPerLevel
	shieldCooldown := core.Max(ab.ShieldMinCooldown, ab.ShieldCooldown-levels.ShieldUpgrade*ab.ShieldCooldownPerLevel)

	p := &Player{
		W:         PlayerBlocksW * blockSize,
		H:         PlayerBlocksH * blockSize,
		X:         cfg.Player.X,
		StartX:    cfg.Player.X,
		OnGround:  true,
		Shield:    NewShield(shieldDuration, shieldCooldown),
		Health:    levels.MaxHealth(),
		MaxHealth: levels.MaxHealth(),
		physics:   cfg.Physics,
		tuning:    cfg.Player,
		abilities: ab,
		inset:     cfg.Player.HitboxInset,
		rng:       rng,
		edges:     core.NewEdgeTracker(),
	}
	p.Y = p.groundTop()
	return p
}

// groundTop is the y of the player standing on the ground.
func (p *Player) groundTop() float64 {
	return p.physics.GroundY - float64(p.H)
}

// JumpForce returns the ground jump velocity for the given upgrades.
func (p *Player) JumpForce(levels upgrades.Levels) float64 {
	return p.physics.JumpForce * (1 + float64(levels.JumpBoost)*p.physics.JumpBoostPerLevel)
}

// Update advances the player by one tick. Timers run first, then dash
// movement, then gravity, then the actions in the input frame.
func (p *Player) Update(in core.InputFrame, levels upgrades.Levels, obstacleSpeed float64) {
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	p.Shield.Tick()
	if p.Dash.Cooldown > 0 {
		p.Dash.Cooldown--
	}

	p.animTimer++
	if p.animTimer > p.tuning.AnimTicks {
		p.animTimer = 0
		p.Frame = (p.Frame + 1) % PlayerFrames
	}

	p.updateDash(obstacleSpeed)
	p.applyPhysics()
	p.handleInput(in, levels)
	p.edges.Advance(in)
}

func (p *Player) updateDash(obstacleSpeed float64) {
	switch {
	case p.Dash.Duration > 0:
		p.X = math.Min(p.X+p.Dash.Velocity, p.tuning.MaxX)
		p.Dash.Duration--
		if p.Dash.Duration == 0 && p.X > p.StartX {
			p.Dash.Returning = true
		}
	case p.Dash.Returning:
		p.X -= obstacleSpeed
		if p.X <= p.StartX {
			p.X = p.StartX
			p.Dash.Returning = false
		}
	}
}

func (p *Player) applyPhysics() {
	p.VelY += p.physics.Gravity
	p.Y += p.VelY

	if ground := p.groundTop(); p.Y >= ground {
		p.Y = ground
		p.VelY = 0
		p.OnGround = true
		p.AirJumpUsed = false
		p.AirDashUsed = false
	}
	if p.Y < p.physics.CeilingY {
		p.Y = p.physics.CeilingY
		if p.VelY < 0 {
			p.VelY = 0
		}
	}
}

func (p *Player) handleInput(in core.InputFrame, levels upgrades.Levels) {
	// Ground jumps fire while held so a jump buffered on landing is not lost
	if p.OnGround && in.Has(core.ActionJump) {
		p.VelY = p.JumpForce(levels)
		p.OnGround = false
	} else if !p.OnGround && p.edges.Pressed(in, core.ActionJump) && levels.AirJump > 0 && !p.AirJumpUsed {
		p.VelY = p.physics.AirJumpForce
		p.AirJumpUsed = true
	}

	if p.edges.Pressed(in, core.ActionDash) && p.CanDash(levels) {
		p.Dash = Dash{
			Velocity: p.abilities.DashVelocity + float64(levels.DashDistance)*p.abilities.DashVelocityPerLevel,
			Duration: p.abilities.DashDuration,
			Cooldown: p.abilities.DashCooldown,
		}
		p.AirDashUsed = true
	}

	if p.edges.Pressed(in, core.ActionShield) && levels.Shield > 0 {
		p.Shield.Activate()
	}
}

// CanDash reports whether an air-dash would start now.
func (p *Player) CanDash(levels upgrades.Levels) bool {
	return levels.AirDash > 0 && !p.OnGround && !p.AirDashUsed && p.Dash.Cooldown == 0
}

// IsDashing reports whether the dash is carrying the player forward.
func (p *Player) IsDashing() bool {
	return p.Dash.Duration > 0
}

// IsImmune reports whether damage would be ignored right now.
func (p *Player) IsImmune() bool {
	return p.Invulnerable > 0 || p.Shield.Active || p.IsDashing()
}

// Bounds returns the visual bounding box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(int(p.X), int(p.Y), p.W, p.H)
}

// CollisionRect returns the forgiving hitbox used against obstacles.
func (p *Player) CollisionRect() core.Rect {
	return p.Bounds().Inflate(-p.inset, -p.inset)
}

// TakeDamage resolves a hit. Immunity wins first, then the dodge roll;
// otherwise the player loses one health and becomes briefly invulnerable.
func (p *Player) TakeDamage(levels upgrades.Levels) Damage {
	if p.IsImmune() {
		return DamageImmune
	}

	chance := levels.DodgeChance * p.abilities.DodgePercentPerLevel
	if p.rng.Intn(100)+1 <= chance {
		return DamageDodged
	}

	p.Health--
	p.Invulnerable = p.tuning.InvulnerableTicks
	if p.Health <= 0 {
		p.Health = 0
		return DamageFatal
	}
	return DamageTaken
}
