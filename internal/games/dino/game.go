// Package dino implements the Dino Dash endless runner on top of the runner
// simulation. Two modes are registered: "dino" plays with the profile's
// upgrades and earns coins, "dino_classic" plays the bare prototype rules.
package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/runner"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Game mode IDs.
const (
	ModeEnhanced = "dino"
	ModeClassic  = "dino_classic"
)

// flashDuration is how long event messages stay on screen, in ticks.
const flashDuration = 45

// Game adapts a runner.Run to the registry.Game interface.
type Game struct {
	classic bool
	run     *runner.Run
	runtime core.RuntimeConfig
	cfg     config.DinoConfig
	levels  upgrades.Levels
	theme   Theme
	edges   *core.EdgeTracker

	paused   bool
	gameOver bool
	distance float64 // Pixels scrolled, drives the ground texture

	bankedCoins int // Profile coins before this run, HUD only
	highScore   int // Profile high score before this run
	newHigh     bool

	flash      string
	flashTicks int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates the enhanced game.
func New() *Game {
	return &Game{}
}

// NewClassic creates the classic game: no upgrades, one life, no coins.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return ModeClassic
	}
	return ModeEnhanced
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Dino Classic"
	}
	return "Dino Dash"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.classic {
		return "The original: one life, no upgrades, no coins"
	}
	return "Jump, dash and shield with your upgrades, earn coins"
}

// SetProfile tells the game the profile's coins and high score before the
// run starts, for the HUD and the game-over panel.
func (g *Game) SetProfile(coins, highScore int) {
	g.bankedCoins = coins
	g.highScore = highScore
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	g.cfg = cfg
	g.theme = ThemeByName(cfg.Theme)

	// Levels arrive from storage already clamped; clamp again so a
	// hand-built RuntimeConfig cannot break the simulation.
	g.levels = upgrades.Levels{}
	if !g.classic {
		g.levels = runtime.Upgrades.Clamp()
	}

	g.run = runner.NewRun(cfg, g.levels, runner.NewRNG(runtime.Seed))
	g.edges = core.NewEdgeTracker()
	g.paused = false
	g.gameOver = false
	g.newHigh = false
	g.distance = 0
	g.flash = ""
	g.flashTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	defer g.edges.Advance(in)

	if g.gameOver {
		return g.result()
	}

	if g.edges.Pressed(in, core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.distance += g.run.Field().ObstacleSpeed(g.levels)
	res := g.run.Tick(in, g.levels)
	g.announce(res)

	if res.Ended {
		g.gameOver = true
		g.newHigh = g.State().Score > g.highScore
	}

	return g.result()
}

// announce turns notable tick events into a short on-screen message.
func (g *Game) announce(res runner.TickResult) {
	var msg string
	switch {
	case res.DestroyedByDash > 1:
		msg = fmt.Sprintf("DASH x%d!", res.DestroyedByDash)
	case res.DestroyedByDash == 1:
		msg = "SMASH!"
	case res.Dodged:
		msg = "DODGE!"
	case res.Hit && !res.Ended:
		msg = "OUCH!"
	default:
		return
	}
	g.flash = msg
	g.flashTicks = flashDuration
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Stats: g.run.Stats()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}

	v := newViewport(g.cfg.Physics, dst)
	g.drawGround(dst, v)
	g.drawObstacles(dst, v)
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, g.gameOverLines()...)
	}
}

func (g *Game) gameOverLines() []string {
	st := g.State()
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", st.Score)}
	if !g.classic {
		lines = append(lines, fmt.Sprintf("Coins earned: %d", st.Coins))
	}
	if g.newHigh {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	return append(lines, "R restart  |  B menu  |  Q quit")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{}
	}
	st := g.run.State()
	coins := st.Coins
	if g.classic {
		coins = 0
	}
	return core.GameState{
		Score:    st.Score,
		Coins:    coins,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(ModeEnhanced, func() registry.Game {
		return New()
	})
	registry.Register(ModeClassic, func() registry.Game {
		return NewClassic()
	})
}
