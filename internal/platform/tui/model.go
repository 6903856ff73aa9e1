package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// Options configures a game session.
type Options struct {
	Keybinds config.Keybinds // Empty actions use the stock layout
	Logger   *log.Logger     // nil discards logs
}

// Outcome describes how a game session ended.
type Outcome struct {
	Score   int  // Score of the last finished run
	Coins   int  // Coins credited for the last finished run
	NewHigh bool // Last finished run beat the profile high score
	Back    bool // Player asked to return to the menu
	Quit    bool // Player asked to leave the program
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keys      GameKeyMap
	help      help.Model
	config    core.RuntimeConfig
	input     *heldInput
	gameState core.GameState
	recorded  bool // Whether the current game over has been stored
	outcome   Outcome
	started   time.Time
}

// NewModel creates a new Bubble Tea model for the given game and starts
// the first run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:  store,
		logger: logger,
		keys:   NewGameKeyMap(opts.Keybinds),
		help:   help.New(),
		config: cfg,
		input:  newHeldInput(cfg.TickRate),
	}
	m.help.Width = cfg.ScreenW
	m.startRun()
	return m
}

// playRows is the screen height left for the game after the help line.
func playRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// startRun loads the profile into the runtime config and resets the game.
func (m *Model) startRun() {
	if m.store != nil {
		levels, err := m.store.UpgradeLevels()
		if err != nil {
			m.logger.Warn("could not load upgrades", "error", err)
		}
		m.config.Upgrades = levels

		if pa, ok := m.game.(registry.ProfileAware); ok {
			profile, err := m.store.Profile()
			if err != nil {
				m.logger.Warn("could not load profile", "error", err)
			}
			pa.SetProfile(profile.Coins, profile.HighScore)
		}
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.input.Reset()
	m.started = time.Now()
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "upgrades", len(m.config.Upgrades.Owned()))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; they are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.finish()
		m.outcome.Quit = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	m.input.Press(action)
	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input.Frame()

	if in.Has(core.ActionBack) {
		m.finish()
		m.outcome.Back = true
		return m, tea.Quit
	}

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.recorded {
		m.record(result)
	}

	return m, tickCmd(m.config.TickRate)
}

// record stores a finished run once.
func (m *Model) record(result core.StepResult) {
	m.recorded = true
	st := result.State
	m.outcome.Score = st.Score
	m.outcome.Coins = st.Coins
	m.outcome.NewHigh = false

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"score", st.Score,
		"coins", st.Coins,
		"ticks", result.Stats.Ticks,
		"passed", result.Stats.Passed,
		"duration", time.Since(m.started).Round(time.Second),
	)

	if m.store == nil {
		return
	}
	newHigh, err := m.store.RecordRun(storage.RunRecord{
		GameID: m.game.ID(),
		Score:  st.Score,
		Coins:  st.Coins,
		Passed: result.Stats.Passed,
		Dashed: result.Stats.DestroyedByDash,
		Dodges: result.Stats.Dodges,
		Ticks:  result.Stats.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "game", m.game.ID(), "error", err)
		return
	}
	m.outcome.NewHigh = newHigh
}

// finish logs an abandoned run. Unfinished runs are not stored.
func (m *Model) finish() {
	if !m.gameState.GameOver {
		m.logger.Info("run abandoned", "game", m.game.ID(), "score", m.gameState.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".dino", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.outcome.Quit || m.outcome.Back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Outcome reports how the session ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Run plays game until the player quits or goes back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Outcome, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{Quit: true}, nil
	}
	return m.Outcome(), nil
}
