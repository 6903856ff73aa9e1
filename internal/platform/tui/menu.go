package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceShop
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Choice MenuChoice
	GameID string // Set for ChoicePlay
	Title  string
	Hint   string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	profile  storage.Profile
	notice   string // Shown under the header, e.g. the last run's result
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	selected *MenuItem
}

// menuItems lists one entry per registered mode, then the other screens.
func menuItems() []MenuItem {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, MenuItem{Choice: ChoicePlay, GameID: g.ID, Title: g.Title, Hint: g.Description})
	}
	return append(items,
		MenuItem{Choice: ChoiceShop, Title: "Upgrade Shop", Hint: "Spend coins on upgrades"},
		MenuItem{Choice: ChoiceScores, Title: "High Scores", Hint: "Best runs per mode"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)
}

// NewMenuModel creates the main menu. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, notice string) MenuModel {
	m := MenuModel{
		items:  menuItems(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		notice: notice,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	if store != nil {
		if p, err := store.Profile(); err == nil {
			m.profile = p
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = &MenuItem{Choice: ChoiceQuit}
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	menuCoinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D I N O   D A S H"), m.width))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%s   Best: %d",
		menuCoinStyle.Render(fmt.Sprintf("Coins: %d", m.profile.Coins)),
		m.profile.HighScore)
	b.WriteString(centerText(header, m.width))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if hint := m.items[m.cursor].Hint; hint != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render(hint), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu shows the main menu and returns the selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, notice string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, notice),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{
		Choice: m.Selected().Choice,
		GameID: m.Selected().GameID,
		Config: m.Config(),
	}, nil
}
