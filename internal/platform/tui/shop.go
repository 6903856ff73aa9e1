package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/shop"
	"github.com/vovakirdan/dino-dash/internal/storage"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Shopper is the part of shop.Shop the shop screen needs.
type Shopper interface {
	Offers() ([]shop.Offer, storage.Profile, error)
	Buy(key upgrades.Key) (shop.Receipt, error)
}

// ShopKeyMap defines the key bindings for the shop screen.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns the shop bindings.
func DefaultShopKeyMap() ShopKeyMap {
	mk := DefaultMenuKeyMap()
	return ShopKeyMap{
		Up:   mk.Up,
		Down: mk.Down,
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy"),
		),
		Back: mk.Back,
		Quit: mk.Quit,
	}
}

// ShopModel is the Bubble Tea model for the upgrade shop.
type ShopModel struct {
	shop      Shopper
	offers    []shop.Offer
	profile   storage.Profile
	table     table.Model
	help      help.Model
	keys      ShopKeyMap
	width     int
	height    int
	message   string
	failed    bool // message is an error
	quitting  bool
	goingBack bool
}

// NewShopModel creates the shop screen and loads the current offers.
func NewShopModel(s Shopper, width, height int) ShopModel {
	m := ShopModel{
		shop:   s,
		help:   help.New(),
		keys:   DefaultShopKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *ShopModel) createTable() table.Model {
	descWidth := m.width - 6 - (18 + 7 + 7 + 12)
	if descWidth < 10 {
		descWidth = 10
	}
	if descWidth > 40 {
		descWidth = 40
	}
	columns := []table.Column{
		{Title: "Upgrade", Width: 18},
		{Title: "Level", Width: 7},
		{Title: "Cost", Width: 7},
		{Title: "Status", Width: 12},
		{Title: "Effect", Width: descWidth},
	}

	height := m.height - 9
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload refreshes offers and the profile from the shop.
func (m *ShopModel) reload() {
	offers, profile, err := m.shop.Offers()
	if err != nil {
		m.message = err.Error()
		m.failed = true
		return
	}
	m.offers = offers
	m.profile = profile

	cursor := m.table.Cursor()
	rows := make([]table.Row, len(offers))
	for i, o := range offers {
		cost := "-"
		if o.Status != shop.StatusMaxed {
			cost = fmt.Sprintf("%d", o.Cost)
		}
		status := o.Status.String()
		if o.Status == shop.StatusLocked {
			status = fmt.Sprintf("best %d", o.Item.UnlockScore)
		}
		rows[i] = table.Row{
			o.Item.Name,
			fmt.Sprintf("%d/%d", o.Level, o.Item.MaxLevel),
			cost,
			status,
			o.Item.Description,
		}
	}
	m.table.SetRows(rows)
	if cursor >= 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// buy purchases the highlighted offer.
func (m *ShopModel) buy() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.offers) {
		return
	}
	it := m.offers[i].Item

	r, err := m.shop.Buy(it.Key)
	if err != nil {
		m.message = buyError(it, err)
		m.failed = true
		return
	}
	m.message = fmt.Sprintf("Bought %s level %d for %d coins", it.Name, r.Level, r.Cost)
	m.failed = false
	m.reload()
}

// buyError turns a shop error into a short player-facing line.
func buyError(it upgrades.Item, err error) string {
	switch {
	case errors.Is(err, shop.ErrMaxed):
		return it.Name + " is already maxed"
	case errors.Is(err, shop.ErrLocked):
		return fmt.Sprintf("%s unlocks at high score %d", it.Name, it.UnlockScore)
	case errors.Is(err, shop.ErrRequires):
		if parent, ok := upgrades.Lookup(it.Requires); ok {
			return fmt.Sprintf("%s needs %s first", it.Name, parent.Name)
		}
		return it.Name + " needs another upgrade first"
	case errors.Is(err, shop.ErrNotEnoughCoins):
		return "Not enough coins for " + it.Name
	}
	return err.Error()
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	shopTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	shopOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	shopErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	shopBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(shopTitleStyle.Render("UPGRADE SHOP"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%s   Best: %d",
		menuCoinStyle.Render(fmt.Sprintf("Coins: %d", m.profile.Coins)),
		m.profile.HighScore), m.width))
	b.WriteString("\n\n")

	b.WriteString(shopBoxStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.message != "" {
		st := shopOKStyle
		if m.failed {
			st = shopErrStyle
		}
		b.WriteString(st.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if the player wants the menu again.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// RunShop runs the shop screen.
// Returns true if the player wants to go back to the menu, false if quitting.
func RunShop(s Shopper, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewShopModel(s, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: shop: %w", err)
	}

	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
