package dino

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Theme assigns a color to every drawn element. A Theme is chosen once per
// game from config and passed to the draw calls.
type Theme struct {
	Name     string
	Player   core.Color
	Obstacle core.Color
	Ground   core.Color
	Shield   core.Color
	Dash     core.Color
	HUD      core.Color
	Coins    core.Color
	Hearts   core.Color
	Dim      core.Color
	Alert    core.Color
}

var themes = map[string]Theme{
	config.ThemeNormal: {
		Name:     config.ThemeNormal,
		Player:   core.ColorBrightWhite,
		Obstacle: core.ColorGreen,
		Ground:   core.ColorGray,
		Shield:   core.ColorBrightCyan,
		Dash:     core.ColorCyan,
		HUD:      core.ColorDefault,
		Coins:    core.ColorBrightYellow,
		Hearts:   core.ColorBrightRed,
		Dim:      core.ColorGray,
		Alert:    core.ColorBrightMagenta,
	},
	config.ThemePaper: {
		Name:     config.ThemePaper,
		Player:   core.ColorYellow,
		Obstacle: core.ColorOrange,
		Ground:   core.ColorYellow,
		Shield:   core.ColorCyan,
		Dash:     core.ColorOrange,
		HUD:      core.ColorYellow,
		Coins:    core.ColorBrightYellow,
		Hearts:   core.ColorRed,
		Dim:      core.ColorGray,
		Alert:    core.ColorRed,
	},
	// Inverted swaps every hue for its complement
	config.ThemeInverted: {
		Name:     config.ThemeInverted,
		Player:   core.ColorGray,
		Obstacle: core.ColorMagenta,
		Ground:   core.ColorWhite,
		Shield:   core.ColorBrightRed,
		Dash:     core.ColorRed,
		HUD:      core.ColorBrightWhite,
		Coins:    core.ColorBrightBlue,
		Hearts:   core.ColorBrightCyan,
		Dim:      core.ColorWhite,
		Alert:    core.ColorBrightGreen,
	},
}

// ThemeByName returns the named theme, falling back to normal.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[config.ThemeNormal]
}
