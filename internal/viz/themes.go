package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeRose = Theme{
		Name:       "rose",
		Primary:    lipgloss.Color("#c475a0"), // Petal pink
		Secondary:  lipgloss.Color("#4caf50"), // Stem green
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#1a0933"),
		Text:       lipgloss.Color("#f8eef4"),
		Muted:      lipgloss.Color("#8a6f9a"),
		Success:    lipgloss.Color("#4caf50"),
		Warning:    lipgloss.Color("#ffd700"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeMeadow = Theme{
		Name:       "meadow",
		Primary:    lipgloss.Color("#7bd389"),
		Secondary:  lipgloss.Color("#f6d55c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#0f2417"),
		Text:       lipgloss.Color("#eefbea"),
		Muted:      lipgloss.Color("#5d7f62"),
		Success:    lipgloss.Color("#7bd389"),
		Warning:    lipgloss.Color("#f6d55c"),
		Error:      lipgloss.Color("#ff6b6b"),
	}

	ThemeNight = Theme{
		Name:       "night",
		Primary:    lipgloss.Color("#9d8cff"),
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#0b0b1e"),
		Text:       lipgloss.Color("#e0e6ff"),
		Muted:      lipgloss.Color("#4c5580"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	// Default theme
	CurrentTheme = ThemeRose

	// All available themes
	Themes = []Theme{
		ThemeRose,
		ThemeMeadow,
		ThemeNight,
		ThemeSunset,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to rose.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRose
}

// SetTheme changes the current theme and restyles the shared styles.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

// NextTheme returns the name of the theme after name, wrapping around.
func NextTheme(name string) string {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)].Name
		}
	}
	return Themes[0].Name
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
