package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/prefs"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       prefs.Theme
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Particle   lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       prefs.Dark,
		Primary:    lipgloss.Color("#64ffda"), // Teal
		Secondary:  lipgloss.Color("#8892b0"),
		Accent:     lipgloss.Color("#ff6b9d"),
		Background: lipgloss.Color("#0a192f"),
		Surface:    lipgloss.Color("#112240"),
		Text:       lipgloss.Color("#ccd6f6"),
		Muted:      lipgloss.Color("#495670"),
		Particle:   lipgloss.Color("#64ffda"),
	}

	ThemeLight = Theme{
		Name:       prefs.Light,
		Primary:    lipgloss.Color("#0d9488"),
		Secondary:  lipgloss.Color("#475569"),
		Accent:     lipgloss.Color("#db2777"),
		Background: lipgloss.Color("#f8fafc"),
		Surface:    lipgloss.Color("#e2e8f0"),
		Text:       lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#94a3b8"),
		Particle:   lipgloss.Color("#0d9488"),
	}
)

// GetTheme returns the palette for a preference. Unknown values get the dark
// palette.
func GetTheme(t prefs.Theme) Theme {
	if t == prefs.Light {
		return ThemeLight
	}
	return ThemeDark
}
