package render

import "github.com/charmbracelet/lipgloss"

// Theme is a color scheme shared by the TUI dashboard and SVG export.
// Series lists the per-series stroke colors in assignment order.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Background string
	Series     []string
}

var (
	ThemePhosphor = Theme{
		Name:       "phosphor",
		Primary:    lipgloss.Color("#00ff88"),
		Accent:     lipgloss.Color("#88ff88"),
		Muted:      lipgloss.Color("#005500"),
		Error:      lipgloss.Color("#ff4444"),
		Background: "#001100",
		Series:     []string{"#00ff88", "#ffcc00", "#00ccff", "#ff6b6b", "#ff9ff3", "#feca57"},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Muted:      lipgloss.Color("#4488aa"),
		Error:      lipgloss.Color("#ff4444"),
		Background: "#001a33",
		Series:     []string{"#00a8cc", "#ffd700", "#00ff88", "#ff6b6b", "#e0f0ff", "#ffcc00"},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Muted:      lipgloss.Color("#888888"),
		Error:      lipgloss.Color("#ff0000"),
		Background: "#000000",
		Series:     []string{"#ffffff", "#0088ff", "#00ff00", "#ffaa00", "#ff0000", "#888888"},
	}

	Themes = []Theme{ThemePhosphor, ThemeOcean, ThemeMinimal}

	currentTheme = ThemePhosphor
)

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

func CurrentTheme() Theme { return currentTheme }

func SetTheme(name string) { currentTheme = GetTheme(name) }

// SeriesColor cycles through the theme's series palette.
func (t Theme) SeriesColor(i int) string {
	if len(t.Series) == 0 {
		return "#ffffff"
	}
	return t.Series[i%len(t.Series)]
}
