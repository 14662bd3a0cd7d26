package plotpage

// Theme selects a color theme for rendered pages.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds theme-specific styling values.
type ThemeConfig struct {
	Background    string
	Surface       string
	Border        string
	TextPrimary   string
	TextMuted     string
	Accent        string
	NodeFill      string
	NodeBorder    string
	EdgeColor     string
	ChartText     string
	ChartTextMute string
}

// GetThemeConfig returns the configuration for a given theme, defaulting to
// light for unknown names.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background:    "#fafaf9",
	Surface:       "#ffffff",
	Border:        "#e7e5e4",
	TextPrimary:   "#1c1917",
	TextMuted:     "#78716c",
	Accent:        "#a16207",
	NodeFill:      "#ffffff",
	NodeBorder:    "#1c1917",
	EdgeColor:     "#78716c",
	ChartText:     "#44403c",
	ChartTextMute: "#78716c",
}

var darkTheme = ThemeConfig{
	Background:    "#0c0a09",
	Surface:       "#1c1917",
	Border:        "#292524",
	TextPrimary:   "#fafaf9",
	TextMuted:     "#a8a29e",
	Accent:        "#fbbf24",
	NodeFill:      "#1c1917",
	NodeBorder:    "#fafaf9",
	EdgeColor:     "#a8a29e",
	ChartText:     "#d6d3d1",
	ChartTextMute: "#a8a29e",
}
