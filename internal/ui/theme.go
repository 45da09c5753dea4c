package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when the configured theme is unknown.
const DefaultTheme = "catppuccin"

type palette struct {
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Muted:  lipgloss.Color("#a6adc8"),
		Accent: lipgloss.Color("#cba6f7"),
		Border: lipgloss.Color("#585b70"),
	},
	"dracula": {
		Muted:  lipgloss.Color("#6272a4"),
		Accent: lipgloss.Color("#ff79c6"),
		Border: lipgloss.Color("#44475a"),
	},
	"gruvbox": {
		Muted:  lipgloss.Color("#a89984"),
		Accent: lipgloss.Color("#fabd2f"),
		Border: lipgloss.Color("#665c54"),
	},
	"solarized_dark": {
		Muted:  lipgloss.Color("#93a1a1"),
		Accent: lipgloss.Color("#b58900"),
		Border: lipgloss.Color("#586e75"),
	},
}

// resolveTheme returns the palette for name and the name actually used.
// Unknown names, including "", render with DefaultTheme.
func resolveTheme(name string) (string, palette) {
	if p, ok := palettes[name]; ok {
		return name, p
	}
	return DefaultTheme, palettes[DefaultTheme]
}

// ThemeNames lists the accepted HEALTHBOT_THEME values, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
