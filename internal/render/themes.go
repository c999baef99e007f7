package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour scheme of the chat panel
type Theme struct {
	Name        string
	Description string

	// Markdown is the glamour style bot replies are rendered with
	Markdown string

	Surface lipgloss.Color
	Border  lipgloss.Color

	// Header bar and toggle button
	Primary   lipgloss.Color
	OnPrimary lipgloss.Color

	UserBubble lipgloss.Color
	UserText   lipgloss.Color
	BotBubble  lipgloss.Color

	Accent lipgloss.Color
	Error  lipgloss.Color

	Text    lipgloss.Color
	TextDim lipgloss.Color
}

var (
	// TokyoNight is the default theme
	TokyoNight = Theme{
		Name:        "tokyonight",
		Description: "Tokyo Night, blue accents",
		Markdown:    StyleTokyoNight,

		Surface: lipgloss.Color("#1a1b26"),
		Border:  lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		OnPrimary: lipgloss.Color("#1a1b26"),

		UserBubble: lipgloss.Color("#7aa2f7"),
		UserText:   lipgloss.Color("#1a1b26"),
		BotBubble:  lipgloss.Color("#24283b"),

		Accent: lipgloss.Color("#bb9af7"),
		Error:  lipgloss.Color("#f7768e"),

		Text:    lipgloss.Color("#c0caf5"),
		TextDim: lipgloss.Color("#565f89"),
	}

	Catppuccin = Theme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha, warm pastels",
		Markdown:    StyleCatppuccin,

		Surface: lipgloss.Color("#1e1e2e"),
		Border:  lipgloss.Color("#45475a"),

		Primary:   lipgloss.Color("#cba6f7"), // Mauve
		OnPrimary: lipgloss.Color("#1e1e2e"),

		UserBubble: lipgloss.Color("#89b4fa"), // Blue
		UserText:   lipgloss.Color("#1e1e2e"),
		BotBubble:  lipgloss.Color("#313244"),

		Accent: lipgloss.Color("#a6e3a1"), // Green
		Error:  lipgloss.Color("#f38ba8"), // Red

		Text:    lipgloss.Color("#cdd6f4"),
		TextDim: lipgloss.Color("#6c7086"),
	}

	Nord = Theme{
		Name:        "nord",
		Description: "Nord, cool arctic tones",
		Markdown:    StyleNord,

		Surface: lipgloss.Color("#2e3440"),
		Border:  lipgloss.Color("#4c566a"),

		Primary:   lipgloss.Color("#88c0d0"), // Frost
		OnPrimary: lipgloss.Color("#2e3440"),

		UserBubble: lipgloss.Color("#5e81ac"),
		UserText:   lipgloss.Color("#eceff4"),
		BotBubble:  lipgloss.Color("#3b4252"),

		Accent: lipgloss.Color("#b48ead"),
		Error:  lipgloss.Color("#bf616a"),

		Text:    lipgloss.Color("#eceff4"),
		TextDim: lipgloss.Color("#7b88a1"),
	}

	Dracula = Theme{
		Name:        "dracula",
		Description: "Dracula, vibrant dark",
		Markdown:    "dracula",

		Surface: lipgloss.Color("#282a36"),
		Border:  lipgloss.Color("#6272a4"),

		Primary:   lipgloss.Color("#bd93f9"),
		OnPrimary: lipgloss.Color("#282a36"),

		UserBubble: lipgloss.Color("#ff79c6"),
		UserText:   lipgloss.Color("#282a36"),
		BotBubble:  lipgloss.Color("#44475a"),

		Accent: lipgloss.Color("#50fa7b"),
		Error:  lipgloss.Color("#ff5555"),

		Text:    lipgloss.Color("#f8f8f2"),
		TextDim: lipgloss.Color("#6272a4"),
	}
)

// Themes returns every built-in theme, default first
func Themes() []Theme {
	return []Theme{TokyoNight, Catppuccin, Nord, Dracula}
}

// ThemeByName looks a theme up by name
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeOrDefault returns the named theme, or TokyoNight when unknown
func ThemeOrDefault(name string) Theme {
	if t, ok := ThemeByName(name); ok {
		return t
	}
	return TokyoNight
}

// ThemeNames returns the names of the built-in themes
func ThemeNames() []string {
	themes := Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
