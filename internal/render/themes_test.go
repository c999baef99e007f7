package render

import (
	"slices"
	"testing"
)

func TestThemesComplete(t *testing.T) {
	for _, theme := range Themes() {
		t.Run(theme.Name, func(t *testing.T) {
			colors := map[string]string{
				"Surface":    string(theme.Surface),
				"Border":     string(theme.Border),
				"Primary":    string(theme.Primary),
				"OnPrimary":  string(theme.OnPrimary),
				"UserBubble": string(theme.UserBubble),
				"UserText":   string(theme.UserText),
				"BotBubble":  string(theme.BotBubble),
				"Accent":     string(theme.Accent),
				"Error":      string(theme.Error),
				"Text":       string(theme.Text),
				"TextDim":    string(theme.TextDim),
			}
			for field, c := range colors {
				if c == "" {
					t.Errorf("%s is empty", field)
				}
			}
			if theme.Description == "" {
				t.Error("Description is empty")
			}
			if !IsBuiltinStyle(theme.Markdown) {
				t.Errorf("markdown style %q is not built in", theme.Markdown)
			}
		})
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"tokyonight", "catppuccin", "nord", "dracula"} {
		if _, ok := ThemeByName(name); !ok {
			t.Errorf("ThemeByName(%q) not found", name)
		}
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Error("unknown theme should not be found")
	}
	if ThemeOrDefault("solarized").Name != TokyoNight.Name {
		t.Error("ThemeOrDefault should fall back to tokyonight")
	}
	if ThemeNames()[0] != "tokyonight" {
		t.Errorf("default theme should be listed first, got %v", ThemeNames())
	}
}

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "dark"},
		{"tokyonight", "tokyo-night"},
		{"catppuccin", "dark"},
		{"light", "light"},
		{"/tmp/custom.json", "/tmp/custom.json"},
	}
	for _, tt := range tests {
		if got := ResolveStyle(tt.in); got != tt.want {
			t.Errorf("ResolveStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if IsBuiltinStyle("/tmp/custom.json") {
		t.Error("a file path is not a built-in style")
	}
	names := StyleNames()
	for _, n := range []string{"dark", "light", "tokyonight", "dracula"} {
		if !slices.Contains(names, n) {
			t.Errorf("StyleNames() missing %q: %v", n, names)
		}
	}
}
