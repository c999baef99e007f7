package render

import (
	"sort"

	"github.com/charmbracelet/glamour/styles"
)

// Markdown style names accepted in config and GLAMOUR_STYLE, on top of
// glamour's own.
const (
	StyleDark       = styles.DarkStyle
	StyleLight      = styles.LightStyle
	StyleTokyoNight = "tokyonight"
	StyleCatppuccin = "catppuccin"
	StyleNord       = "nord"
)

// styleAliases maps panel theme names onto the closest glamour style
var styleAliases = map[string]string{
	StyleTokyoNight: styles.TokyoNightStyle,
	StyleCatppuccin: styles.DarkStyle,
	StyleNord:       styles.DarkStyle,
}

// ResolveStyle returns the glamour style name or style file path for name.
// Unknown names are returned unchanged so glamour can treat them as paths.
func ResolveStyle(name string) string {
	if name == "" {
		return styles.DarkStyle
	}
	if alias, ok := styleAliases[name]; ok {
		return alias
	}
	return name
}

// IsBuiltinStyle reports whether name needs no style file on disk.
func IsBuiltinStyle(name string) bool {
	resolved := ResolveStyle(name)
	if resolved == styles.AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[resolved]
	return ok
}

// StyleNames lists the built-in markdown styles, aliases included.
func StyleNames() []string {
	names := make([]string, 0, len(styles.DefaultStyles)+len(styleAliases))
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	for alias := range styleAliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
