// Package tui provides the terminal chat panel.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatpanel/internal/render"
)

// Style variables (rebuilt by ApplyTheme)
var (
	// Toggle button shown while the panel is closed
	toggleStyle lipgloss.Style

	// Panel frame
	panelStyle lipgloss.Style

	// Header bar
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	closeStyle    lipgloss.Style

	// Message bubbles
	userBubbleStyle lipgloss.Style
	botBubbleStyle  lipgloss.Style

	// Empty conversation
	welcomeStyle lipgloss.Style

	// Thinking indicator
	loadingStyle lipgloss.Style

	// Input row
	inputStyle      lipgloss.Style
	sendButtonStyle lipgloss.Style

	// Status line
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	feedbackStyle   lipgloss.Style
	errorStyle      lipgloss.Style

	// Text colors the input field needs
	colorText    lipgloss.Color
	colorTextDim lipgloss.Color
)

func init() {
	ApplyTheme(render.TokyoNight)
}

// ApplyTheme rebuilds every style from theme
func ApplyTheme(theme render.Theme) {
	colorText = theme.Text
	colorTextDim = theme.TextDim

	toggleStyle = lipgloss.NewStyle().
		Foreground(theme.OnPrimary).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	headerStyle = lipgloss.NewStyle().
		Background(theme.Primary).
		Foreground(theme.OnPrimary).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Foreground(theme.OnPrimary).
		Background(theme.Primary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(theme.OnPrimary).
		Background(theme.Primary).
		Italic(true)

	closeStyle = lipgloss.NewStyle().
		Foreground(theme.OnPrimary).
		Background(theme.Primary)

	userBubbleStyle = lipgloss.NewStyle().
		Foreground(theme.UserText).
		Background(theme.UserBubble).
		Padding(0, 1)

	botBubbleStyle = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BotBubble)

	welcomeStyle = lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(theme.Accent)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(theme.Border)

	sendButtonStyle = lipgloss.NewStyle().
		Foreground(theme.OnPrimary).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(theme.TextDim)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(theme.Accent)

	errorStyle = lipgloss.NewStyle().
		Foreground(theme.Error)
}
