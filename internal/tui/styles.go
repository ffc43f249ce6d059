// Package tui provides the terminal user interface for firechat.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyonight-ish palette.
var (
	colorBorder    = lipgloss.Color("#3b4261")
	colorPrimary   = lipgloss.Color("#7aa2f7")
	colorSecondary = lipgloss.Color("#bb9af7")
	colorAccent    = lipgloss.Color("#7dcfff")
	colorWarning   = lipgloss.Color("#e0af68")
	colorSuccess   = lipgloss.Color("#9ece6a")
	colorText      = lipgloss.Color("#c0caf5")
	colorTextDim   = lipgloss.Color("#565f89")
	colorTextMute  = lipgloss.Color("#3b4261")
)

// Gradient colors for the animated loading indicator
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}

var (
	// Header panel style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginBottom(1)

	// Title style for header
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle/status label style
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Hint text style
	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			Italic(true)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1)

	// User message bubble
	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 1).
			MarginLeft(4)

	// User label style
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			MarginLeft(4)

	// Agent message bubble
	agentBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginRight(4)

	// Agent label style
	agentLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Tools-used line under an agent reply
	toolsUsedStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true).
			MarginLeft(2)

	// Timestamp next to labels
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginTop(1)

	// Input label style
	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginRight(1)

	// Loading/spinner style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Fallback warning style
	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Success flash style
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Tool panel overlay styles
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1)

	panelItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)
)
