package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorPrimary   = "6"  // Cyan
	ColorSecondary = "62" // Purple
	ColorSuccess   = "10" // Green
	ColorWarning   = "11" // Yellow
	ColorError     = "9"  // Red
	ColorMuted     = "8"  // Gray
	ColorNormal    = "7"  // White
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Width(24)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSecondary)).
			Padding(1)

	NotificationSuccessStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color(ColorSuccess)).
					Bold(true).
					Padding(0, 1)

	NotificationErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError)).
				Bold(true).
				Padding(0, 1)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPrimary)).
			Padding(1, 2).
			Width(72)

	InputTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary))
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders error text
func RenderError(text string) string {
	return ErrorStyle.Render(text)
}

// RenderSuccess renders success text
func RenderSuccess(text string) string {
	return SuccessStyle.Render(text)
}

// RenderWarning renders warning text
func RenderWarning(text string) string {
	return WarningStyle.Render(text)
}

// RenderMuted renders muted text
func RenderMuted(text string) string {
	return MutedStyle.Render(text)
}

// RenderInBox renders text in a bordered box
func RenderInBox(content string) string {
	return BoxStyle.Render(content)
}
