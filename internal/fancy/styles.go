package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ToolStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	GroupStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	EndpointStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ToolText styles a tool name
func ToolText(text string) string {
	return ToolStyle.Render(text)
}

// GroupText styles a tool group header
func GroupText(text string) string {
	return GroupStyle.Render(text)
}

// EndpointText styles an endpoint or URL
func EndpointText(text string) string {
	return EndpointStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return GroupStyle.Render(text)
}
