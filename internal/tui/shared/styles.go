package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants.
const (
	// DefaultPadding is the width taken by a box border and its padding on one side
	DefaultPadding = 2
	// EllipsisLength is the length of the "..." marker on truncated text
	EllipsisLength = 3

	// KeyCtrlC is the key binding for cancellation
	KeyCtrlC = "ctrl+c"
	// PromptArrow marks the selected row
	PromptArrow = "▶ "
)

// Palette entries, as 256-color codes.
const (
	ColorAccent    lipgloss.Color = "62"  // Blue
	ColorDim       lipgloss.Color = "240" // Dark gray
	ColorError     lipgloss.Color = "196" // Red
	ColorHighlight lipgloss.Color = "86"  // Cyan
	ColorNormal    lipgloss.Color = "252" // Light gray
	ColorPrimary   lipgloss.Color = "205" // Pink/purple
)

// EntryStyle returns the style for one listing row.
func EntryStyle(isDir, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(ColorNormal)

	if isDir {
		style = style.Foreground(ColorAccent).Bold(true)
	}

	if selected {
		style = style.Foreground(ColorHighlight).Bold(true)
	}

	return style
}

// ErrorStyle returns the style for the "Error:" label
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}

// RenderBox renders content in a rounded box
func RenderBox(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1).
		Render(content)
}

// RenderDim renders secondary text such as sizes and key help
func RenderDim(text string) string {
	return lipgloss.NewStyle().Foreground(ColorDim).Render(text)
}

// RenderTitle renders the current directory heading
func RenderTitle(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1).
		Render(text)
}
