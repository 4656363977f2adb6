package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Accent colors used by the banner and spinner animation.
const (
	ColorNeonPink lipgloss.Color = "13" // Bright magenta
	ColorNeonCyan lipgloss.Color = "14" // Bright cyan
)

// GradientColors is the animation palette the spinner cycles through.
var GradientColors = []lipgloss.Color{
	ColorNeonPink,
	ColorSecondary,
	ColorNeonCyan,
	ColorSuccess,
}
