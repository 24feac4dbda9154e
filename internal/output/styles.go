package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	ColorRed        = lipgloss.Color("#FF006F")
	ColorGreen      = lipgloss.Color("#73FF66")
	ColorBlue       = lipgloss.Color("#4DD2FF")
	ColorGold       = lipgloss.Color("#FFE14D")
	ColorPurple     = lipgloss.Color("#C380FF")
	ColorMediumGray = lipgloss.Color("#B3B3B3")
	ColorDarkGray   = lipgloss.Color("#808080")
)

// Semantic styles.
var (
	// StyleNoun styles component names and directories being announced.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)

	// StylePath styles full filesystem paths.
	StylePath = lipgloss.NewStyle().Foreground(ColorPurple)

	// StyleLabel styles field labels.
	StyleLabel = lipgloss.NewStyle().Foreground(ColorMediumGray)

	// StyleSelected styles the chosen option in a list.
	StyleSelected = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)

	// StyleDim styles unselected options and separators.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDarkGray)

	// StyleDelimiter styles banner rules.
	StyleDelimiter = lipgloss.NewStyle().Foreground(ColorPurple)

	// StyleSuccess styles completion lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleError styles error banners and details.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	return StyleSuccess.Render("✅") + " " + msg
}
