package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Verdict styles
var (
	InvalidStyle = lipgloss.NewStyle().
			Foreground(ColorInvalid).
			Bold(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorNote)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorValid).
			Bold(true)
)

// Table styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	TableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelectedFg).
				Background(ColorSelectedBg).
				Bold(false)
)

// Detail pane styles
var (
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Width(18)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// ValidityLabel renders a coloured valid/invalid marker
func ValidityLabel(valid bool) string {
	if valid {
		return ValidStyle.Render("✓ valid")
	}
	return InvalidStyle.Render("✗ invalid")
}
