// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour (the submit button).
	Primary lipgloss.Color

	// PrimaryMuted is the accent colour when the button is disabled.
	PrimaryMuted lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// MatchBackground and MatchForeground colour similarity badges.
	MatchBackground lipgloss.Color
	MatchForeground lipgloss.Color

	// TagBackground and TagForeground colour keyword badges.
	TagBackground lipgloss.Color
	TagForeground lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Focus is the border colour of the focused control.
	Focus lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:         lipgloss.Color("#D97706"), // Amber 600
		PrimaryMuted:    lipgloss.Color("#92400E"), // Amber 800
		Foreground:      lipgloss.Color("#E7E5E4"), // Stone 200
		Muted:           lipgloss.Color("#78716C"), // Stone 500
		MatchBackground: lipgloss.Color("#D1FAE5"), // Emerald 100
		MatchForeground: lipgloss.Color("#065F46"), // Emerald 800
		TagBackground:   lipgloss.Color("#F1F5F9"), // Slate 100
		TagForeground:   lipgloss.Color("#334155"), // Slate 700
		Error:           lipgloss.Color("#F38BA8"), // Red
		Border:          lipgloss.Color("#44403C"), // Stone 700
		Focus:           lipgloss.Color("#F59E0B"), // Amber 500
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the page heading.
	Title lipgloss.Style

	// Tagline style for the line under the heading.
	Tagline lipgloss.Style

	// SectionTitle style for section headings.
	SectionTitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for the search box.
	InputField lipgloss.Style

	// InputFieldFocused style for the search box with focus.
	InputFieldFocused lipgloss.Style

	// Button styles for the submit control.
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Card style for a recommendation card.
	Card lipgloss.Style

	// CardTitle style for the book title inside a card.
	CardTitle lipgloss.Style

	// MatchBadge style for the similarity badge.
	MatchBadge lipgloss.Style

	// KeywordBadge style for keyword tags.
	KeywordBadge lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Footer style for the attribution line.
	Footer lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(theme.Primary).
		Padding(0, 2).
		Margin(1, 0, 0, 1)

	input := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Tagline: lipgloss.NewStyle().
			Foreground(theme.Muted),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: input,

		InputFieldFocused: input.
			BorderForeground(theme.Focus),

		Button: button,

		ButtonFocused: button.
			Underline(true),

		ButtonDisabled: button.
			Foreground(theme.Muted).
			Background(theme.PrimaryMuted),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		MatchBadge: lipgloss.NewStyle().
			Foreground(theme.MatchForeground).
			Background(theme.MatchBackground).
			Padding(0, 1),

		KeywordBadge: lipgloss.NewStyle().
			Foreground(theme.TagForeground).
			Background(theme.TagBackground).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#1C1917")).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.Border),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
