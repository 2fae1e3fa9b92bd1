package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.PrimaryMuted))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.MatchBackground))
	assert.NotEmpty(t, string(theme.TagBackground))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
	assert.NotEmpty(t, string(theme.Focus))
}

func TestDefaultTheme_BadgesAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEqual(t, theme.MatchBackground, theme.TagBackground)
	assert.NotEqual(t, theme.MatchForeground, theme.TagForeground)
	assert.NotEqual(t, theme.Primary, theme.PrimaryMuted)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	// All style fields should be initialised (not zero-value)
	for name, style := range map[string]lipgloss.Style{
		"Title":             styles.Title,
		"Tagline":           styles.Tagline,
		"SectionTitle":      styles.SectionTitle,
		"Normal":            styles.Normal,
		"Muted":             styles.Muted,
		"Error":             styles.Error,
		"InputField":        styles.InputField,
		"InputFieldFocused": styles.InputFieldFocused,
		"Button":            styles.Button,
		"ButtonFocused":     styles.ButtonFocused,
		"ButtonDisabled":    styles.ButtonDisabled,
		"Card":              styles.Card,
		"CardTitle":         styles.CardTitle,
		"MatchBadge":        styles.MatchBadge,
		"KeywordBadge":      styles.KeywordBadge,
		"StatusBar":         styles.StatusBar,
		"Footer":            styles.Footer,
		"Help":              styles.Help,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
	}
}

func TestStyles_CanRenderText(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.MatchBadge.Render("92% Match"), "92% Match")
	assert.Contains(t, styles.KeywordBadge.Render("Fantasy"), "Fantasy")
	assert.Contains(t, styles.ButtonDisabled.Render("Analyzing..."), "Analyzing...")
}
