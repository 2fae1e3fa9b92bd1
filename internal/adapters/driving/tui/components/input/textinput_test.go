package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewSearchInput(s)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	cmd := input.Init()

	// Blink command should be returned
	assert.NotNil(t, cmd)
}

func TestSearchInput_Update(t *testing.T) {
	input := NewSearchInput(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, _ := input.Update(msg)

	assert.Equal(t, input, updated)
	assert.Equal(t, "a", input.Value())
}

func TestSearchInput_View_ShowsPlaceholder(t *testing.T) {
	input := NewSearchInput(nil)

	view := input.View()

	assert.Contains(t, view, "Enter a book title")
}

func TestSearchInput_SetValue(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("castle")

	assert.Equal(t, "castle", input.Value())
}

func TestSearchInput_CharLimit(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue(strings.Repeat("x", CharLimit+10))

	assert.Len(t, input.Value(), CharLimit)
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)
	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(80)
	assert.Equal(t, 80, input.Width())
	assert.Equal(t, 74, input.textinput.Width)

	input.SetWidth(5)
	assert.Equal(t, minWidth, input.textinput.Width)
}

func TestSearchInput_Reset(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("castle")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
