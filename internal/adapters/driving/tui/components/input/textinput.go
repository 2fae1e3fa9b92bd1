// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the search field is empty.
const Placeholder = "Enter a book title or describe a plot you love..."

// CharLimit bounds the query length accepted by the field.
const CharLimit = 256

// minWidth is the narrowest text area the field shrinks to.
const minWidth = 20

// SearchInput wraps a bubbles textinput with search-specific styling.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "⌕ "
	ti.Focus()
	ti.CharLimit = CharLimit
	ti.Width = len(Placeholder)

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     len(Placeholder) + 6,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search input.
func (s *SearchInput) View() string {
	if s.textinput.Focused() {
		return s.styles.InputFieldFocused.Render(s.textinput.View())
	}
	return s.styles.InputField.Render(s.textinput.View())
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the total width of the input, border included.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Account for border, padding and prompt
	inputWidth := width - 6
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
