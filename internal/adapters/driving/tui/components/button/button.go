// Package button provides a pressable button component for the TUI.
package button

import (
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
)

// Button is a labelled control that can be focused and disabled.
// While busy it shows BusyLabel and is disabled.
type Button struct {
	styles    *styles.Styles
	label     string
	busyLabel string
	busy      bool
	focused   bool
}

// New creates a button with an idle label and a busy label.
func New(s *styles.Styles, label, busyLabel string) *Button {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Button{
		styles:    s,
		label:     label,
		busyLabel: busyLabel,
	}
}

// View renders the button.
func (b *Button) View() string {
	switch {
	case b.busy:
		return b.styles.ButtonDisabled.Render(b.Label())
	case b.focused:
		return b.styles.ButtonFocused.Render("▸ " + b.Label())
	default:
		return b.styles.Button.Render(b.Label())
	}
}

// Label returns the text currently shown.
func (b *Button) Label() string {
	if b.busy {
		return b.busyLabel
	}
	return b.label
}

// SetBusy toggles the busy state. A busy button is disabled.
func (b *Button) SetBusy(busy bool) {
	b.busy = busy
}

// Disabled reports whether presses are ignored.
func (b *Button) Disabled() bool {
	return b.busy
}

// Focus gives the button keyboard focus.
func (b *Button) Focus() {
	b.focused = true
}

// Blur removes keyboard focus.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button has focus.
func (b *Button) Focused() bool {
	return b.focused
}
