package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Bar)
		contains []string
		excludes []string
	}{
		{
			name:     "ready",
			setup:    func(_ *Bar) {},
			contains: []string{"Ready", "enter: analyze", "ctrl+c: quit"},
		},
		{
			name:     "ready with count",
			setup:    func(b *Bar) { b.SetCount(5) },
			contains: []string{"5 recommendations"},
		},
		{
			name: "analyzing",
			setup: func(b *Bar) {
				b.SetState(StateAnalyzing)
				b.SetIndicator("*")
			},
			contains: []string{"* Analyzing...", "f1: help"},
			excludes: []string{"enter: analyze"},
		},
		{
			name: "error with message",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("catalog unavailable")
			},
			contains: []string{"Error: catalog unavailable"},
		},
		{
			name:     "error without message",
			setup:    func(b *Bar) { b.SetState(StateError) },
			contains: []string{"Error"},
		},
		{
			name:     "help",
			setup:    func(b *Bar) { b.SetState(StateHelp) },
			contains: []string{"Help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.setup(bar)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, view, unwanted)
			}
		})
	}
}

func TestStatusBar_SetState_ClearsIndicator(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateAnalyzing)
	bar.SetIndicator("*")

	bar.SetState(StateReady)

	assert.Empty(t, bar.indicator)
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCount(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.Count())
}
