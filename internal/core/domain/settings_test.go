package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, time.Second, s.Analysis.Delay)
	require.NoError(t, s.Validate())
}

// TestValidateAnalyzeDelay tests the accepted delay range
func TestValidateAnalyzeDelay(t *testing.T) {
	tests := []struct {
		name    string
		delay   time.Duration
		wantErr bool
	}{
		{name: "default", delay: DefaultAnalyzeDelay},
		{name: "one millisecond", delay: time.Millisecond},
		{name: "maximum", delay: MaxAnalyzeDelay},
		{name: "zero", delay: 0, wantErr: true},
		{name: "negative", delay: -time.Second, wantErr: true},
		{name: "over maximum", delay: MaxAnalyzeDelay + time.Millisecond, wantErr: true},
		{name: "below a millisecond", delay: 500 * time.Microsecond, wantErr: true},
		{name: "fractional millisecond", delay: 1500 * time.Microsecond, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnalyzeDelay(tt.delay)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}
