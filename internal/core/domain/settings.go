package domain

import (
	"fmt"
	"time"
)

// Analysis delay bounds.
const (
	// DefaultAnalyzeDelay is how long a submitted query stays busy.
	DefaultAnalyzeDelay = time.Second

	// MaxAnalyzeDelay caps the configurable delay.
	MaxAnalyzeDelay = time.Minute

	// AnalyzeDelayResolution is the granularity the delay is stored at.
	AnalyzeDelayResolution = time.Millisecond
)

// AnalysisSettings configures the simulated analysis.
type AnalysisSettings struct {
	// Delay is the time between a submission and its return to idle.
	Delay time.Duration
}

// AppSettings contains all user-configurable settings.
type AppSettings struct {
	Analysis AnalysisSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Analysis: AnalysisSettings{
			Delay: DefaultAnalyzeDelay,
		},
	}
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	return ValidateAnalyzeDelay(s.Analysis.Delay)
}

// ValidateAnalyzeDelay checks d lies in (0, MaxAnalyzeDelay] and is a
// whole number of milliseconds.
func ValidateAnalyzeDelay(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: analysis delay must be positive, got %s", ErrInvalidInput, d)
	}
	if d%AnalyzeDelayResolution != 0 {
		return fmt.Errorf("%w: analysis delay %s is not a whole number of milliseconds", ErrInvalidInput, d)
	}
	if d > MaxAnalyzeDelay {
		return fmt.Errorf("%w: analysis delay %s exceeds %s", ErrInvalidInput, d, MaxAnalyzeDelay)
	}
	return nil
}
