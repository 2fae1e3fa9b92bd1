package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sommelier/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
	assert.Equal(t, "show", settingsShowCmd.Use)
	assert.Equal(t, "set-delay [duration]", settingsSetDelayCmd.Use)
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Analysis]")
	assert.Contains(t, out, "Delay: 1s (default)")
	assert.NotContains(t, out, "Config file:")
}

func TestSettings_BareCommandShows(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	configPath = "/home/reader/.sommelier/config.toml"

	out, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Config file: /home/reader/.sommelier/config.toml")
}

func TestSettingsSetDelay(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "settings", "set-delay", "1500ms")
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis delay set to 1.5s")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, settings.Analysis.Delay)

	out, err = executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Delay: 1.5s")
	assert.NotContains(t, out, "(default)")
}

func TestSettingsSetDelay_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		arg  string
	}{
		{name: "not a duration", arg: "soon"},
		{name: "zero", arg: "0s"},
		{name: "negative", arg: "-1s"},
		{name: "too long", arg: "2m"},
		{name: "sub millisecond", arg: "500us"},
		{name: "fractional millisecond", arg: "1.5ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "settings", "set-delay", tt.arg)
			assert.Error(t, err)
		})
	}

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAnalyzeDelay, settings.Analysis.Delay)
}

func TestSettingsSetDelay_RequiresArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "settings", "set-delay")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSettings_ServiceNotConfigured(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	_, err := executeCommand(t, "settings", "show")
	assert.ErrorIs(t, err, errNoSettingsService)

	_, err = executeCommand(t, "settings", "set-delay", "1s")
	assert.ErrorIs(t, err, errNoSettingsService)
}
