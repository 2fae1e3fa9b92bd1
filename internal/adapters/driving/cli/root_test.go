package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sommelier/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/services"
)

// setupTestServices wires in-memory services and returns a cleanup func.
func setupTestServices() func() {
	oldRec, oldSettings, oldPath := recommendationService, settingsService, configPath

	recommendationService = services.NewRecommendationService(memory.NewDefaultCatalogStore())
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	configPath = ""

	return func() {
		recommendationService, settingsService, configPath = oldRec, oldSettings, oldPath
	}
}

// executeCommand runs rootCmd with args and returns its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// failingRecommendationService always returns err.
type failingRecommendationService struct {
	err error
}

func (f *failingRecommendationService) Top(_ context.Context) ([]domain.Recommendation, error) {
	return nil, f.err
}

// fakeProgram stands in for tea.Program.
type fakeProgram struct {
	model  tea.Model
	runErr error
	sent   []tea.Msg
}

func (f *fakeProgram) Run() (tea.Model, error) {
	return f.model, f.runErr
}

func (f *fakeProgram) Send(msg tea.Msg) {
	f.sent = append(f.sent, msg)
}

// useFakeProgram replaces the program constructor for the test duration.
func useFakeProgram(t *testing.T, p *fakeProgram) {
	t.Helper()
	old := newProgram
	newProgram = func(model tea.Model, _ ...tea.ProgramOption) programRunner {
		p.model = model
		return p
	}
	t.Cleanup(func() { newProgram = old })
}

// useTerminal overrides terminal detection for the test duration.
func useTerminal(t *testing.T, tty bool) {
	t.Helper()
	old := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = old })
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "sommelier", rootCmd.Use)
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestRootCmd_NotTerminalPrintsRecommendations(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	useTerminal(t, false)

	out, err := executeCommand(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Top Recommendations:")
	assert.Contains(t, out, "The Midnight Library")
}

func TestRootCmd_TerminalLaunchesTUI(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	useTerminal(t, true)
	p := &fakeProgram{}
	useFakeProgram(t, p)

	_, err := executeCommand(t)

	require.NoError(t, err)
	assert.NotNil(t, p.model, "program was built with the app model")
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)
	assert.Nil(t, recommendationService)
	assert.Nil(t, settingsService)
	assert.Empty(t, configPath)

	rec := services.NewRecommendationService(memory.NewDefaultCatalogStore())
	SetServices(&Services{Recommendation: rec, ConfigPath: "/tmp/config.toml"})
	assert.Equal(t, rec, recommendationService)
	assert.Equal(t, "/tmp/config.toml", configPath)
}

func TestServicesFactory_ReceivesConfigDir(t *testing.T) {
	oldRec, oldSettings, oldPath := recommendationService, settingsService, configPath
	recommendationService, settingsService, configPath = nil, nil, ""
	defer func() {
		recommendationService, settingsService, configPath = oldRec, oldSettings, oldPath
		SetServicesFactory(nil)
		configDir = ""
	}()

	var gotDir string
	SetServicesFactory(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Recommendation: services.NewRecommendationService(memory.NewDefaultCatalogStore()),
		}, nil
	})

	dir := t.TempDir()
	_, err := executeCommand(t, "--config-dir", dir, "version")

	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.NotNil(t, recommendationService)
}

func TestServicesFactory_Error(t *testing.T) {
	oldRec := recommendationService
	recommendationService = nil
	defer func() {
		recommendationService = oldRec
		SetServicesFactory(nil)
	}()

	SetServicesFactory(func(string) (*Services, error) {
		return nil, errors.New("no home directory")
	})

	_, err := executeCommand(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
}

func TestLogFileFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "sommelier.log")
	defer func() {
		logFile = ""
		verbose = false
	}()

	_, err := executeCommand(t, "--verbose", "--log-file", path, "recommend", "castle")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG]")
	assert.Nil(t, logCloser)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

// chanProgram forwards SettingsChanged messages to a channel.
type chanProgram struct {
	sent chan messages.SettingsChanged
}

func (c *chanProgram) Run() (tea.Model, error) {
	return nil, nil
}

func (c *chanProgram) Send(msg tea.Msg) {
	if m, ok := msg.(messages.SettingsChanged); ok {
		c.sent <- m
	}
}
