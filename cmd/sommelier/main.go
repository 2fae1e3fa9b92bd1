// Command sommelier is a terminal book recommendation browser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sommelier/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sommelier/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/cli"
	"github.com/custodia-labs/sommelier/internal/core/ports/driven"
	"github.com/custodia-labs/sommelier/internal/core/services"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServicesFactory(buildServices)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the core services. Settings fall back to an
// in-memory store when the config directory is unusable.
func buildServices(configDir string) (*cli.Services, error) {
	var (
		configStore driven.ConfigStore
		configPath  string
	)

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, settings will not persist: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = store
		configPath = store.Path()
	}

	catalog := memory.NewDefaultCatalogStore()
	if _, err := catalog.List(context.Background()); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return &cli.Services{
		Recommendation: services.NewRecommendationService(catalog),
		Settings:       services.NewSettingsService(configStore),
		ConfigPath:     configPath,
	}, nil
}
