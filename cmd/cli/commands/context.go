package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-rota/internal/config"
)

// AppContext holds the dependencies shared across all commands.
type AppContext struct {
	Logger *zap.Logger

	// ConfigPath is the explicit --config value; empty means the
	// default search (working directory, then home directory).
	ConfigPath string
}

// LoadConfig resolves the configuration for a command, honoring the
// --config flag when given.
func (app *AppContext) LoadConfig() (*config.Config, error) {
	if app.ConfigPath != "" {
		cfg, err := config.LoadFromPath(app.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", app.ConfigPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
