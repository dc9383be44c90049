package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/app"
)

// loadConfig reads the environment and applies global flag overrides.
func loadConfig() (*app.Config, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if modelPath != "" {
		cfg.ModelPath = modelPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newApp loads the model and wires all dependencies. A missing model is
// reported with a hint and nothing else runs.
func newApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		if errors.Is(err, model.ErrModelNotFound) {
			return nil, fmt.Errorf("%w\nPlace the trained model at %s or point DIACHECK_MODEL_PATH / --model at it", err, cfg.ModelPath)
		}
		return nil, err
	}
	return a, nil
}
