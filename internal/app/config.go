package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/adapters/otel"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	ModelPath       string        `envconfig:"MODEL_PATH" default:"trained_model.yaml"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OTEL otel.Config `envconfig:"OTEL"`
}

// envPrefix namespaces every variable, e.g. DIACHECK_MODEL_PATH.
const envPrefix = "DIACHECK"

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = model.DefaultPath
	}
	return &cfg, nil
}
