package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/adapters/otel"
	"github.com/emiliopalmerini/diacheck/internal/logger"
	"github.com/emiliopalmerini/diacheck/internal/ports"
	"github.com/emiliopalmerini/diacheck/internal/predictor"
)

// App holds the process-wide dependencies. The model is loaded once here
// and never mutated afterwards.
type App struct {
	Config  *Config
	Logger  *zap.Logger
	Model   *model.Linear
	Metrics ports.MetricsRecorder
	Service *predictor.Service
}

// New loads the model artifact and wires the prediction service. A missing
// artifact is fatal: the returned error wraps model.ErrModelNotFound.
func New(ctx context.Context, cfg *Config) (*App, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	m, err := model.Load(cfg.ModelPath)
	if err != nil {
		if errors.Is(err, model.ErrModelNotFound) {
			log.Error("model file not found", zap.String("path", cfg.ModelPath))
		}
		_ = log.Sync()
		return nil, err
	}
	log.Info("model loaded",
		zap.String("path", m.Path()),
		zap.String("kind", m.Kind()),
	)

	var metrics ports.MetricsRecorder
	exp, err := otel.NewExporter(ctx, cfg.OTEL)
	if err != nil {
		log.Debug("otel exporter disabled", zap.Error(err))
		metrics = otel.NewNoOpExporter()
	} else {
		metrics = exp
	}

	return &App{
		Config:  cfg,
		Logger:  log,
		Model:   m,
		Metrics: metrics,
		Service: predictor.NewService(m, metrics, log),
	}, nil
}

// Close flushes metrics and logs.
func (a *App) Close(ctx context.Context) error {
	err := a.Metrics.Close(ctx)
	_ = a.Logger.Sync()
	return err
}
