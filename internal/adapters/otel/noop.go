package otel

import (
	"context"
	"time"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

// NoOpExporter is a metrics recorder that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordPrediction(ctx context.Context, outcome domain.Outcome, took time.Duration) {
}

func (e *NoOpExporter) RecordValidationFailure(ctx context.Context, source string) {}

func (e *NoOpExporter) RecordReport(ctx context.Context, format string) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
