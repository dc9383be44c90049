package ports

import (
	"context"
	"time"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

// MetricsRecorder records prediction activity to an external observability system.
type MetricsRecorder interface {
	// RecordPrediction records a completed classification and how long inference took.
	RecordPrediction(ctx context.Context, outcome domain.Outcome, took time.Duration)
	// RecordValidationFailure records a rejected submission. Source is "web", "api" or "cli".
	RecordValidationFailure(ctx context.Context, source string)
	// RecordReport records a generated report artifact.
	RecordReport(ctx context.Context, format string)
	// Close shuts down the recorder and flushes any pending metrics.
	Close(ctx context.Context) error
}
