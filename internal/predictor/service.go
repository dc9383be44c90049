package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/ports"
)

// Result is a validated submission together with its classification.
type Result struct {
	Features domain.Features
	Class    int
	Outcome  domain.Outcome
}

// Label is the display string for the result.
func (r *Result) Label() string {
	return r.Outcome.Label()
}

// Service runs the validate, classify, label chain. The classifier is
// loaded once at startup and never mutated, so a Service may be shared
// between requests.
type Service struct {
	classifier ports.Classifier
	metrics    ports.MetricsRecorder
	logger     *zap.Logger
}

// NewService creates a Service. A nil metrics recorder or logger disables
// that concern.
func NewService(classifier ports.Classifier, metrics ports.MetricsRecorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		classifier: classifier,
		metrics:    metrics,
		logger:     logger,
	}
}

// Predict validates raw and classifies it. A *domain.ValidationError is
// returned untouched when any field is bad; the classifier is not called.
func (s *Service) Predict(ctx context.Context, raw domain.RawInput, source string) (*Result, error) {
	features, err := domain.Validate(raw)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.logger.Warn("validation failed",
				zap.String("source", source),
				zap.Strings("fields", verr.Fields),
			)
			if s.metrics != nil {
				s.metrics.RecordValidationFailure(ctx, source)
			}
		}
		return nil, err
	}

	class, outcome, err := s.Classify(ctx, features.Vector)
	if err != nil {
		return nil, err
	}

	s.logger.Info("prediction",
		zap.String("source", source),
		zap.Int("class", class),
		zap.String("label", outcome.Label()),
	)

	return &Result{
		Features: features,
		Class:    class,
		Outcome:  outcome,
	}, nil
}

// Classify invokes the model on an already validated vector and maps the
// raw class to an outcome.
func (s *Service) Classify(ctx context.Context, v domain.Vector) (int, domain.Outcome, error) {
	start := time.Now()
	class, err := s.classifier.Predict(ctx, v)
	if err != nil {
		return 0, 0, fmt.Errorf("model prediction failed: %w", err)
	}

	outcome := domain.OutcomeFromClass(class)
	if s.metrics != nil {
		s.metrics.RecordPrediction(ctx, outcome, time.Since(start))
	}
	return class, outcome, nil
}
