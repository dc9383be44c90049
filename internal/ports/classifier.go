package ports

import (
	"context"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

// Classifier is a pre-trained binary model. Implementations must be
// deterministic and safe for concurrent use once loaded.
type Classifier interface {
	// Predict returns the raw class for a feature vector in domain.FeatureOrder.
	Predict(ctx context.Context, v domain.Vector) (int, error)
}
