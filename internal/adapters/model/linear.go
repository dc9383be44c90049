package model

import (
	"context"
	"math"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

const defaultThreshold = 0.5

// Linear is an immutable linear classifier. It is safe for concurrent use.
type Linear struct {
	kind      string
	mean      domain.Vector
	scale     domain.Vector
	coef      domain.Vector
	intercept float64
	threshold float64
	path      string
}

// NewLinear validates a and builds the classifier it describes.
func NewLinear(a Artifact) (*Linear, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	m := &Linear{
		kind:      a.Kind,
		intercept: a.Intercept,
		threshold: defaultThreshold,
	}
	copy(m.coef[:], a.Coefficients)

	for i := range m.scale {
		m.scale[i] = 1
	}
	if a.Scaler != nil {
		copy(m.mean[:], a.Scaler.Mean)
		copy(m.scale[:], a.Scaler.Scale)
	}
	if a.Threshold != nil {
		m.threshold = *a.Threshold
	}
	return m, nil
}

// Decision returns the signed distance of v from the separating hyperplane.
func (m *Linear) Decision(v domain.Vector) float64 {
	z := m.intercept
	for i, x := range v {
		z += m.coef[i] * (x - m.mean[i]) / m.scale[i]
	}
	return z
}

// Predict returns 1 for the positive class and 0 otherwise.
func (m *Linear) Predict(_ context.Context, v domain.Vector) (int, error) {
	z := m.Decision(v)
	if m.kind == KindLogistic {
		if sigmoid(z) >= m.threshold {
			return 1, nil
		}
		return 0, nil
	}
	if z > 0 {
		return 1, nil
	}
	return 0, nil
}

func (m *Linear) Kind() string       { return m.kind }
func (m *Linear) Path() string       { return m.path }
func (m *Linear) Threshold() float64 { return m.threshold }
func (m *Linear) Scaled() bool       { return m.mean != domain.Vector{} || m.scale != unitScale }

var unitScale = domain.Vector{1, 1, 1, 1, 1, 1, 1, 1}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
