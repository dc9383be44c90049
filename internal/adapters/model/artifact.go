package model

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

// DefaultPath is where the trained model artifact is looked up when no
// other path is configured.
const DefaultPath = "trained_model.yaml"

// ErrModelNotFound is returned when the artifact does not exist.
var ErrModelNotFound = errors.New("model file not found")

const (
	KindLogistic  = "logistic"
	KindLinearSVM = "linear_svm"
)

// Artifact is the serialized form of a trained linear classifier.
// YAML is a superset of JSON so JSON exports load as well.
type Artifact struct {
	Kind         string    `yaml:"kind"`
	Features     []string  `yaml:"features,omitempty"`
	Scaler       *Scaler   `yaml:"scaler,omitempty"`
	Coefficients []float64 `yaml:"coefficients"`
	Intercept    float64   `yaml:"intercept"`
	Threshold    *float64  `yaml:"threshold,omitempty"`
}

// Scaler standardises each feature as (x - mean) / scale before the
// coefficients are applied.
type Scaler struct {
	Mean  []float64 `yaml:"mean"`
	Scale []float64 `yaml:"scale"`
}

// Load reads and decodes the artifact at path and returns a ready classifier.
func Load(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	m.path = path
	return m, nil
}

// Decode parses an artifact document.
func Decode(data []byte) (*Linear, error) {
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}
	return NewLinear(a)
}

func (a Artifact) validate() error {
	switch a.Kind {
	case KindLogistic, KindLinearSVM:
	case "":
		return errors.New("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}

	if len(a.Coefficients) != domain.FeatureCount {
		return fmt.Errorf("expected %d coefficients, got %d", domain.FeatureCount, len(a.Coefficients))
	}

	for i, c := range a.Coefficients {
		if !finite(c) {
			return fmt.Errorf("coefficient for %s is not finite", domain.FeatureOrder[i].Key)
		}
	}
	if !finite(a.Intercept) {
		return errors.New("intercept is not finite")
	}

	if len(a.Features) > 0 && !slices.Equal(a.Features, domain.FeatureKeys()) {
		return fmt.Errorf("feature order %v does not match %v", a.Features, domain.FeatureKeys())
	}

	if a.Scaler != nil {
		if len(a.Scaler.Mean) != domain.FeatureCount || len(a.Scaler.Scale) != domain.FeatureCount {
			return fmt.Errorf("scaler must have %d means and scales", domain.FeatureCount)
		}
		for i := range domain.FeatureOrder {
			key := domain.FeatureOrder[i].Key
			if !finite(a.Scaler.Mean[i]) {
				return fmt.Errorf("scaler mean for %s is not finite", key)
			}
			switch s := a.Scaler.Scale[i]; {
			case !finite(s):
				return fmt.Errorf("scaler scale for %s is not finite", key)
			case s == 0:
				return fmt.Errorf("scaler scale for %s is zero", key)
			}
		}
	}

	if a.Threshold != nil {
		if a.Kind != KindLogistic {
			return errors.New("threshold only applies to logistic models")
		}
		if t := *a.Threshold; !(t > 0 && t < 1) {
			return fmt.Errorf("threshold %v must be within (0, 1)", *a.Threshold)
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
