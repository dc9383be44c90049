package model_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/domain"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := model.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, model.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestLoad_BundledArtifact(t *testing.T) {
	m, err := model.Load(filepath.Join("..", "..", "..", model.DefaultPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Kind() != model.KindLogistic {
		t.Errorf("expected logistic model, got %s", m.Kind())
	}
	if !m.Scaled() {
		t.Error("expected bundled model to carry a scaler")
	}

	ctx := context.Background()

	low := domain.Vector{2, 120, 70, 20, 80, 25.0, 0.5, 33}
	if class, _ := m.Predict(ctx, low); class != 0 {
		t.Errorf("expected class 0 for low-risk example, got %d", class)
	}

	high := domain.Vector{8, 190, 80, 35, 200, 40, 1.2, 55}
	if class, _ := m.Predict(ctx, high); class != 1 {
		t.Errorf("expected class 1 for high-risk example, got %d", class)
	}
}

func TestLoad_AcceptsJSON(t *testing.T) {
	path := writeArtifact(t, `{"kind": "linear_svm", "coefficients": [0, 1, 0, 0, 0, 0, 0, 0], "intercept": -100}`)

	m, err := model.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Path() != path {
		t.Errorf("Path() = %s, want %s", m.Path(), path)
	}

	ctx := context.Background()
	if class, _ := m.Predict(ctx, domain.Vector{0, 150}); class != 1 {
		t.Errorf("expected class 1 above the hyperplane, got %d", class)
	}
	if class, _ := m.Predict(ctx, domain.Vector{0, 100}); class != 0 {
		t.Errorf("expected class 0 on the hyperplane, got %d", class)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing kind",
			body:    "coefficients: [1, 1, 1, 1, 1, 1, 1, 1]",
			wantErr: "missing kind",
		},
		{
			name:    "unknown kind",
			body:    "kind: random_forest\ncoefficients: [1, 1, 1, 1, 1, 1, 1, 1]",
			wantErr: "unknown kind",
		},
		{
			name:    "wrong coefficient count",
			body:    "kind: logistic\ncoefficients: [1, 1, 1]",
			wantErr: "expected 8 coefficients",
		},
		{
			name: "reordered features",
			body: `kind: logistic
features: [glucose, pregnancies, blood_pressure, skin_thickness, insulin, bmi, diabetes_pedigree, age]
coefficients: [1, 1, 1, 1, 1, 1, 1, 1]`,
			wantErr: "feature order",
		},
		{
			name: "zero scale",
			body: `kind: logistic
scaler:
  mean: [0, 0, 0, 0, 0, 0, 0, 0]
  scale: [1, 1, 0, 1, 1, 1, 1, 1]
coefficients: [1, 1, 1, 1, 1, 1, 1, 1]`,
			wantErr: "blood_pressure is zero",
		},
		{
			name:    "threshold out of range",
			body:    "kind: logistic\ncoefficients: [1, 1, 1, 1, 1, 1, 1, 1]\nthreshold: 1.5",
			wantErr: "must be within",
		},
		{
			name:    "nan coefficient",
			body:    "kind: logistic\ncoefficients: [.nan, 1, 1, 1, 1, 1, 1, 1]",
			wantErr: "coefficient for pregnancies is not finite",
		},
		{
			name:    "infinite coefficient",
			body:    "kind: linear_svm\ncoefficients: [1, 1, 1, 1, 1, 1, 1, -.inf]",
			wantErr: "coefficient for age is not finite",
		},
		{
			name:    "nan intercept",
			body:    "kind: linear_svm\ncoefficients: [1, 1, 1, 1, 1, 1, 1, 1]\nintercept: .nan",
			wantErr: "intercept is not finite",
		},
		{
			name: "nan scaler mean",
			body: `kind: logistic
scaler:
  mean: [0, 0, 0, 0, .nan, 0, 0, 0]
  scale: [1, 1, 1, 1, 1, 1, 1, 1]
coefficients: [1, 1, 1, 1, 1, 1, 1, 1]`,
			wantErr: "scaler mean for insulin is not finite",
		},
		{
			name: "infinite scale",
			body: `kind: logistic
scaler:
  mean: [0, 0, 0, 0, 0, 0, 0, 0]
  scale: [1, 1, 1, 1, 1, .inf, 1, 1]
coefficients: [1, 1, 1, 1, 1, 1, 1, 1]`,
			wantErr: "scaler scale for bmi is not finite",
		},
		{
			name:    "nan threshold",
			body:    "kind: logistic\ncoefficients: [1, 1, 1, 1, 1, 1, 1, 1]\nthreshold: .nan",
			wantErr: "must be within",
		},
		{
			name:    "threshold on svm",
			body:    "kind: linear_svm\ncoefficients: [1, 1, 1, 1, 1, 1, 1, 1]\nthreshold: 0.3",
			wantErr: "only applies to logistic",
		},
		{
			name:    "not yaml",
			body:    "kind: [",
			wantErr: "decoding artifact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Decode([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewLinear_RejectsNonFinite(t *testing.T) {
	ones := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	nan := math.NaN()

	tests := []struct {
		name     string
		artifact model.Artifact
	}{
		{"coefficient", model.Artifact{Kind: model.KindLogistic, Coefficients: []float64{nan, 1, 1, 1, 1, 1, 1, 1}}},
		{"intercept", model.Artifact{Kind: model.KindLinearSVM, Coefficients: ones, Intercept: math.Inf(1)}},
		{"threshold", model.Artifact{Kind: model.KindLogistic, Coefficients: ones, Threshold: &nan}},
		{"scale", model.Artifact{
			Kind:         model.KindLogistic,
			Coefficients: ones,
			Scaler: &model.Scaler{
				Mean:  make([]float64, domain.FeatureCount),
				Scale: []float64{1, math.Inf(-1), 1, 1, 1, 1, 1, 1},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := model.NewLinear(tt.artifact)
			if err == nil {
				class, _ := m.Predict(context.Background(), domain.Vector{8, 190, 80, 35, 200, 40, 1.2, 55})
				t.Fatalf("expected error, model loaded and classified as %d", class)
			}
		})
	}
}

func TestLinear_LogisticThreshold(t *testing.T) {
	threshold := 0.9
	m, err := model.NewLinear(model.Artifact{
		Kind:         model.KindLogistic,
		Coefficients: []float64{1, 0, 0, 0, 0, 0, 0, 0},
		Threshold:    &threshold,
	})
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	ctx := context.Background()

	// sigmoid(1) ~ 0.73 stays below a 0.9 threshold
	if class, _ := m.Predict(ctx, domain.Vector{1}); class != 0 {
		t.Errorf("expected class 0 below threshold, got %d", class)
	}
	// sigmoid(3) ~ 0.95
	if class, _ := m.Predict(ctx, domain.Vector{3}); class != 1 {
		t.Errorf("expected class 1 above threshold, got %d", class)
	}
}

func TestLinear_IsDeterministic(t *testing.T) {
	m, err := model.Load(filepath.Join("..", "..", "..", model.DefaultPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v := domain.Vector{6, 148, 72, 35, 0, 33.6, 0.627, 50}
	first, _ := m.Predict(context.Background(), v)
	for i := 0; i < 20; i++ {
		if got, _ := m.Predict(context.Background(), v); got != first {
			t.Fatalf("prediction changed between calls: %d then %d", first, got)
		}
	}
}
