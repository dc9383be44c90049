package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/predictor"
	"github.com/emiliopalmerini/diacheck/internal/report"
)

type fixedClassifier int

func (c fixedClassifier) Predict(ctx context.Context, v domain.Vector) (int, error) {
	return int(c), nil
}

type recordingMetrics struct {
	reports []string
}

func (m *recordingMetrics) RecordPrediction(ctx context.Context, o domain.Outcome, took time.Duration) {
}
func (m *recordingMetrics) RecordValidationFailure(ctx context.Context, source string) {}
func (m *recordingMetrics) RecordReport(ctx context.Context, format string) {
	m.reports = append(m.reports, format)
}
func (m *recordingMetrics) Close(ctx context.Context) error { return nil }

func exampleRaw() domain.RawInput {
	return domain.RawInput{
		domain.KeyPregnancies:      "2",
		domain.KeyGlucose:          "120",
		domain.KeyBloodPressure:    "70",
		domain.KeySkinThickness:    "20",
		domain.KeyInsulin:          "80",
		domain.KeyBMI:              "25.0",
		domain.KeyDiabetesPedigree: "0.5",
		domain.KeyAge:              "33",
	}
}

func TestPredict_PrintsLabel(t *testing.T) {
	svc := predictor.NewService(fixedClassifier(0), nil, nil)

	var out bytes.Buffer
	if err := predict(context.Background(), svc, nil, predictOptions{Raw: exampleRaw()}, &out); err != nil {
		t.Fatalf("predict() error = %v", err)
	}
	if got := out.String(); got != "Prediction: not diabetic\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPredict_ValidationErrorNamesFlags(t *testing.T) {
	svc := predictor.NewService(fixedClassifier(0), nil, nil)

	raw := exampleRaw()
	raw[domain.KeyBloodPressure] = ""

	var out bytes.Buffer
	err := predict(context.Background(), svc, nil, predictOptions{Raw: raw, Report: "pdf"}, &out)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if !strings.Contains(out.String(), domain.ValidationMessage) {
		t.Errorf("expected validation message, got %q", out.String())
	}
	if !strings.Contains(out.String(), "--blood-pressure") {
		t.Errorf("expected offending flag to be named, got %q", out.String())
	}
	if strings.Contains(out.String(), "Report written") {
		t.Error("expected no report after a validation error")
	}
}

func TestPredict_WritesReportToOutput(t *testing.T) {
	svc := predictor.NewService(fixedClassifier(1), nil, nil)
	metrics := &recordingMetrics{}
	path := filepath.Join(t.TempDir(), "report.txt")

	var out bytes.Buffer
	opts := predictOptions{Raw: exampleRaw(), Report: "text", Output: path}
	if err := predict(context.Background(), svc, metrics, opts, &out); err != nil {
		t.Fatalf("predict() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "Prediction Result: diabetic") {
		t.Errorf("report missing result line:\n%s", data)
	}
	if !strings.Contains(out.String(), "Report written to "+path) {
		t.Errorf("expected report path in output, got %q", out.String())
	}
	if len(metrics.reports) != 1 || metrics.reports[0] != "text" {
		t.Errorf("expected one text report recorded, got %v", metrics.reports)
	}
}

func TestPredict_WritesReportToTempFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	svc := predictor.NewService(fixedClassifier(0), nil, nil)

	var out bytes.Buffer
	if err := predict(context.Background(), svc, nil, predictOptions{Raw: exampleRaw(), Report: "pdf"}, &out); err != nil {
		t.Fatalf("predict() error = %v", err)
	}

	_, path, found := strings.Cut(strings.TrimSpace(out.String()), "Report written to ")
	if !found {
		t.Fatalf("expected report path in output, got %q", out.String())
	}
	if filepath.Ext(path) != ".pdf" {
		t.Errorf("expected .pdf temp file, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("expected a PDF document")
	}
}

func TestPredict_UnknownReportFormat(t *testing.T) {
	svc := predictor.NewService(fixedClassifier(0), nil, nil)

	var out bytes.Buffer
	err := predict(context.Background(), svc, nil, predictOptions{Raw: exampleRaw(), Report: "xml"}, &out)
	if !errors.Is(err, report.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing printed before the format check, got %q", out.String())
	}
}

func TestWriteReport_RemovesFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	rep := report.New(nil, domain.LabelNegative)

	_, err := writeReport(report.Format("docx"), rep, path)
	if !errors.Is(err, report.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file left at %s, stat error = %v", path, statErr)
	}
}

func TestNewApp_MissingModelIsFatal(t *testing.T) {
	t.Setenv("DIACHECK_MODEL_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	modelPath = ""
	t.Cleanup(func() { modelPath = "" })

	_, err := newApp(context.Background())
	if !errors.Is(err, model.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "DIACHECK_MODEL_PATH") {
		t.Errorf("expected a hint about DIACHECK_MODEL_PATH, got %q", err.Error())
	}
}

func TestNewApp_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("DIACHECK_MODEL_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	modelPath = filepath.Join("..", "..", model.DefaultPath)
	t.Cleanup(func() { modelPath = "" })

	a, err := newApp(context.Background())
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer a.Close(context.Background())

	var out bytes.Buffer
	printModel(&out, a.Model)
	if !strings.Contains(out.String(), "Kind:   logistic") {
		t.Errorf("unexpected model summary:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "8. age") {
		t.Errorf("expected feature order in summary:\n%s", out.String())
	}
}
