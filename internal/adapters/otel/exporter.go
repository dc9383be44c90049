package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/diacheck/internal/domain"
)

const (
	serviceName    = "diacheck"
	serviceVersion = "1.0.0"
)

// Exporter exports prediction metrics to an OTEL Collector.
type Exporter struct {
	provider           *sdkmetric.MeterProvider
	meter              metric.Meter
	predictionsTotal   metric.Int64Counter
	validationFailures metric.Int64Counter
	reportsTotal       metric.Int64Counter
	inferenceHist      metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	predictionsTotal, err := meter.Int64Counter(
		"diacheck_predictions_total",
		metric.WithDescription("Completed classifications by outcome"),
		metric.WithUnit("{prediction}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating predictions counter: %w", err)
	}

	validationFailures, err := meter.Int64Counter(
		"diacheck_validation_failures_total",
		metric.WithDescription("Submissions rejected by input validation"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating validation failures counter: %w", err)
	}

	reportsTotal, err := meter.Int64Counter(
		"diacheck_reports_total",
		metric.WithDescription("Generated report artifacts by format"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reports counter: %w", err)
	}

	inferenceHist, err := meter.Float64Histogram(
		"diacheck_inference_duration_seconds",
		metric.WithDescription("Model inference latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference histogram: %w", err)
	}

	return &Exporter{
		provider:           provider,
		meter:              meter,
		predictionsTotal:   predictionsTotal,
		validationFailures: validationFailures,
		reportsTotal:       reportsTotal,
		inferenceHist:      inferenceHist,
	}, nil
}

func (e *Exporter) RecordPrediction(ctx context.Context, outcome domain.Outcome, took time.Duration) {
	opt := metric.WithAttributes(attribute.String("outcome", outcome.Label()))
	e.predictionsTotal.Add(ctx, 1, opt)
	e.inferenceHist.Record(ctx, took.Seconds(), opt)
}

func (e *Exporter) RecordValidationFailure(ctx context.Context, source string) {
	e.validationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (e *Exporter) RecordReport(ctx context.Context, format string) {
	e.reportsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
