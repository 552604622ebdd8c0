package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tokenforge/tokenforge/internal/ports"
)

const (
	serviceName    = "tokenforge"
	serviceVersion = "1.0.0"
)

// Exporter exports token generation metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	generationsTotal metric.Int64Counter
	stepsHist        metric.Int64Histogram
	persistedTotal   metric.Int64Counter
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

	meter := provider.Meter(serviceName)

	generationsTotal, err := meter.Int64Counter(
		"tokenforge_generations_total",
		metric.WithDescription("Total number of scale and palette generations"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generations counter: %w", err)
	}

	stepsHist, err := meter.Int64Histogram(
		"tokenforge_generation_steps",
		metric.WithDescription("Number of steps produced per generation"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating steps histogram: %w", err)
	}

	persistedTotal, err := meter.Int64Counter(
		"tokenforge_generations_persisted_total",
		metric.WithDescription("Total number of generations saved to storage"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating persisted counter: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		generationsTotal: generationsTotal,
		stepsHist:        stepsHist,
		persistedTotal:   persistedTotal,
	}, nil
}

// ExportGeneration records one palette or scale generation.
func (e *Exporter) ExportGeneration(ctx context.Context, m *ports.GenerationMetrics) error {
	attrs := []attribute.KeyValue{
		attribute.String("kind", m.Kind),
	}
	if m.BrandID != "" {
		attrs = append(attrs, attribute.String("brand_id", m.BrandID))
	}

	opt := metric.WithAttributes(attrs...)

	e.generationsTotal.Add(ctx, 1, opt)
	e.stepsHist.Record(ctx, m.Steps, opt)
	if m.Persisted {
		e.persistedTotal.Add(ctx, 1, opt)
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
