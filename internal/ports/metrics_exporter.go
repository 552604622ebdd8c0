package ports

import "context"

// GenerationMetrics describes one engine invocation for observability.
type GenerationMetrics struct {
	Kind      string // "palette" or "scale"
	BrandID   string
	Steps     int64
	Persisted bool
}

// MetricsExporter reports engine usage to an external observability system.
type MetricsExporter interface {
	// ExportGeneration records one palette or scale generation.
	ExportGeneration(ctx context.Context, m *GenerationMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
