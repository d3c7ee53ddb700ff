package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the application meters: the HTTP request surface plus
// the import pipeline's row throughput.
type Metrics struct {
	RequestCounter  metric.Int64Counter
	RequestDuration metric.Float64Histogram
	ImportDuration  metric.Float64Histogram
	ImportRows      metric.Int64Counter
}

// InitMetrics registers all meters. Without a configured meter provider
// the instruments are no-ops, so recording stays safe everywhere.
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("saas-docvault-platform")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	importDuration, err := meter.Float64Histogram(
		"import.duration",
		metric.WithDescription("Workbook import duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	importRows, err := meter.Int64Counter(
		"import.rows.total",
		metric.WithDescription("Import rows by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:  requestCounter,
		RequestDuration: requestDuration,
		ImportDuration:  importDuration,
		ImportRows:      importRows,
	}, nil
}

// RecordRequest records HTTP request count and latency.
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordImport records one finished import run: its duration and the
// per-outcome row counts.
func (m *Metrics) RecordImport(duration float64, imported, failed int) {
	ctx := context.Background()

	m.ImportDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.Bool("import.success", failed == 0),
	))
	m.ImportRows.Add(ctx, int64(imported), metric.WithAttributes(
		attribute.String("outcome", "imported"),
	))
	m.ImportRows.Add(ctx, int64(failed), metric.WithAttributes(
		attribute.String("outcome", "failed"),
	))
}
