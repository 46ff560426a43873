package scheduler

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/airward/airward/internal/scheduler"

// Metrics holds the OpenTelemetry instruments for refresh cycles.
type Metrics struct {
	refreshTotal    metric.Int64Counter
	refreshFailures metric.Int64Counter
	refreshDuration metric.Float64Histogram
}

// NewMetrics creates the scheduler instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	refreshTotal, err := meter.Int64Counter(
		"pollution.refresh.total",
		metric.WithDescription("Total number of pollution refresh cycles"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	refreshFailures, err := meter.Int64Counter(
		"pollution.refresh.failures",
		metric.WithDescription("Number of refresh cycles that failed upstream"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	refreshDuration, err := meter.Float64Histogram(
		"pollution.refresh.duration",
		metric.WithDescription("Duration of pollution refresh cycles in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		refreshTotal:    refreshTotal,
		refreshFailures: refreshFailures,
		refreshDuration: refreshDuration,
	}, nil
}

func (m *Metrics) recordCycle(ctx context.Context, trigger string, duration time.Duration, failed bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("trigger", trigger))
	m.refreshTotal.Add(ctx, 1, attrs)
	if failed {
		m.refreshFailures.Add(ctx, 1, attrs)
	}
	m.refreshDuration.Record(ctx, duration.Seconds(), attrs)
}
