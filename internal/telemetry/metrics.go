// Package telemetry owns the OpenTelemetry meter provider and the counters
// the service reports.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/friendsofgo/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const ServiceName = "cvss-scoring-service"

// Instruments are created against the global provider, which forwards to the
// provider installed by InitMetrics once it runs.
var (
	meter = otel.Meter(ServiceName)

	ScoreCount     = mustCounter("cvss.score.count", "CVSS calculations by source and outcome")
	CacheHit       = mustCounter("cvss.cache.hit", "Score lookups served from redis")
	RescoreRuns    = mustCounter("cvss.rescore.run.count", "Re-scoring job executions")
	RescoreUpdated = mustCounter("cvss.rescore.updated", "Attributes written by the re-scoring job")
)

func mustCounter(name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(err)
	}
	return c
}

// InitMetrics installs a meter provider tagged with the service resource.
// The caller shuts the returned provider down on exit.
func InitMetrics(opts ...sdkmetric.Option) (*sdkmetric.MeterProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(ServiceName),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resource")
	}

	mp := sdkmetric.NewMeterProvider(append([]sdkmetric.Option{sdkmetric.WithResource(res)}, opts...)...)
	otel.SetMeterProvider(mp)

	slog.Info("metrics initialized", "component", "otel", "service", ServiceName)
	return mp, nil
}

// RecordScore counts one calculation.
func RecordScore(ctx context.Context, source string, success bool, severity string) {
	ScoreCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("success", success),
		attribute.String("severity", severity),
	))
}

// RecordCacheLookup counts a cache lookup; hit distinguishes hits from misses.
func RecordCacheLookup(ctx context.Context, hit bool) {
	CacheHit.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
