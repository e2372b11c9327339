package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "juris-api"

// Instruments carry their Prometheus names so the exported families match
// them without suffixes or escaping
const (
	requestsFamily = "http_server_requests_total"
	durationFamily = "http_server_request_duration_seconds"
	cacheFamily    = "datajud_cache_lookups_total"

	labelMethod = "http_request_method"
	labelRoute  = "http_route"
	labelStatus = "http_response_status_code"
	labelHit    = "datajud_cache_hit"
)

// MetricsService records OpenTelemetry instruments and exports them through a
// private Prometheus registry
type MetricsService struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
	meter    metric.Meter

	requests     metric.Int64Counter
	duration     metric.Float64Histogram
	cacheLookups metric.Int64Counter
}

// NewMetricsService creates the meter provider and its instruments
func NewMetricsService() (*MetricsService, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
		otelprom.WithoutTargetInfo(),
		otelprom.WithoutUnits(),
		otelprom.WithoutCounterSuffixes(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(meterName)

	requests, err := meter.Int64Counter(requestsFamily,
		metric.WithDescription("HTTP requests by method, route and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram(durationFamily,
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	cacheLookups, err := meter.Int64Counter(cacheFamily,
		metric.WithDescription("DataJud cache lookups by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache counter: %w", err)
	}

	return &MetricsService{
		registry:     registry,
		provider:     provider,
		meter:        meter,
		requests:     requests,
		duration:     duration,
		cacheLookups: cacheLookups,
	}, nil
}

// Meter returns the meter other components register their instruments on
func (m *MetricsService) Meter() metric.Meter {
	return m.meter
}

// Handler serves the registry in the Prometheus text format
func (m *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider
func (m *MetricsService) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}

// RecordRequest records a request under its route pattern
func (m *MetricsService) RecordRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(labelMethod, method),
		attribute.String(labelRoute, route),
		attribute.Int(labelStatus, statusCode),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, duration.Seconds(), attrs)
}

// RecordCacheHit records a cache lookup outcome
func (m *MetricsService) RecordCacheHit(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool(labelHit, hit)))
}

// GetMetrics summarizes the exported families for the JSON metrics view.
// Requests answered with a 5xx status count as errors.
func (m *MetricsService) GetMetrics() map[string]interface{} {
	var total, success, failed, hits, misses int64
	var durationSum float64
	var durationCount uint64
	endpoints := make(map[string]int64)

	families, err := m.registry.Gather()
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	for _, family := range families {
		switch family.GetName() {
		case requestsFamily:
			for _, sample := range family.GetMetric() {
				labels := labelValues(sample)
				n := int64(sample.GetCounter().GetValue())
				total += n
				if status, _ := strconv.Atoi(labels[labelStatus]); status >= 500 {
					failed += n
				} else {
					success += n
				}
				endpoints[labels[labelMethod]+" "+labels[labelRoute]] += n
			}
		case durationFamily:
			for _, sample := range family.GetMetric() {
				durationSum += sample.GetHistogram().GetSampleSum()
				durationCount += sample.GetHistogram().GetSampleCount()
			}
		case cacheFamily:
			for _, sample := range family.GetMetric() {
				n := int64(sample.GetCounter().GetValue())
				if labelValues(sample)[labelHit] == "true" {
					hits += n
				} else {
					misses += n
				}
			}
		}
	}

	successRate, avg := 0.0, 0.0
	if total > 0 {
		successRate = float64(success) / float64(total) * 100
	}
	if durationCount > 0 {
		avg = durationSum / float64(durationCount) * 1000
	}

	return map[string]interface{}{
		"total":                total,
		"success":              success,
		"errors":               failed,
		"success_rate":         successRate,
		"avg_response_time_ms": avg,
		"cache_hits":           hits,
		"cache_misses":         misses,
		"endpoints":            endpoints,
	}
}

// labelValues keys a sample's labels by name
func labelValues(sample *dto.Metric) map[string]string {
	labels := make(map[string]string, len(sample.GetLabel()))
	for _, pair := range sample.GetLabel() {
		labels[pair.GetName()] = pair.GetValue()
	}
	return labels
}
