package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics records spans for Sentry performance monitoring
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	success := statusCode < successStatusCodeThreshold
	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", success))
	span.SetData("duration_ms", duration.Milliseconds())

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordChordParse records a chord.parse span
func (m *SentryMetrics) RecordChordParse(ctx context.Context, errorKind string, cached bool, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "chord.parse")
	defer span.Finish()

	span.SetTag("cached", fmt.Sprintf("%t", cached))
	span.SetData("duration_us", duration.Microseconds())
	if errorKind != "" {
		span.SetTag("error_kind", errorKind)
		span.Status = sentry.SpanStatusInvalidArgument
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Description = "Chord Parse"
}

// RecordCustomMetric sends a custom metric with arbitrary data
func (m *SentryMetrics) RecordCustomMetric(metricName string, data map[string]interface{}) {
	if !m.enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("metric_type", "custom")
		scope.SetTag("metric_name", metricName)
		scope.SetContext("custom_metric", data)
		sentry.CaptureMessage("Custom Metric: " + metricName)
	})
}
