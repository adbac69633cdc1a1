package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PageMetrics records documentation navigation counters.
type PageMetrics struct {
	views metric.Int64Counter
}

// NewPageMetrics registers the page view counter on meter. A nil meter uses the
// global meter provider.
func NewPageMetrics(meter metric.Meter) (*PageMetrics, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	views, err := meter.Int64Counter(
		"docs.page.views",
		metric.WithUnit("{view}"),
		metric.WithDescription("Count of documentation page renders by page identifier"),
	)
	if err != nil {
		return nil, err
	}
	return &PageMetrics{views: views}, nil
}

// RecordView counts one render of page. fragment distinguishes htmx swaps from full loads.
func (m *PageMetrics) RecordView(ctx context.Context, page string, found, fragment bool) {
	if m == nil || m.views == nil {
		return
	}
	if !found {
		// unknown ids are client supplied; keep the attribute set bounded
		page = "unknown"
	}
	m.views.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", SanitizePageID(page)),
		attribute.Bool("found", found),
		attribute.Bool("fragment", fragment),
	))
}
