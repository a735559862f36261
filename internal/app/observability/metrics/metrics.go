package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "northern-oak"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	PageViewsTotal         metric.Int64Counter
	FormSubmissionsTotal   metric.Int64Counter
	CarouselAdvancesTotal  metric.Int64Counter
	NewsletterSignupsTotal metric.Int64Counter
	ActiveCarousels        metric.Int64Gauge
	TemplateRenderDuration metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global
// MeterProvider. Call it after the provider has been installed.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.PageViewsTotal, err = meter.Int64Counter(
			"page_views_total",
			metric.WithDescription("Pages rendered, by page"),
			metric.WithUnit("{view}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_views_total: %v", err)
		}

		m.FormSubmissionsTotal, err = meter.Int64Counter(
			"form_submissions_total",
			metric.WithDescription("Contact and quote submissions, by variant and outcome"),
			metric.WithUnit("{submission}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create form_submissions_total: %v", err)
		}

		m.CarouselAdvancesTotal, err = meter.Int64Counter(
			"carousel_advances_total",
			metric.WithDescription("Testimonial carousel moves, by trigger"),
			metric.WithUnit("{move}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create carousel_advances_total: %v", err)
		}

		m.NewsletterSignupsTotal, err = meter.Int64Counter(
			"newsletter_signups_total",
			metric.WithDescription("Newsletter signups, by result"),
			metric.WithUnit("{signup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create newsletter_signups_total: %v", err)
		}

		m.ActiveCarousels, err = meter.Int64Gauge(
			"carousels_active",
			metric.WithDescription("Testimonial carousels currently running"),
			metric.WithUnit("{carousel}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create carousels_active: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of view rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them against the current global
// provider on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

// RecordPageView counts one rendered page.
func RecordPageView(ctx context.Context, page string) {
	Get().PageViewsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("page", page)))
}

// RecordFormSubmission counts one submit attempt.
func RecordFormSubmission(ctx context.Context, variant, outcome string) {
	Get().FormSubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", variant),
		attribute.String("outcome", outcome),
	))
}

// RecordCarouselAdvance counts one cursor move.
func RecordCarouselAdvance(ctx context.Context, trigger string) {
	Get().CarouselAdvancesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger", trigger)))
}

// RecordNewsletterSignup counts one signup attempt.
func RecordNewsletterSignup(ctx context.Context, result string) {
	Get().NewsletterSignupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// SetActiveCarousels reports the number of running carousels.
func SetActiveCarousels(ctx context.Context, n int) {
	Get().ActiveCarousels.Record(ctx, int64(n))
}
