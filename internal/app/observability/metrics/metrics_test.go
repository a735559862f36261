package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordersReachTheGlobalProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	ctx := context.Background()
	RecordPageView(ctx, "services")
	RecordFormSubmission(ctx, "quote", "accepted")
	RecordCarouselAdvance(ctx, "next")
	RecordNewsletterSignup(ctx, "new")
	SetActiveCarousels(ctx, 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	for _, want := range []string{
		"page_views_total",
		"form_submissions_total",
		"carousel_advances_total",
		"newsletter_signups_total",
		"carousels_active",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}

func TestGetIsStable(t *testing.T) {
	assert.Same(t, Get(), Get())
}
