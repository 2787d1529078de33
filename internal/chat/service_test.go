package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/intent"
	"github.com/sant0-9/concierge/internal/responder"
)

func newTestService(t *testing.T) (*Service, *Metrics) {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	svc := New(content.MustDefault(), Options{
		Logger:  zaptest.NewLogger(t),
		Metrics: metrics,
	})
	return svc, metrics
}

func TestAskServices(t *testing.T) {
	svc, metrics := newTestService(t)

	reply, err := svc.Ask(context.Background(), Request{Query: "What services do you offer?"})
	require.NoError(t, err)
	assert.Equal(t, intent.Services, reply.Intent)
	assert.Equal(t, content.English, reply.Locale)
	assert.True(t, strings.HasPrefix(reply.Text, "🧭 Here is how we can help:"), reply.Text)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.replies.WithLabelValues("services", "en")))
}

func TestAskSpanishPricing(t *testing.T) {
	svc, metrics := newTestService(t)

	reply, err := svc.Ask(context.Background(), Request{Query: "cual es el precio", Locale: "es-ES"})
	require.NoError(t, err)
	assert.Equal(t, content.Spanish, reply.Locale)
	assert.Equal(t, "💼 "+intent.Resolve(intent.Pricing, content.Spanish), reply.Text)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.replies.WithLabelValues("pricing", "es")))
}

func TestAskFallbacks(t *testing.T) {
	svc, metrics := newTestService(t)
	ctx := context.Background()

	reply, err := svc.Ask(ctx, Request{Query: "cookies consent"})
	require.NoError(t, err)
	assert.Equal(t, responder.FallbackDocuments, reply.Fallback)
	assert.Empty(t, reply.Intent)
	assert.NotEmpty(t, reply.Sources)
	assert.True(t, strings.HasPrefix(reply.Text, "📚 Here is what I found:"), reply.Text)

	reply, err = svc.Ask(ctx, Request{Query: "xylophone"})
	require.NoError(t, err)
	assert.Equal(t, responder.FallbackApology, reply.Fallback)
	assert.Contains(t, reply.Text, "hello@vanguardconsulting.io")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.replies.WithLabelValues("documents", "en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.replies.WithLabelValues("apology", "en")))
}

func TestAskRejectsInvalidRequests(t *testing.T) {
	svc, metrics := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    Request
		want   error
		reason string
	}{
		{name: "empty", req: Request{Query: "   "}, want: ErrEmptyQuery, reason: "empty"},
		{name: "too long", req: Request{Query: strings.Repeat("a", MaxQueryLength+1)}, want: ErrQueryTooLong, reason: "too_long"},
		{name: "locale", req: Request{Query: "hello", Locale: "fr"}, want: content.ErrUnsupportedLocale, reason: "locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.Ask(ctx, tt.req)
			assert.Nil(t, reply)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.rejected.WithLabelValues(tt.reason)))
		})
	}
}

func TestAskAcceptsMaxLengthInRunes(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Ask(context.Background(), Request{Query: strings.Repeat("ñ", MaxQueryLength)})
	assert.NoError(t, err)
}

func TestAskHonoursCancellation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Ask(ctx, Request{Query: "pricing"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDefaults(t *testing.T) {
	svc := New(nil, Options{Locale: "zz"})
	assert.Equal(t, content.English, svc.Locale())

	svc = New(nil, Options{Locale: content.Spanish})
	reply, err := svc.Ask(context.Background(), Request{Query: "precio"})
	require.NoError(t, err)
	assert.Equal(t, intent.Pricing, reply.Intent)
	assert.Equal(t, content.Spanish, reply.Locale)
}
