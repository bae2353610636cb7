package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendorhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	provider, err := New(context.Background(), &config.Config{})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())

	_, span := provider.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNew_EnabledBuildsSDKProvider(t *testing.T) {
	cfg := &config.Config{Tracing: &config.TracingConfig{
		Enabled:     true,
		Endpoint:    "http://127.0.0.1:4318/v1/traces",
		SampleRatio: 1,
	}}
	cfg.Env.ServiceName = "vendorhub-test"

	provider, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, provider.Enabled())

	_, span := provider.Tracer("test").Start(context.Background(), "sampled")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = provider.Shutdown(ctx)
}

func TestMiddleware_StartsServerSpan(t *testing.T) {
	cfg := &config.Config{Tracing: &config.TracingConfig{Enabled: true, Endpoint: "localhost:4318"}}

	provider, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_ = provider.Shutdown(ctx)
	})

	var seen trace.SpanContext
	handler := provider.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, seen.IsValid())
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     endpointOptions
		wantErr  bool
	}{
		{name: "bare host", endpoint: "collector:4318", want: endpointOptions{host: "collector:4318", insecure: true}},
		{name: "http url with path", endpoint: "http://collector:4318/v1/traces", want: endpointOptions{host: "collector:4318", path: "/v1/traces", insecure: true}},
		{name: "https url", endpoint: "https://otel.example.com", want: endpointOptions{host: "otel.example.com"}},
		{name: "empty", endpoint: "", wantErr: true},
		{name: "scheme without host", endpoint: "http:///v1/traces", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEndpoint(tt.endpoint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampleRatio(t *testing.T) {
	assert.Equal(t, 1.0, sampleRatio(0))
	assert.Equal(t, 1.0, sampleRatio(-0.5))
	assert.Equal(t, 1.0, sampleRatio(3))
	assert.Equal(t, 0.25, sampleRatio(0.25))
}
