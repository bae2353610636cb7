// Package tracing configures the OpenTelemetry tracer provider and the HTTP
// instrumentation built on it.
package tracing

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"vendorhub/config"
	"vendorhub/internal/domain/lifecycle"
	"vendorhub/internal/errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const defaultServiceName = "vendorhub"

// Provider wraps the tracer provider used by the HTTP server.
type Provider struct {
	tp          trace.TracerProvider
	shutdown    func(context.Context) error
	serviceName string
	enabled     bool
}

// New builds an OTLP/HTTP exporting provider when tracing is enabled and a
// no-op provider otherwise.
func New(ctx context.Context, cfg *config.Config) (*Provider, error) {
	serviceName := defaultServiceName
	if cfg != nil && cfg.Env.ServiceName != "" {
		serviceName = cfg.Env.ServiceName
	}

	if cfg == nil || cfg.Tracing == nil || !cfg.Tracing.Enabled {
		return &Provider{
			tp:          noop.NewTracerProvider(),
			shutdown:    func(context.Context) error { return nil },
			serviceName: serviceName,
		}, nil
	}

	exporter, err := newTraceExporter(ctx, cfg.Tracing.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "tracing: create exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironmentName(cfg.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "tracing: create resource")
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio(cfg.Tracing.SampleRatio)))),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		tp:          tracerProvider,
		shutdown:    tracerProvider.Shutdown,
		serviceName: serviceName,
		enabled:     true,
	}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Tracer returns a named tracer from the provider.
func (p *Provider) Tracer(name string) trace.Tracer {
	return p.tp.Tracer(name)
}

// Middleware wraps next so every request starts a server span.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, p.serviceName, otelhttp.WithTracerProvider(p.tp))
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}

// Params holds dependencies for the fx-managed provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProvider builds the provider and flushes it when the application stops.
func NewProvider(params Params) (*Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	provider, err := New(ctx, params.Config)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := provider.Shutdown(ctx); err != nil {
				params.Logger.Warn("Failed to flush traces", slog.Any("error", err))
			}

			return nil
		},
	})

	if provider.Enabled() {
		params.Logger.Info("Tracing enabled", slog.String("endpoint", params.Config.Tracing.Endpoint))
	}

	return provider, nil
}

func sampleRatio(ratio float64) float64 {
	switch {
	case ratio <= 0:
		return 1
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

type endpointOptions struct {
	host     string
	path     string
	insecure bool
}

// parseEndpoint accepts either a bare host:port or a full URL.
func parseEndpoint(endpoint string) (endpointOptions, error) {
	if endpoint == "" {
		return endpointOptions{}, errors.New("endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err == nil && parsed.Scheme != "" && parsed.Opaque == "" {
		if parsed.Host == "" {
			return endpointOptions{}, errors.Errorf("invalid OTLP endpoint: %s", endpoint)
		}
		opts := endpointOptions{host: parsed.Host, insecure: parsed.Scheme == "http"}
		if parsed.Path != "" && parsed.Path != "/" {
			opts.path = parsed.Path
		}

		return opts, nil
	}

	return endpointOptions{host: endpoint, insecure: true}, nil
}

func newTraceExporter(ctx context.Context, endpoint string) (*otlptrace.Exporter, error) {
	parsed, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(parsed.host)}
	if parsed.path != "" {
		opts = append(opts, otlptracehttp.WithURLPath(parsed.path))
	}
	if parsed.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	return otlptracehttp.New(ctx, opts...)
}
