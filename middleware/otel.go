package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/mcpdev/hello-mcp/protocol"
)

const instrumentationName = "github.com/mcpdev/hello-mcp"

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelConfig)

type otelConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
	skipTools      map[string]bool
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.meterProvider = mp
	}
}

// WithOTelServiceName sets the service name for telemetry.
func WithOTelServiceName(name string) OTelOption {
	return func(c *otelConfig) {
		c.serviceName = name
	}
}

// WithOTelSkipTools specifies tools to skip for tracing.
func WithOTelSkipTools(tools ...string) OTelOption {
	return func(c *otelConfig) {
		for _, tool := range tools {
			c.skipTools[tool] = true
		}
	}
}

// OTel returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a span per invocation and records invocation counts,
// latency, and failures.
func OTel(opts ...OTelOption) Middleware {
	cfg := &otelConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "hello-mcp",
		skipTools:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion("1.0.0"),
	)

	meter := cfg.meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	invocationCounter, _ := meter.Int64Counter(
		"tools.server.invocations",
		metric.WithDescription("Total number of tool invocations"),
		metric.WithUnit("{invocation}"),
	)

	invocationDuration, _ := meter.Float64Histogram(
		"tools.server.invocation.duration",
		metric.WithDescription("Duration of tool invocations"),
		metric.WithUnit("ms"),
	)

	failureCounter, _ := meter.Int64Counter(
		"tools.server.failures",
		metric.WithDescription("Total number of failed tool invocations"),
		metric.WithUnit("{failure}"),
	)

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			if cfg.skipTools[req.Tool] {
				return next(ctx, req)
			}

			spanName := "invoke." + req.Tool
			ctx, span := tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("tool.name", req.Tool),
					attribute.String("service.name", cfg.serviceName),
				),
			)
			defer span.End()

			if reqID := RequestIDFromContext(ctx); reqID != "" {
				span.SetAttributes(attribute.String("invocation.request_id", reqID))
			}

			startTime := time.Now()

			attrs := []attribute.KeyValue{
				attribute.String("tool.name", req.Tool),
				attribute.String("service.name", cfg.serviceName),
			}

			invocationCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

			resp, err := next(ctx, req)

			duration := float64(time.Since(startTime).Milliseconds())
			invocationDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				failureCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			case resp != nil && !resp.Success:
				span.SetStatus(codes.Error, resp.Err)
				failureCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			default:
				span.SetStatus(codes.Ok, "")
			}

			return resp, err
		}
	}
}

// SpanFromContext returns the current span from context.
// Returns a no-op span if no span is present.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// AddSpanEvent adds an event to the current span.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
