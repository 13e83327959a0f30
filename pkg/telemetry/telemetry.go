package telemetry

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName    = "sales-analyzer"
	ServiceVersion = "1.0.0"
	tracerName     = "github.com/de-tools/sales-analyzer"
)

type Settings struct {
	Enabled bool
	Output  io.Writer // defaults to stderr
}

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(ctx context.Context) error

// Init installs a stdout span exporter as the global tracer provider when enabled.
// When disabled the global no-op provider stays in place and Tracer returns no-op spans.
func Init(ctx context.Context, settings Settings) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }
	if !settings.Enabled {
		return noop, nil
	}

	out := settings.Output
	if out == nil {
		out = os.Stderr
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(out),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return noop, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
