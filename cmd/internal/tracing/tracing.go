// Package tracing sets up OpenTelemetry for CLI runs so AWS SDK calls made by
// the CLI show up in X-Ray.
package tracing

import (
	"context"

	"github.com/aws-observability/aws-otel-go/exporters/xrayudp"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Tracing bundles the provider and propagator handed to instrumented clients.
type Tracing struct {
	Provider   *sdktrace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// New builds a tracer provider for the named exporter: "none", "stdout" or
// "xrayudp". With "none" spans are created but never exported.
func New(ctx context.Context, exporter, serviceName string) (*Tracing, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(newResource(serviceName)),
		sdktrace.WithIDGenerator(xray.NewIDGenerator()),
	}

	exp, err := newExporter(ctx, exporter)
	if err != nil {
		return nil, err
	}
	if exp != nil {
		// CLI runs are short; export synchronously so nothing is lost on exit.
		opts = append(opts, sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)))
	}

	return &Tracing{
		Provider:   sdktrace.NewTracerProvider(opts...),
		Propagator: xray.Propagator{},
	}, nil
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.Provider.Shutdown(ctx)
}

func newExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch name {
	case "none", "":
		return nil, nil //nolint:nilnil // no exporter configured
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "xrayudp":
		return xrayudp.NewSpanExporter(ctx)
	default:
		return nil, errors.Newf("unsupported OTEL_EXPORTER: %q (supported: none, stdout, xrayudp)", name)
	}
}

func newResource(serviceName string) *resource.Resource {
	return resource.NewSchemaless(attribute.String("service.name", serviceName))
}
