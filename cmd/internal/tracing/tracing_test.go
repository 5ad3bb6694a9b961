package tracing_test

import (
	"context"
	"testing"

	"github.com/basewarphq/bwsite/cmd/internal/tracing"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
)

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, exporter := range []string{"none", "", "stdout"} {
		tr, err := tracing.New(ctx, exporter, "bwsite")
		if err != nil {
			t.Fatalf("New(%q) error: %v", exporter, err)
		}
		if tr.Provider == nil {
			t.Fatalf("New(%q): expected tracer provider", exporter)
		}
		if _, ok := tr.Propagator.(xray.Propagator); !ok {
			t.Errorf("New(%q): expected X-Ray propagator, got %T", exporter, tr.Propagator)
		}
		if err := tr.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error: %v", err)
		}
	}
}

func TestNew_SpansGetXRayIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tr, err := tracing.New(ctx, "none", "bwsite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Shutdown(ctx) //nolint:errcheck

	_, span := tr.Provider.Tracer("test").Start(ctx, "op")
	defer span.End()

	if !span.SpanContext().TraceID().IsValid() {
		t.Error("expected a valid trace id")
	}
}

func TestNew_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	_, err := tracing.New(context.Background(), "invalid", "bwsite")
	if err == nil {
		t.Fatal("expected error for unsupported exporter")
	}
	if got := err.Error(); got != `unsupported OTEL_EXPORTER: "invalid" (supported: none, stdout, xrayudp)` {
		t.Errorf("unexpected error message: %s", got)
	}
}
