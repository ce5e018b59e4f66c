package observability

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"hypertech.group/hypersystem-web/internal/config"
)

func TestNewTracingContinuesIncomingTrace(t *testing.T) {
	tr, err := NewTracing(context.Background(), config.TracingConfig{ServiceName: "test", SampleRatio: 1})
	if err != nil {
		t.Fatalf("NewTracing: %v", err)
	}
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })

	h := http.Header{}
	h.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	ctx := tr.Propagator.Extract(context.Background(), propagation.HeaderCarrier(h))
	_, span := tr.Provider.Tracer("test").Start(ctx, "GET /en/")
	defer span.End()

	sc := span.SpanContext()
	if got := sc.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("trace id = %s", got)
	}
	if !sc.IsSampled() || !span.IsRecording() {
		t.Fatal("expected a sampled, recording span")
	}
}

func TestNewTracingStartsRootTrace(t *testing.T) {
	tr, err := NewTracing(context.Background(), config.TracingConfig{ServiceName: "test", SampleRatio: 0})
	if err != nil {
		t.Fatalf("NewTracing: %v", err)
	}
	_, span := tr.Provider.Tracer("test").Start(context.Background(), "root")
	span.End()
	if !span.SpanContext().HasTraceID() {
		t.Fatal("unsampled spans still carry a trace id")
	}
	if span.SpanContext().TraceFlags()&trace.FlagsSampled != 0 {
		t.Fatal("ratio 0 should not sample root spans")
	}
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := (*Tracing)(nil).Shutdown(context.Background()); err != nil {
		t.Fatalf("nil Shutdown: %v", err)
	}
}
