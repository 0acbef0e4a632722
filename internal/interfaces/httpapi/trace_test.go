package httpapi

import (
	"context"
	"net/http/httptest"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartHandlerSpan_NoParentIsNoop(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	ctx, span := startHandlerSpan(req, "Healthz")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Fatalf("expected no span without a parent")
	}
	if ctx != req.Context() {
		t.Fatalf("expected request context to be returned unchanged")
	}
}

func TestStartHandlerSpan_RenamesParentToRoute(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	parentCtx, parent := provider.Tracer("test").Start(context.Background(), "GET /v1/teams/42")
	req := httptest.NewRequest("GET", "/v1/teams/42", nil).WithContext(parentCtx)
	req.Pattern = "GET /v1/teams/{teamID}"

	_, span := startHandlerSpan(req, "GetTeam")
	span.End()
	parent.End()

	ended := recorder.Ended()
	if len(ended) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(ended))
	}
	if ended[0].Name() != handlerSpanName("GetTeam") {
		t.Fatalf("unexpected handler span name %q", ended[0].Name())
	}
	if ended[1].Name() != "GET /v1/teams/{teamID}" {
		t.Fatalf("expected parent renamed to route, got %q", ended[1].Name())
	}
}
