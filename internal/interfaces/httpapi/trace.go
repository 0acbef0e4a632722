package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fantasy-stats/internal/interfaces/httpapi")

// startHandlerSpan opens "httpapi.Handler.<name>" under the otelhttp server
// span and renames that span to the matched route. Requests without a parent
// span, such as filtered health checks, get no span at all.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	if r.Pattern != "" {
		parent.SetName(r.Pattern)
		parent.SetAttributes(attribute.String("http.route", r.Pattern))
	}
	return apiTracer.Start(ctx, handlerSpanName(name))
}

func handlerSpanName(name string) string {
	return "httpapi.Handler." + name
}
