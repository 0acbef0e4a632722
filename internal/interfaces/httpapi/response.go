package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-stats"
	internalMessage  = "internal server error"
)

// Responses follow the Google JSON style guide: {"apiVersion", "data"} or
// {"apiVersion", "error"}.
type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorKind struct {
	target     error
	HTTPStatus int
	Reason     string
	Status     string
}

var (
	errorKinds = []errorKind{
		{target: usecase.ErrInvalidInput, HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
		{target: usecase.ErrNotFound, HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
		{target: usecase.ErrDependencyUnavailable, HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"},
	}
	internalErrorKind = errorKind{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
)

// classifyError picks the first sentinel err wraps. Anything else is internal.
func classifyError(err error) errorKind {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind
		}
	}
	return internalErrorKind
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

// writeError renders err in the error envelope. Internal errors never leak
// their message to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := classifyError(err)
	message := internalMessage
	if kind.target != nil {
		message = err.Error()
	}
	if kind.HTTPStatus >= http.StatusInternalServerError {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind.Reason)
	}

	writeJSON(w, kind.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    kind.HTTPStatus,
			Message: message,
			Status:  kind.Status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: kind.Reason, Message: message}},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"apiVersion":"` + googleAPIVersion + `","error":{"code":500,"message":"encode response failed","status":"INTERNAL"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}
