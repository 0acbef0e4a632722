package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-stats/internal/platform/id"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerHistoryRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)

	return RequestTracing(
		RequestID(id.NewUUIDGenerator(),
			RequestLogging(logger,
				CORS(corsAllowedOrigins, recoverPanic(logger, mux)),
			),
		),
	)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path, "request_id", requestIDFromContext(r.Context()))
				writeError(r.Context(), w, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
