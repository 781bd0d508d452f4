package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-wise/internal/utils"
)

// withTraceID reuses the caller's X-Trace-ID or generates a UUIDv7, attaches
// it to the request logger and context, and echoes it in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	ids := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
