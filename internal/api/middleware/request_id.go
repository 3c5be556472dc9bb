package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/edvin/catalog/internal/platform"
)

// RequestIDHeader is honored on the way in and echoed on the way out.
const RequestIDHeader = "X-Request-ID"

// RequestID stores a request id in the context under chi's RequestIDKey so
// middleware.GetReqID keeps working. A caller-supplied X-Request-ID wins over
// a generated one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = platform.NewID()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
