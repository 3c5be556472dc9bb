package middleware

import (
	"net/http"

	"github.com/edvin/catalog/internal/api/response"
)

// MaxBodyBytes caps request bodies at limit bytes. A declared Content-Length
// over the limit is answered 413 up front; anything else is read through
// http.MaxBytesReader, so chunked bodies fail once they cross the limit.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				response.WriteFailure(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
