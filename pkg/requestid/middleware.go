package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the response header the assigned request ID is echoed in.
const Header = "X-Request-ID"

// Generator produces a new request ID.
type Generator func() string

// NewID returns a random UUIDv4 string.
func NewID() string {
	return uuid.New().String()
}

// Middleware tags every request with a freshly generated UUID. Client supplied
// X-Request-ID values are ignored so downstream code can rely on the ID being
// server-issued.
func Middleware(next http.Handler) http.Handler {
	return WithGenerator(NewID)(next)
}

// WithGenerator builds the tagging middleware around a custom ID source.
// A nil generator falls back to NewID.
func WithGenerator(gen Generator) func(http.Handler) http.Handler {
	if gen == nil {
		gen = NewID
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := gen()
			w.Header().Set(Header, requestID)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}
