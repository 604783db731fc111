// Package requestid attaches a unique identifier to every inbound HTTP request.
//
// Middleware generates a UUIDv4 before any other processing, stores it in the
// request context and echoes it in the X-Request-ID response header. The ID is
// never taken from the client. Downstream code reads it with FromContext and
// must not regenerate it.
//
// LoggerExtractor plugs into pkg/logger so every log record written with the
// request context carries a "request_id" attribute.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		_ = id
//	})
package requestid
