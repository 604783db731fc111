// Package api exposes the HTTP surface of the service on a chi router.
//
// Routes:
//
//	GET  /health              liveness, always {"status":"OK"}
//	GET  /metrics             Prometheus exposition (when metrics are enabled)
//	POST /cookie/client-data  header-derived client description
//	POST /cookie/set          mirror a snapshot into cookies and store it
//	POST /cookie/clear        expire every telemetry cookie
//	GET  /cookie/records      every stored record, oldest first
//	POST /collect             store a validated submission
//
// Every request gets a fresh X-Request-ID, its client IP resolved into the
// context, an access log line and, when enabled, Prometheus metrics. CORS is
// restricted to the configured origins with credentials allowed.
package api
