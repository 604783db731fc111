// Package instrument exposes HTTP request metrics through Prometheus.
//
// Metrics are registered on a private registry rather than the global one,
// so several instances can coexist in tests. Mount Middleware on a chi
// router and serve Handler on the metrics path:
//
//	m := instrument.New(instrument.WithStoredRecords(store.Len))
//	r.Use(m.Middleware)
//	r.Method(http.MethodGet, "/metrics", m.Handler())
package instrument
