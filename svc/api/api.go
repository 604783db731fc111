package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/clientmeta/handler"
	"github.com/dmitrymomot/clientmeta/pkg/clientip"
	"github.com/dmitrymomot/clientmeta/pkg/httpserver"
	"github.com/dmitrymomot/clientmeta/pkg/instrument"
	"github.com/dmitrymomot/clientmeta/pkg/logger"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/svc/collector"
	"github.com/dmitrymomot/clientmeta/svc/cookies"
	"github.com/dmitrymomot/clientmeta/svc/metricstore"
)

// DefaultAllowedOrigins are the browser origins allowed when none are configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5003"}

// API serves the telemetry and cookie endpoints.
type API struct {
	store     *metricstore.Store
	cookies   *cookies.Writer
	collector *collector.Collector
	metrics   *instrument.Metrics
	log       *slog.Logger
	origins   []string
	now       func() time.Time
	onError   handler.ErrorHandler
}

// Option configures an API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func WithCollector(c *collector.Collector) Option {
	return func(a *API) {
		if c != nil {
			a.collector = c
		}
	}
}

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(m *instrument.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

func WithAllowedOrigins(origins ...string) Option {
	return func(a *API) {
		if len(origins) > 0 {
			a.origins = origins
		}
	}
}

// WithClock sets the clock used to stamp stored records.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// New returns an API storing records in store and writing cookies with w.
func New(store *metricstore.Store, w *cookies.Writer, opts ...Option) *API {
	a := &API{
		store:   store,
		cookies: w,
		log:     logger.Discard(),
		origins: DefaultAllowedOrigins,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.collector == nil {
		a.collector = collector.New(collector.WithClock(a.now))
	}
	a.log = a.log.With(logger.Component("api"))
	a.onError = handler.NewErrorHandler(a.log)
	return a
}

// Router builds the HTTP handler with the full middleware stack.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}
	r.Use(accessLog(a.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{requestid.Header},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(a.errorResponse(handler.ErrNotFound))
	r.MethodNotAllowed(a.errorResponse(handler.ErrMethodNotAllowed))

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	r.Route("/cookie", func(r chi.Router) {
		r.Post("/client-data", handler.Wrap(a.clientData,
			handler.WithErrorHandler[struct{}](a.onError),
		))
		r.Post("/set", handler.Wrap(a.setCookies,
			handler.WithBinder[snapshotRequest](bindSnapshot),
			handler.WithErrorHandler[snapshotRequest](a.onError),
		))
		r.Post("/clear", handler.Wrap(a.clearCookies,
			handler.WithErrorHandler[struct{}](a.onError),
		))
		r.Get("/records", handler.Wrap(a.listRecords,
			handler.WithErrorHandler[struct{}](a.onError),
		))
	})

	r.Post("/collect", handler.Wrap(a.collect,
		handler.WithBinder[collectRequest](bindCollect),
		handler.WithErrorHandler[collectRequest](a.onError),
	))

	return r
}

func (a *API) errorResponse(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.onError(handler.NewContext(w, r), err)
	}
}
