package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/clientmeta/pkg/clientip"
	"github.com/dmitrymomot/clientmeta/pkg/config"
	"github.com/dmitrymomot/clientmeta/pkg/cookie"
	"github.com/dmitrymomot/clientmeta/pkg/httpserver"
	"github.com/dmitrymomot/clientmeta/pkg/instrument"
	"github.com/dmitrymomot/clientmeta/pkg/logger"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/svc/api"
	"github.com/dmitrymomot/clientmeta/svc/cookies"
	"github.com/dmitrymomot/clientmeta/svc/metricstore"
)

type appConfig struct {
	Env            string   `env:"APP_ENV" envDefault:"development"`
	Name           string   `env:"APP_NAME" envDefault:"clientmeta"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5003" envSeparator:","`
	RuntimeMetrics bool     `env:"METRICS_RUNTIME" envDefault:"true"`

	Server httpserver.Config
	Cookie cookie.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	store := metricstore.New()

	metricOpts := []instrument.Option{instrument.WithStoredRecords(store.Len)}
	if cfg.RuntimeMetrics {
		metricOpts = append(metricOpts, instrument.WithRuntimeCollectors())
	}

	service := api.New(store,
		cookies.NewWriter(cookie.NewFromConfig(cfg.Cookie)),
		api.WithLogger(log),
		api.WithMetrics(instrument.New(metricOpts...)),
		api.WithAllowedOrigins(cfg.AllowedOrigins...),
	)

	server := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("cookie settings",
				slog.String("domain", cfg.Cookie.Domain),
				slog.Int("max_age", cfg.Cookie.MaxAge),
			)
		}),
	)

	if err := server.Run(context.Background(), service.Router()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
