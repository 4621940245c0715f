// Command deviceprintd exposes the fingerprint pipeline as an HTTP service.
// A browser sensor script posts its telemetry payload to /v1/fingerprint;
// the service merges it with the request surface, runs the collection
// pipeline, and returns the fingerprint. With Redis configured it also
// reports how often each fingerprint has been seen recently.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oschwald/geoip2-golang/v2"

	"github.com/dmitrymomot/deviceprint/pkg/config"
	"github.com/dmitrymomot/deviceprint/pkg/httpserver"
	"github.com/dmitrymomot/deviceprint/pkg/logger"
	"github.com/dmitrymomot/deviceprint/pkg/redis"
	"github.com/dmitrymomot/deviceprint/pkg/requestid"
	"github.com/dmitrymomot/deviceprint/pkg/sightings"
	"github.com/dmitrymomot/deviceprint/pkg/signals"
)

type appConfig struct {
	HTTP  httpserver.Config
	Log   logger.Config
	Redis redis.Config

	// GeoIPPath points at a MaxMind City database; empty disables the geo signal.
	GeoIPPath string `env:"GEOIP_DB_PATH"`
	// PresetsPath points at a YAML file with caller-defined presets.
	PresetsPath string `env:"PRESETS_FILE"`
	// SignalTimeout bounds deferred collectors per collection run.
	SignalTimeout time.Duration `env:"SIGNAL_TIMEOUT" envDefault:"3s"`
	// IncludeComponents controls whether responses echo the raw component values.
	IncludeComponents bool `env:"RESPONSE_INCLUDE_COMPONENTS" envDefault:"true"`
	// SightingsWindow is the rolling window for fingerprint sighting counts.
	SightingsWindow time.Duration `env:"SIGHTINGS_WINDOW" envDefault:"24h"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad[appConfig]()

	log := logger.NewFromConfig(cfg.Log,
		logger.WithAttr(slog.String("service", "deviceprintd")),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	app := &app{
		registry:          signals.NewRegistry(),
		signalTimeout:     cfg.SignalTimeout,
		includeComponents: cfg.IncludeComponents,
		log:               log,
	}

	if cfg.GeoIPPath != "" {
		geoDB, err := geoip2.Open(cfg.GeoIPPath)
		if err != nil {
			// Geo enrichment is best-effort: the signal degrades to a
			// sentinel rather than blocking startup.
			log.Warn("geoip database unavailable, geo signal disabled",
				slog.String("path", cfg.GeoIPPath), logger.Error(err))
		} else {
			defer geoDB.Close()
			app.geo = geoDB
			log.Info("geoip database loaded", slog.String("path", cfg.GeoIPPath))
		}
	}

	if cfg.PresetsPath != "" {
		presets, err := loadPresets(cfg.PresetsPath)
		if err != nil {
			return err
		}
		app.presets = presets
		log.Info("custom presets loaded",
			slog.String("path", cfg.PresetsPath), slog.Int("count", len(presets)))
	}

	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		app.tracker = sightings.New(client, sightings.WithWindow(cfg.SightingsWindow))
		app.redisProbe = redis.Healthcheck(client)
		log.Info("sighting tracking enabled")
	}

	srv := httpserver.New(cfg.HTTP, log)
	return srv.Run(ctx, app.router())
}
