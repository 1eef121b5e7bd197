// Package app assembles the ward registry server from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"wardregistry/internal/platform/config"
	"wardregistry/internal/platform/httpserver"
	platformmetrics "wardregistry/internal/platform/metrics"
	platformredis "wardregistry/internal/platform/redis"
	"wardregistry/internal/registry"
	"wardregistry/internal/registry/export"
	"wardregistry/internal/registry/seed"
	"wardregistry/internal/registry/service"
	"wardregistry/internal/registry/store/sequence"
	"wardregistry/pkg/platform/httputil"
	"wardregistry/pkg/platform/middleware/actor"
	"wardregistry/pkg/platform/middleware/requestid"
	"wardregistry/pkg/platform/middleware/requesttime"
)

// App owns the registry module and the process-level resources around it.
type App struct {
	cfg     config.Config
	logger  *slog.Logger
	Module  *registry.Module
	metrics *platformmetrics.Metrics
	redis   *platformredis.Client
}

// New connects optional backends, builds the registry and applies the seed
// file when one is configured.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a := &App{cfg: cfg, logger: logger, metrics: platformmetrics.New(reg)}

	var seq service.Sequencer
	if cfg.Redis.URL != "" {
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = client
		var opts []sequence.RedisOption
		if cfg.Redis.KeyPrefix != "" {
			opts = append(opts, sequence.WithKeyPrefix(cfg.Redis.KeyPrefix))
		}
		seq = sequence.NewRedis(client.Client, opts...)
		logger.Info("case numbers sequenced in redis")
	}

	var uploader export.Uploader
	if cfg.Export.Bucket != "" {
		u, err := export.NewS3Uploader(ctx, export.S3Config{
			Bucket:    cfg.Export.Bucket,
			Region:    cfg.Export.Region,
			Endpoint:  cfg.Export.Endpoint,
			Prefix:    cfg.Export.Prefix,
			PathStyle: cfg.Export.PathStyle,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		uploader = u
		logger.Info("export uploads enabled", "bucket", cfg.Export.Bucket)
	}

	a.Module = registry.New(registry.Options{
		Logger:            logger,
		Registerer:        reg,
		Location:          loc,
		PageSize:          cfg.Registry.PageSize,
		DrillDownPageSize: cfg.Registry.DrillDownPageSize,
		MilitaryHighlight: cfg.Registry.MilitaryHighlight,
		Sequencer:         seq,
		Uploader:          uploader,
		AuditBuffer:       cfg.Registry.AuditBuffer,
	})

	if cfg.Registry.SeedPath != "" {
		f, err := seed.LoadFile(cfg.Registry.SeedPath)
		if err != nil {
			a.Close()
			return nil, err
		}
		res, err := seed.Apply(ctx, a.Module.Service, f, loc)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("apply seed %s: %w", cfg.Registry.SeedPath, err)
		}
		logger.Info("seed applied",
			"path", cfg.Registry.SeedPath,
			"catalog_entries", res.Catalogs,
			"dwellings", res.Dwellings,
		)
	}
	return a, nil
}

// Router mounts the registry API behind the request-scoped middleware.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(actor.Middleware(a.cfg.Server.DefaultActor))
	r.Use(a.metrics.Middleware)
	r.Get("/healthz", a.handleHealth)
	a.Module.Handler.Register(r)
	return r
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if a.redis != nil {
		if err := a.redis.Health(r.Context()); err != nil {
			a.logger.WarnContext(r.Context(), "redis health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "redis": err.Error()})
			return
		}
		status["redis"] = "ok"
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

// Run serves the API and the metrics listener until ctx is cancelled or
// either listener fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	api := httpserver.New(a.cfg.Server.Addr, a.Router())
	g.Go(func() error {
		return httpserver.Run(ctx, api, a.cfg.Server.ShutdownTimeout, a.logger)
	})
	if a.cfg.Server.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", a.metrics.Handler())
		metricsSrv := httpserver.New(a.cfg.Server.MetricsAddr, mux)
		g.Go(func() error {
			return httpserver.Run(ctx, metricsSrv, a.cfg.Server.ShutdownTimeout, a.logger)
		})
	}
	return g.Wait()
}

// Close flushes the audit trail and releases backend connections.
func (a *App) Close() {
	if a.Module != nil {
		a.Module.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", "error", err)
		}
	}
}
