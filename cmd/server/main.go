package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/classhub/navigation-service/internal/api"
	"github.com/classhub/navigation-service/internal/api/metrics"
	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/service"
	mongostore "github.com/classhub/navigation-service/internal/infrastructure/db/mongo"
	redisstore "github.com/classhub/navigation-service/internal/infrastructure/db/redis"
	"github.com/classhub/navigation-service/internal/infrastructure/http/handlers"
	"github.com/classhub/navigation-service/internal/infrastructure/routesource"
	"github.com/classhub/navigation-service/internal/pkg/config"
	"github.com/classhub/navigation-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "navigation",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("navigation service stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	kind := domain.RouteSourceKind(cfg.Routes.Source)
	opts := routesource.Options{
		Kind:            kind,
		FilePath:        cfg.Routes.File,
		MongoCollection: cfg.Mongo.Collection,
		RedisKey:        cfg.Redis.Key,
	}
	deps := map[string]handlers.Pinger{}

	switch kind {
	case domain.SourceMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "classhub-navigation",
		})
		if err != nil {
			return err
		}
		defer disconnectMongo(client, log)
		opts.MongoDB = db
		deps["mongodb"] = mongostore.Pinger{DB: db}
	case domain.SourceRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Redis = client
		deps["redis"] = redisstore.Pinger{Client: client}
	}

	if cfg.Routes.Seed {
		if err := seed(ctx, opts, log); err != nil {
			return err
		}
	}

	src, err := routesource.Select(opts)
	if err != nil {
		return err
	}
	routes, err := routesource.Load(ctx, src, log)
	if err != nil {
		return err
	}

	reg := prometheus.DefaultRegisterer
	navigation := service.NewNavigationService(routes, metrics.New(reg), log)
	e := api.NewRouter(api.Deps{
		Navigation: navigation,
		Readiness:  handlers.NewReadinessHandler(len(routes), deps),
		JWTSecret:  cfg.JWTSecret,
		Logger:     log,
		Registerer: reg,
		Gatherer:   prometheus.DefaultGatherer,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("routes_source", src.Name()).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// seed writes the compiled-in table into an empty store before it is read.
func seed(ctx context.Context, opts routesource.Options, log zerolog.Logger) error {
	switch opts.Kind {
	case domain.SourceMongo:
		repo := mongostore.NewRouteRepository(opts.MongoDB, opts.MongoCollection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure route indexes: %w", err)
		}
		wrote, err := repo.Seed(ctx, domain.DefaultRoutes())
		if err != nil {
			return err
		}
		log.Info().Bool("written", wrote).Msg("mongo route collection seeded")
	case domain.SourceRedis:
		snap := redisstore.NewRouteSnapshot(opts.Redis, opts.RedisKey)
		existing, err := snap.Load(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			log.Info().Int("routes", len(existing)).Msg("redis route snapshot present, seed skipped")
			return nil
		}
		if err := snap.Publish(ctx, domain.DefaultRoutes()); err != nil {
			return fmt.Errorf("publish route snapshot: %w", err)
		}
		log.Info().Int("routes", len(domain.DefaultRoutes())).Msg("redis route snapshot seeded")
	default:
		log.Warn().Str("routes_source", string(opts.Kind)).Msg("ROUTES_SEED ignored for this source")
	}
	return nil
}

func disconnectMongo(client *mongo.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect")
	}
}

