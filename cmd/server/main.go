package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/graph"
	"github.com/sevici/backend-go/internal/app"
	"github.com/sevici/backend-go/internal/cache"
	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// newHTTPServer wires the application behind the HTTP router
func newHTTPServer(ctx context.Context, cfg *config.Config, cacheCfg *config.CacheConfig) (*http.Server, error) {
	components, err := app.Build(ctx, cfg, cacheCfg, nil)
	if err != nil {
		return nil, err
	}

	apqCache, err := cache.NewGraphQLCache(components.CacheConfig)
	if err != nil {
		return nil, fmt.Errorf("initializing query cache: %w", err)
	}

	router := server.NewRouter(server.Options{
		Service:        components.Service,
		GraphQL:        graph.NewHandler(&graph.Resolver{Service: components.Service}, nil, apqCache),
		Contract:       cfg.Contract,
		CacheStats:     mergeStats(components.Snapshots.GetCacheStats, apqCache.Stats),
		AllowedOrigins: allowedOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPTimeout + 5*time.Second,
	}, nil
}

func mergeStats(sources ...func() map[string]uint64) func() map[string]uint64 {
	return func() map[string]uint64 {
		merged := make(map[string]uint64)
		for _, source := range sources {
			for k, v := range source() {
				merged[k] = v
			}
		}
		return merged
	}
}

func allowedOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func run(ctx context.Context) error {
	// Load base .env first, then .env.local which overrides for local development
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.InitializeLogging()

	srv, err := newHTTPServer(ctx, cfg, config.GetCacheConfig())
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("contract", cfg.Contract).Msg("API server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
