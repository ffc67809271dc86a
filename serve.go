package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"infinity_api/internal/controllers"
	"infinity_api/internal/repositories"
	"infinity_api/internal/routes"
	"infinity_api/internal/services"
	"infinity_api/internal/simulation"
	"infinity_api/internal/storage"
	"infinity_api/src"
	"infinity_api/src/logger"
)

type serveFlags struct {
	configPath    string
	host          string
	port          int
	storageDriver string
	logLevel      string
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Example: `  # MongoDB on localhost, offline simulation engine
  infinity-api serve

  # In-memory store, debug logs
  infinity-api serve --storage memory --log-level debug`,
	RunE: runServe,
}

func init() {
	f := &serveFlagVals
	serveCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML config file (overrides CONFIG_FILE)")
	serveCmd.Flags().StringVar(&f.host, "host", "", "Bind address")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 0, "HTTP port")
	serveCmd.Flags().StringVar(&f.storageDriver, "storage", "", "Document store: mongo or memory")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd)
}

// applyFlags overlays the flags the user set on cfg.
func applyFlags(cmd *cobra.Command, cfg *src.Config) error {
	f := &serveFlagVals
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = f.port
	}
	if cmd.Flags().Changed("storage") {
		cfg.Storage.Driver = f.storageDriver
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg.Validate()
}

func runServe(cmd *cobra.Command, _ []string) error {
	if path := serveFlagVals.configPath; path != "" {
		if err := os.Setenv(src.ConfigFileEnv, path); err != nil {
			return err
		}
	}
	cfg, err := src.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.InitLogger(cfg.Log); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      a.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("version", Version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// app holds the wired dependencies behind the HTTP handler.
type app struct {
	handler http.Handler
	store   storage.DocumentStore
	cache   storage.Cache
}

func newApp(ctx context.Context, cfg *src.Config) (*app, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var cache storage.Cache = storage.NopCache{}
	if cfg.Redis.URL != "" {
		redisCache, err := storage.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			_ = store.Close(context.Background())
			return nil, err
		}
		cache = redisCache
		logger.Info().Dur("ttl", cfg.Redis.TTL).Msg("redis cache enabled")
	}

	var engine simulation.Engine = simulation.NewLocal()
	if cfg.Simulation.URL != "" {
		engine = simulation.NewClient(cfg.Simulation)
		logger.Info().Str("url", cfg.Simulation.URL).Msg("using remote simulation worker")
	}

	handler := routes.NewRouter(routes.Options{
		Environments: controllers.NewEnvController(
			repositories.NewEnvironmentRepository(store, cache),
			services.NewEnvironmentService(engine),
		),
		Rockets: controllers.NewRocketController(
			repositories.NewRocketRepository(store, cache),
			services.NewRocketService(engine),
		),
		Flights: controllers.NewFlightController(
			repositories.NewFlightRepository(store, cache),
			services.NewFlightService(engine),
		),
		Store:   store,
		Metrics: routes.NewMetrics(),
	})

	return &app{handler: handler, store: store, cache: cache}, nil
}

func openStore(ctx context.Context, cfg *src.Config) (storage.DocumentStore, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case src.StorageMemory:
		logger.Warn().Msg("using in-memory store; data is lost on exit")
		return storage.NewMemoryStore(), nil
	default:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout+5*time.Second)
		defer cancel()
		store, err := storage.NewMongoStore(connectCtx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		return store, nil
	}
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.cache.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close cache")
	}
	if err := a.store.Close(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to close store")
	}
}
