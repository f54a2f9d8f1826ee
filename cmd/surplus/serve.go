package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rpgo/surplus-calculator/internal/cache"
	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/internal/logging"
	"github.com/rpgo/surplus-calculator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison HTTP API",
		Long:  "Run the comparison HTTP API. Settings come from an optional file, a .env file and SURPLUS_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return err
			}

			logger := logging.New(logging.Config{
				Level:     logging.ParseLevel(settings.Logging.Level),
				Format:    settings.Logging.Format,
				Component: logging.ComponentApp,
				Output:    cmd.ErrOrStderr(),
			})
			logging.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router, cleanup := buildAPI(settings, logger)
			defer cleanup()

			return server.New(settings, router, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "", "optional settings file (yaml, json or toml)")
	return cmd
}

// buildAPI assembles the engine, its cache and the HTTP handler from settings
func buildAPI(settings *config.Settings, logger *logging.Logger) (*mux.Router, func()) {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.WithComponent(logging.ComponentEngine))

	cacheLogger := logger.WithComponent(logging.ComponentCache)
	checks := map[string]server.Pinger{}
	var (
		store   cache.Cache
		cleanup func()
	)
	if settings.UseRedis() {
		r := cache.NewRedis(cache.NewRedisClient(settings.Cache.RedisAddr, settings.Cache.RedisPassword, settings.Cache.RedisDB), settings.Cache.TTL)
		checks["redis"] = r
		store = r
		cleanup = func() { _ = r.Close() }
		cacheLogger.Info("using redis cache", "addr", settings.Cache.RedisAddr)
	} else {
		lru := cache.NewLRU(settings.Cache.Size, settings.Cache.TTL)
		janitor := cache.NewJanitor(lru)
		janitor.Start(time.Minute)
		store = lru
		cleanup = janitor.Stop
		cacheLogger.Info("using in-memory cache", "size", settings.Cache.Size, "ttl", settings.Cache.TTL)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := server.NewHandler(server.Options{
		Engine:             cache.NewMemoizer(engine, store, cacheLogger),
		Metrics:            server.NewMetrics(reg),
		Logger:             logger,
		DefaultSavingsRate: settings.DefaultSavingsRate(),
		Checks:             checks,
	})
	return server.NewRouter(handler, reg), cleanup
}
