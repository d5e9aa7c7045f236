package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcubed/cubed/internal/api"
	"github.com/mcubed/cubed/internal/config"
	"github.com/mcubed/cubed/internal/factory"
	"github.com/mcubed/cubed/internal/services/auth"
	"github.com/mcubed/cubed/internal/storage/mongodb"
	redisstorage "github.com/mcubed/cubed/internal/storage/redis"
	"github.com/mcubed/cubed/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the Cubed admin service",
		Long: `Runs the Cubed admin service: the JSON API, the admin page routes and
the client bundle. Settings come from the environment (and an optional .env
file); flags override them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on (env: PORT)")
	flags.StringVar(&cfg.Host, "host", cfg.Host, "Host to bind (env: HOST)")
	flags.StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: mongo, redis, memory (env: STORAGE_TYPE)")
	flags.StringVar(&cfg.MongoURL, "mongo-url", cfg.MongoURL, "MongoDB connection string (env: MONGO_URL)")
	flags.StringVar(&cfg.MongoDB, "mongo-db", cfg.MongoDB, "MongoDB database name (env: MONGO_DB)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	flags.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Client bundle directory (env: STATIC_DIR)")
	flags.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session signing secret (env: SESSION_SECRET)")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		AuthConfig: auth.Config{
			SessionDuration: cfg.SessionDuration,
			Secret:          cfg.SessionSecret,
		},
		Logger:      logger,
		StorageType: cfg.StorageType,
		MongoConfig: mongodb.Config{
			URL:            cfg.MongoURL,
			Database:       cfg.MongoDB,
			ConnectTimeout: mongodb.DefaultConfig().ConnectTimeout,
		},
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		LineupController:   app.LineupController,
		WheelController:    app.WheelController,
		Store:              app.Driver,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	})

	// Page routes first; anything they do not match goes to the API
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		LineupController: app.LineupController,
		WheelController:  app.WheelController,
		StaticDir:        cfg.StaticDir,
		API:              apiRouter,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(api.CORS(cfg.CORSAllowedOrigins, webRouter), serverConfig, logger)
	server.OnShutdown(app.Driver.Close)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
