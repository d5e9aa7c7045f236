package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcubed/cubed/internal/dependencies/clock"
	"github.com/mcubed/cubed/internal/dependencies/random"
	"github.com/mcubed/cubed/internal/services/auth"
	"github.com/mcubed/cubed/internal/services/lineup"
	"github.com/mcubed/cubed/internal/services/wheel"
	"github.com/mcubed/cubed/internal/storage"
	"github.com/mcubed/cubed/internal/storage/memory"
	"github.com/mcubed/cubed/internal/storage/mongodb"
	redisstorage "github.com/mcubed/cubed/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMongo  = "mongo"
	StorageTypeRedis  = "redis"
	StorageTypeMemory = "memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Driver      storage.Driver
	Collections *storage.Collections

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService      *auth.Service
	LineupController *lineup.Controller
	WheelController  *wheel.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("mongo", "redis" or "memory")
	// If empty, defaults to "mongo"
	StorageType string
	// MongoConfig holds MongoDB connection settings. Missing settings leave the store disabled
	// rather than failing startup.
	MongoConfig mongodb.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var driver storage.Driver
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMongo
	}

	switch storageType {
	case StorageTypeMongo:
		mongoStore := mongodb.New(cfg.MongoConfig)
		if !mongoStore.Configured() {
			logger.Warn("mongo connection settings missing, store disabled")
		}
		driver = mongoStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		driver = redisStore
	case StorageTypeMemory:
		driver = memory.New()
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'mongo', 'redis' or 'memory'", storageType)
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg.SessionDuration = auth.DefaultConfig().SessionDuration
	}
	if authCfg.Secret == "" {
		logger.Info("no session secret configured, sessions end on restart")
	}

	return newWithDependencies(driver, clk, rnd, authCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(driver storage.Driver, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	cols := storage.NewCollections(driver, logger)

	authService, err := auth.New(cols.Users, clk, rnd, authCfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Driver:           driver,
		Collections:      cols,
		Clock:            clk,
		Random:           rnd,
		AuthService:      authService,
		LineupController: lineup.NewController(cols.AlternateNames, cols.MissingNames, clk),
		WheelController:  wheel.NewController(cols.WheelCategories, cols.WheelWords),
	}, nil
}
