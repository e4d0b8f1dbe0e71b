// Package factory wires the application together
package factory

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tgrante/dicegame-go/internal/api"
	"github.com/tgrante/dicegame-go/internal/api/sse"
	"github.com/tgrante/dicegame-go/internal/dependencies/clock"
	"github.com/tgrante/dicegame-go/internal/dependencies/random"
	"github.com/tgrante/dicegame-go/internal/services/auth"
	"github.com/tgrante/dicegame-go/internal/services/scoring"
	"github.com/tgrante/dicegame-go/internal/services/session"
	"github.com/tgrante/dicegame-go/internal/storage"
	"github.com/tgrante/dicegame-go/internal/storage/memory"
	"github.com/tgrante/dicegame-go/internal/storage/redis"
)

type StorageType string

const (
	StorageTypeMemory StorageType = "memory"
	StorageTypeRedis  StorageType = "redis"
)

type Config struct {
	Logger      *slog.Logger
	StorageType StorageType
	Redis       redis.Config
	Server      api.ServerConfig
	Auth        auth.Config
}

// App is the fully wired application
type App struct {
	Logger      *slog.Logger
	Storage     storage.Storage
	Scoring     *scoring.Service
	Sessions    *session.Controller
	Auth        *auth.Service
	Hubs        *sse.HubManager
	Broadcaster *sse.Broadcaster
	Router      http.Handler
	Server      *api.Server
}

// New builds the app with production dependencies
func New(config Config) (*App, error) {
	var store storage.Storage
	switch config.StorageType {
	case StorageTypeMemory, "":
		store = memory.New()
	case StorageTypeRedis:
		store = redis.New(config.Redis)
	default:
		return nil, fmt.Errorf("unknown storage type %q", config.StorageType)
	}
	return newWithDependencies(config, store, clock.NewSystemClock(), random.NewCryptoRandom()), nil
}

func newWithDependencies(
	config Config,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
) *App {
	logger := config.Logger
	scoringService := scoring.New()
	sessions := session.New(logger, store, scoringService, clk, rnd)
	authService := auth.New(logger, clk, config.Auth)
	hubs := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(logger, hubs)

	router := api.NewRouter(logger, authService, sessions, hubs, broadcaster)
	server := api.NewServer(logger, config.Server, router)

	return &App{
		Logger:      logger,
		Storage:     store,
		Scoring:     scoringService,
		Sessions:    sessions,
		Auth:        authService,
		Hubs:        hubs,
		Broadcaster: broadcaster,
		Router:      router,
		Server:      server,
	}
}

// NewForTesting builds the app over injected dependencies
func NewForTesting(
	config Config,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
) *App {
	return newWithDependencies(config, store, clk, rnd)
}
