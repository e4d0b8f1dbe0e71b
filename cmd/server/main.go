package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tgrante/dicegame-go/internal/api"
	"github.com/tgrante/dicegame-go/internal/factory"
	"github.com/tgrante/dicegame-go/internal/services/auth"
	"github.com/tgrante/dicegame-go/internal/storage/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	config := factory.Config{
		Logger:      logger,
		StorageType: factory.StorageType(envOr("STORAGE_TYPE", string(factory.StorageTypeMemory))),
		Redis:       redisConfig(),
		Server:      serverConfig(),
		Auth:        auth.DefaultConfig(),
	}

	app, err := factory.New(config)
	if err != nil {
		logger.Error("failed to build application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		app.Hubs.Shutdown()
		if err := app.Server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func serverConfig() api.ServerConfig {
	config := api.DefaultServerConfig()
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		config.Port = port
	}
	if host := os.Getenv("HOST"); host != "" {
		config.Host = host
	}
	return config
}

func redisConfig() redis.Config {
	config := redis.DefaultConfig()
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		config.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Password = password
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logLevel() slog.Level {
	if os.Getenv("LOG_LEVEL") == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
