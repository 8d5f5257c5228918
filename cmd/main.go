package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_thermostat/internal/engine"
	"smart_thermostat/internal/handlers"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/repository/db"
	"smart_thermostat/internal/server"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/weather"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title        Smart Thermostat API
// @version      1.0
// @description  Temperature adjustment engine with history, weather lookup and a simulated room.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := loadConfig(viper.GetViper(), "configs")
	log := logger.Get(cfg.LogLevel, cfg.LogFmt)
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	defer func() { _ = log.Sync() }()

	sqlDB, err := openDB(cfg.DBPath, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		Engine: engine.New(),
		WeatherProvider: weather.NewOpenWeatherClient(cfg.WeatherAPIKey,
			weather.WithBaseURL(cfg.WeatherBaseURL),
			weather.WithTimeout(cfg.WeatherTimeout),
		),
		FallbackOnError: cfg.FallbackOnError,
		SigningKey:      cfg.SigningKey,
		TokenTTL:        cfg.TokenTTL,
		Log:             log,
	})
	apiHandler := handlers.NewHandler(services, log, cfg.AuthRequired)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Simulator.Run(ctx, cfg.SimTick)

	srv := server.New(server.Config{Port: cfg.Port}, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(cancel, srv, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the simulator
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
