package service

import (
	"context"
	"time"

	"smart_thermostat/internal/engine"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/weather"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Thermostat computes adjustments and records them.
type Thermostat interface {
	Adjust(ctx context.Context, req models.AdjustmentRequest) (models.AdjustmentResult, error)
}

// History exposes the append-only adjustment log.
type History interface {
	All(ctx context.Context) ([]models.AdjustmentRecord, error)
	List(ctx context.Context, f HistoryFilter) ([]models.AdjustmentRecord, error)
}

// Monitoring exposes the simulated room state.
type Monitoring interface {
	GetState(ctx context.Context) (models.ThermostatState, error)
}

// Weather looks up the outdoor temperature.
type Weather interface {
	Current(ctx context.Context, at weather.Coordinates, useFallback bool) (models.WeatherReading, error)
}

// Simulator moves the room temperature toward the target over time.
// Stop via context cancellation.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Thermostat
	History
	Monitoring
	Weather
	Simulator
	Authorization
}

// Options carries the collaborators and settings that are not repositories.
// Zero values get defaults.
type Options struct {
	Engine          *engine.Engine
	WeatherProvider weather.Provider
	Fallback        weather.Provider
	FallbackOnError bool
	SigningKey      string
	TokenTTL        time.Duration
	Log             *logger.Logger
}

func NewService(repos *repository.Repository, opts Options) *Service {
	if opts.Engine == nil {
		opts.Engine = engine.New()
	}
	if opts.Fallback == nil {
		opts.Fallback = weather.NewFallbackProvider()
	}
	if opts.WeatherProvider == nil {
		opts.WeatherProvider = weather.NewOpenWeatherClient("")
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	return &Service{
		Thermostat:    NewThermostatService(opts.Engine, repos.HistoryRepo, repos.StateRepo, opts.Log),
		History:       NewHistoryService(repos.HistoryRepo),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		Weather:       NewWeatherService(opts.WeatherProvider, opts.Fallback, opts.FallbackOnError, opts.Log),
		Simulator:     NewSimulatorService(repos.StateRepo, opts.Log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
