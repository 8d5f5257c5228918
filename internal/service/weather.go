package service

import (
	"context"

	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/weather"
)

type WeatherService struct {
	primary         weather.Provider
	fallback        weather.Provider
	fallbackOnError bool
	log             *logger.Logger
}

func NewWeatherService(primary, fallback weather.Provider, fallbackOnError bool, log *logger.Logger) *WeatherService {
	return &WeatherService{primary: primary, fallback: fallback, fallbackOnError: fallbackOnError, log: log}
}

// Current returns the outdoor temperature at the given point. With
// useFallback the sample provider answers directly; otherwise provider
// errors are returned unless fallbackOnError is set.
func (s *WeatherService) Current(ctx context.Context, at weather.Coordinates, useFallback bool) (models.WeatherReading, error) {
	if useFallback {
		return s.fallback.Current(ctx, at)
	}
	if err := at.Validate(); err != nil {
		return models.WeatherReading{}, err
	}

	r, err := s.primary.Current(ctx, at)
	if err == nil {
		return r, nil
	}
	if !s.fallbackOnError {
		return models.WeatherReading{}, err
	}
	s.log.Warnw("weather_degraded_to_fallback", "err", err, "lat", at.Lat, "lon", at.Lon)
	return s.fallback.Current(ctx, at)
}
