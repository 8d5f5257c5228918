package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "THERMOSTAT"

// appConfig is the resolved runtime configuration.
type appConfig struct {
	Port     string
	DBPath   string
	LogLevel string
	LogFmt   string

	AuthRequired bool
	SigningKey   string
	TokenTTL     time.Duration

	WeatherAPIKey   string
	WeatherBaseURL  string
	WeatherTimeout  time.Duration
	FallbackOnError bool

	SimTick time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "thermostat.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("auth.required", false)
	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.base_url", "https://api.openweathermap.org")
	v.SetDefault("weather.timeout", 5*time.Second)
	v.SetDefault("weather.fallback_on_error", false)
	v.SetDefault("simulator.tick", time.Second)
}

// loadConfig reads configs/config.yml from dir (when present) and applies
// THERMOSTAT_* environment overrides, e.g. THERMOSTAT_WEATHER_API_KEY.
func loadConfig(v *viper.Viper, dir string) (appConfig, error) {
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return appConfig{}, err
		}
	}

	return appConfig{
		Port:            v.GetString("port"),
		DBPath:          v.GetString("db.path"),
		LogLevel:        v.GetString("log.level"),
		LogFmt:          v.GetString("log.format"),
		AuthRequired:    v.GetBool("auth.required"),
		SigningKey:      v.GetString("auth.signing_key"),
		TokenTTL:        v.GetDuration("auth.token_ttl"),
		WeatherAPIKey:   v.GetString("weather.api_key"),
		WeatherBaseURL:  v.GetString("weather.base_url"),
		WeatherTimeout:  v.GetDuration("weather.timeout"),
		FallbackOnError: v.GetBool("weather.fallback_on_error"),
		SimTick:         v.GetDuration("simulator.tick"),
	}, nil
}
