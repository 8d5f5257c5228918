package models

import "time"

// WeatherReading is the outdoor temperature reported for a location.
type WeatherReading struct {
	TemperatureC float64   `json:"temperature"`
	Location     string    `json:"location"`
	Fallback     bool      `json:"fallback"`
	FetchedAt    time.Time `json:"fetched_at"`
}
