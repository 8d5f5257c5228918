// Package weather looks up the current outdoor temperature.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math"

	"smart_thermostat/internal/models"
)

// Failure reasons reported by providers.
var (
	ErrNotConfigured = errors.New("weather provider is not configured")
	ErrUnauthorized  = errors.New("weather API key invalid")
	ErrRateLimited   = errors.New("weather service rate limit reached")
	ErrTimeout       = errors.New("weather service timed out")
	ErrUnavailable   = errors.New("weather service unavailable")

	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate rejects points outside the valid latitude/longitude range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)
}

// Provider returns the current temperature at a location.
type Provider interface {
	Current(ctx context.Context, at Coordinates) (models.WeatherReading, error)
}
