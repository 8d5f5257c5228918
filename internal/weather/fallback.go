package weather

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"smart_thermostat/internal/models"
)

// Range of temperatures the fallback provider reports, °C.
const (
	FallbackMinC = 5.0
	FallbackMaxC = 30.0
)

// SampleLocations are the place names the fallback provider reports.
var SampleLocations = []string{
	"New York", "London", "Tokyo", "Sydney", "Paris",
	"Berlin", "Toronto", "Singapore", "Dubai", "Cape Town",
}

// FallbackProvider makes up a plausible reading when no real provider is usable.
type FallbackProvider struct {
	intn func(n int) int
	unit func() float64
	now  func() time.Time
}

// NewFallbackProvider uses the concurrency-safe global math/rand/v2 source.
func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{intn: rand.IntN, unit: rand.Float64, now: time.Now}
}

// NewSeededFallbackProvider is deterministic for a given seed. Not safe for concurrent use.
func NewSeededFallbackProvider(seed uint64) *FallbackProvider {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &FallbackProvider{intn: r.IntN, unit: r.Float64, now: time.Now}
}

var _ Provider = (*FallbackProvider)(nil)

// Current ignores the coordinates and never fails.
func (p *FallbackProvider) Current(_ context.Context, _ Coordinates) (models.WeatherReading, error) {
	temp := FallbackMinC + p.unit()*(FallbackMaxC-FallbackMinC)
	return models.WeatherReading{
		TemperatureC: math.Min(FallbackMaxC, round1(temp)),
		Location:     SampleLocations[p.intn(len(SampleLocations))] + " (Sample Data)",
		Fallback:     true,
		FetchedAt:    p.now().UTC(),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
