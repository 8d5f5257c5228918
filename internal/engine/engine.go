// Package engine turns room conditions and preferences into a thermostat recommendation.
//
// Everything here is pure computation with no shared mutable state, so an
// Engine can serve concurrent requests without locking.
package engine

import (
	"strconv"

	"smart_thermostat/internal/models"
)

// Engine runs the target, efficiency and suggestion stages for a request.
type Engine struct {
	pick Selector
}

// Option configures an Engine.
type Option func(*Engine)

// WithSelector sets how one advisory is chosen among several candidates.
func WithSelector(s Selector) Option {
	return func(e *Engine) {
		if s != nil {
			e.pick = s
		}
	}
}

// New builds an Engine that selects advisories at random unless told otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{pick: RandomSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Adjust computes the recommendation for req.
func (e *Engine) Adjust(req models.AdjustmentRequest) models.AdjustmentResult {
	target := ResolveTarget(req.RoomTemp, req.OutdoorTemp, req.PreferredTemp, req.TimeOfDay, req.Occupancy)

	return models.AdjustmentResult{
		AdjustedTemp:     Round1(target),
		CurrentTemp:      req.RoomTemp,
		PreferredTemp:    req.PreferredTemp,
		Change:           Round1(target - req.RoomTemp),
		EnergyEfficiency: ScoreEfficiency(req.RoomTemp, target, req.OutdoorTemp, req.Occupancy),
		AISuggestion:     Suggest(target, req.RoomTemp, req.OutdoorTemp, req.Occupancy, req.TimeOfDay, e.pick),
	}
}

// Round1 rounds the exact binary value of v to one decimal place. Exact ties
// go to the even digit, so 22.25 gives 22.2 and -0.25 gives -0.2.
func Round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
