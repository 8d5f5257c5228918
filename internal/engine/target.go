package engine

import "smart_thermostat/internal/models"

// Setpoints and thresholds for the target rules.
const (
	ecoCoolSetpoint  = 28.0 // °C when unoccupied and hot outside
	ecoHeatSetpoint  = 18.0 // °C when unoccupied otherwise
	ecoHotOutdoorC   = 25.0
	nightOffset      = -1.0
	morningColdC     = 15.0
	morningBoost     = 0.5
	afternoonHotC    = 30.0
	afternoonSetback = -0.5
)

// ResolveTarget returns the target temperature for the given conditions.
// Rules are checked in priority order and the first match wins:
// unoccupied eco mode, then Night, Morning, Afternoon, then the preferred
// temperature for any other time of day. The result is not rounded.
func ResolveTarget(roomTemp, outdoorTemp, preferredTemp float64, timeOfDay string, occupancy bool) float64 {
	if !occupancy {
		if outdoorTemp > ecoHotOutdoorC {
			return ecoCoolSetpoint
		}
		return ecoHeatSetpoint
	}

	switch timeOfDay {
	case models.Night:
		return preferredTemp + nightOffset
	case models.Morning:
		if outdoorTemp < morningColdC {
			return preferredTemp + morningBoost
		}
	case models.Afternoon:
		if outdoorTemp > afternoonHotC {
			return preferredTemp + afternoonSetback
		}
	}
	return preferredTemp
}
