package engine

import (
	"fmt"
	"math"
	"math/rand/v2"

	"smart_thermostat/internal/models"
)

// Fixed advisories.
const (
	EcoModeSuggestion = "Room is unoccupied. Activating eco mode to save energy."
	OptimalSuggestion = "Current setting is optimal for comfort and energy efficiency."

	NightSuggestion       = "Lower temperature at night can improve sleep quality and save energy."
	PreHeatSuggestion     = "It's cold outside. Pre-heating the room is recommended."
	FanSuggestion         = "It's hot outside. Consider using fans to supplement cooling."
	BlindsSuggestion      = "Keep blinds/curtains closed to prevent heat gain from sunlight."
	SealSuggestion        = "Ensure windows and doors are sealed to prevent heat loss."
	HighSettingSuggestion = "Setting above 25°C will optimize energy savings."
	LowSettingSuggestion  = "Setting below 19°C will increase energy consumption."

	largeChangeFormat = "Large temperature change of %.1f°C may use significant energy. Consider a gradual change."
)

const (
	largeChangeC    = 3.0
	preHeatOutdoorC = 10.0
	fanOutdoorC     = 30.0
	outdoorGapC     = 5.0
	highSettingC    = 25.0
	lowSettingC     = 19.0
)

// Selector picks one advisory out of a non-empty candidate list.
type Selector func(candidates []string) string

// RandomSelector picks uniformly at random. Safe for concurrent use.
func RandomSelector(candidates []string) string {
	return candidates[rand.IntN(len(candidates))]
}

// FirstSelector always picks the first candidate.
func FirstSelector(candidates []string) string {
	return candidates[0]
}

// Candidates lists every advisory that applies to an occupied room.
// It returns nil for an unoccupied room, which always gets EcoModeSuggestion.
func Candidates(adjustedTemp, currentTemp, outdoorTemp float64, occupancy bool, timeOfDay string) []string {
	if !occupancy {
		return nil
	}

	var out []string

	if change := math.Abs(adjustedTemp - currentTemp); change > largeChangeC {
		out = append(out, fmt.Sprintf(largeChangeFormat, change))
	}

	switch {
	case timeOfDay == models.Night:
		out = append(out, NightSuggestion)
	case timeOfDay == models.Morning && outdoorTemp < preHeatOutdoorC:
		out = append(out, PreHeatSuggestion)
	case timeOfDay == models.Afternoon && outdoorTemp > fanOutdoorC:
		out = append(out, FanSuggestion)
	}

	switch {
	case outdoorTemp > adjustedTemp+outdoorGapC:
		out = append(out, BlindsSuggestion)
	case outdoorTemp < adjustedTemp-outdoorGapC:
		out = append(out, SealSuggestion)
	}

	switch {
	case adjustedTemp > highSettingC:
		out = append(out, HighSettingSuggestion)
	case adjustedTemp < lowSettingC:
		out = append(out, LowSettingSuggestion)
	}

	return out
}

// Suggest returns the advisory to show for the given setting.
// A nil selector falls back to RandomSelector.
func Suggest(adjustedTemp, currentTemp, outdoorTemp float64, occupancy bool, timeOfDay string, pick Selector) string {
	if !occupancy {
		return EcoModeSuggestion
	}
	candidates := Candidates(adjustedTemp, currentTemp, outdoorTemp, occupancy, timeOfDay)
	if len(candidates) == 0 {
		return OptimalSuggestion
	}
	if pick == nil {
		pick = RandomSelector
	}
	return pick(candidates)
}
