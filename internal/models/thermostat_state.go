package models

import "time"

// ThermostatState is the simulated room snapshot (single row, id=1).
type ThermostatState struct {
	ID             int       `json:"id"`
	Mode           string    `json:"mode"`           // HEAT | COOL | IDLE
	CurrentTempC   float64   `json:"current_temp_c"` // °C
	TargetTempC    float64   `json:"target_temp_c"`  // °C
	OutdoorTempC   float64   `json:"outdoor_temp_c"` // °C, as last reported
	Occupied       bool      `json:"occupied"`
	LastSuggestion string    `json:"last_suggestion,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Revision counts writes to the row. Conditional updates compare it.
	Revision int64 `json:"-"`
}
