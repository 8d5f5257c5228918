package models

import (
	"encoding/json"
	"time"
)

// Times of day recognized by the adjustment rules.
const (
	Morning   = "Morning"
	Afternoon = "Afternoon"
	Night     = "Night"
)

// AdjustmentRequest carries the room conditions and user preferences for one adjustment.
type AdjustmentRequest struct {
	RoomTemp      float64 // °C
	OutdoorTemp   float64 // °C
	PreferredTemp float64 // °C
	TimeOfDay     string  // Morning | Afternoon | Night; anything else uses the default rule
	Occupancy     bool
}

// AdjustmentResult is the engine's recommendation for a single request.
type AdjustmentResult struct {
	AdjustedTemp     float64 `json:"adjustedTemp"`
	CurrentTemp      float64 `json:"currentTemp"`
	PreferredTemp    float64 `json:"preferredTemp"`
	Change           float64 `json:"change"`
	EnergyEfficiency int     `json:"energyEfficiency"`
	AISuggestion     string  `json:"aiSuggestion"`
}

// AdjustmentRecord is an append-only history entry.
type AdjustmentRecord struct {
	ID               int64     `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	RoomTemp         float64   `json:"roomTemp"`
	OutdoorTemp      float64   `json:"outdoorTemp"`
	PreferredTemp    float64   `json:"preferredTemp"`
	AdjustedTemp     float64   `json:"adjustedTemp"`
	Change           float64   `json:"change"`
	TimeOfDay        string    `json:"timeOfDay"`
	Occupancy        bool      `json:"-"`
	EnergyEfficiency int       `json:"energyEfficiency"`
	Suggestion       string    `json:"suggestion"`
}

// NewAdjustmentRecord combines a request and its result into a history entry.
// ID and Timestamp are left for the store to assign.
func NewAdjustmentRecord(req AdjustmentRequest, res AdjustmentResult) AdjustmentRecord {
	return AdjustmentRecord{
		RoomTemp:         req.RoomTemp,
		OutdoorTemp:      req.OutdoorTemp,
		PreferredTemp:    req.PreferredTemp,
		AdjustedTemp:     res.AdjustedTemp,
		Change:           res.Change,
		TimeOfDay:        req.TimeOfDay,
		Occupancy:        req.Occupancy,
		EnergyEfficiency: res.EnergyEfficiency,
		Suggestion:       res.AISuggestion,
	}
}

type adjustmentRecordJSON AdjustmentRecord

// MarshalJSON renders occupancy as "Yes"/"No", the same way the form submits it.
func (r AdjustmentRecord) MarshalJSON() ([]byte, error) {
	occ := "No"
	if r.Occupancy {
		occ = "Yes"
	}
	return json.Marshal(struct {
		adjustmentRecordJSON
		Occupancy string `json:"occupancy"`
	}{adjustmentRecordJSON(r), occ})
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (r *AdjustmentRecord) UnmarshalJSON(b []byte) error {
	var aux struct {
		adjustmentRecordJSON
		Occupancy string `json:"occupancy"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = AdjustmentRecord(aux.adjustmentRecordJSON)
	r.Occupancy = aux.Occupancy == "Yes"
	return nil
}
