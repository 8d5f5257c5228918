package service

import (
	"context"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

const (
	thermostatStateID = 1
	defaultRoomTempC  = 22.0
	defaultOutdoorC   = 20.0
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the persisted thermostat state, or an idle baseline
// if nothing has been stored yet.
func (s *MonitoringService) GetState(ctx context.Context) (models.ThermostatState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ThermostatState{}, err
	}
	if state.ID == 0 {
		return baselineState(time.Now()), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

func baselineState(now time.Time) models.ThermostatState {
	return models.ThermostatState{
		ID:           thermostatStateID,
		Mode:         ModeIdle,
		CurrentTempC: defaultRoomTempC,
		TargetTempC:  defaultRoomTempC,
		OutdoorTempC: defaultOutdoorC,
		Occupied:     true,
		UpdatedAt:    now.UTC(),
	}
}
