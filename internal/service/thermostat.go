package service

import (
	"context"
	"time"

	"smart_thermostat/internal/engine"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

type ThermostatService struct {
	engine      *engine.Engine
	historyRepo repository.HistoryRepo
	stateRepo   repository.StateRepo
	log         *logger.Logger
	now         func() time.Time
}

func NewThermostatService(e *engine.Engine, historyRepo repository.HistoryRepo, stateRepo repository.StateRepo, log *logger.Logger) *ThermostatService {
	return &ThermostatService{
		engine:      e,
		historyRepo: historyRepo,
		stateRepo:   stateRepo,
		log:         log,
		now:         time.Now,
	}
}

// Adjust runs the engine for req, then records the outcome.
// Recording is best-effort: storage failures are logged and the computed
// result is returned unchanged. The only error is a cancelled context.
func (s *ThermostatService) Adjust(ctx context.Context, req models.AdjustmentRequest) (models.AdjustmentResult, error) {
	if err := ctx.Err(); err != nil {
		return models.AdjustmentResult{}, err
	}

	res := s.engine.Adjust(req)

	if s.historyRepo != nil {
		id, err := s.historyRepo.Append(ctx, models.NewAdjustmentRecord(req, res))
		if err != nil {
			s.log.Warnw("adjust_history_append_failed", "err", err)
		} else {
			s.log.Debugw("adjust_history_appended", "id", id, "adjusted_temp", res.AdjustedTemp)
		}
	}

	if s.stateRepo != nil {
		st := models.ThermostatState{
			ID:             thermostatStateID,
			Mode:           modeFor(req.RoomTemp, res.AdjustedTemp),
			CurrentTempC:   req.RoomTemp,
			TargetTempC:    res.AdjustedTemp,
			OutdoorTempC:   req.OutdoorTemp,
			Occupied:       req.Occupancy,
			LastSuggestion: res.AISuggestion,
			UpdatedAt:      s.now().UTC(),
		}
		if err := s.stateRepo.Save(ctx, st); err != nil {
			s.log.Warnw("adjust_state_save_failed", "err", err)
		}
	}

	return res, nil
}
