package service

import (
	"context"
	"math"
	"time"

	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

// ----------- Simulation constants -----------
const (
	RampCPerSec = 0.05 // °C per second while heating or cooling
	ToleranceC  = 0.2  // deadband around the target
)

// Modes
const (
	ModeHeat = "HEAT"
	ModeCool = "COOL"
	ModeIdle = "IDLE"
)

// SimulatorService drifts the simulated room toward its target.
type SimulatorService struct {
	stateRepo repository.StateRepo
	log       *logger.Logger
}

func NewSimulatorService(stateRepo repository.StateRepo, log *logger.Logger) *SimulatorService {
	return &SimulatorService{stateRepo: stateRepo, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if err := s.Step(ctx, now); err != nil && ctx.Err() == nil {
				s.log.Warnw("simulator_step_failed", "err", err)
			}
		}
	}
}

// Step advances the simulation to now and persists the state if it changed.
// Writes are conditional: if an adjustment lands between the load and the
// write, this tick is dropped and the next one starts from the new target.
func (s *SimulatorService) Step(ctx context.Context, now time.Time) error {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return err
	}
	if st.ID == 0 {
		_, err := s.stateRepo.Seed(ctx, baselineState(now))
		return err
	}

	elapsed := now.Sub(st.UpdatedAt).Seconds()
	if elapsed < 1 {
		return nil
	}
	if !approachTarget(&st, elapsed) {
		return nil
	}
	st.UpdatedAt = now.UTC()

	applied, err := s.stateRepo.Advance(ctx, st)
	if err != nil {
		return err
	}
	if !applied {
		s.log.Debugw("simulator_step_superseded", "revision", st.Revision)
	}
	return nil
}

// approachTarget moves CurrentTempC toward TargetTempC at RampCPerSec and
// updates Mode. Returns true if anything changed.
func approachTarget(st *models.ThermostatState, elapsed float64) bool {
	diff := st.TargetTempC - st.CurrentTempC
	if math.Abs(diff) <= ToleranceC {
		if st.Mode != ModeIdle {
			st.Mode = ModeIdle
			return true
		}
		return false
	}

	step := RampCPerSec * elapsed
	if step >= math.Abs(diff) {
		st.CurrentTempC = st.TargetTempC
		st.Mode = ModeIdle
		return true
	}
	if diff > 0 {
		st.CurrentTempC += step
		st.Mode = ModeHeat
	} else {
		st.CurrentTempC -= step
		st.Mode = ModeCool
	}
	return true
}

// modeFor reports what the room needs to reach target from current.
func modeFor(current, target float64) string {
	switch {
	case target > current+ToleranceC:
		return ModeHeat
	case target < current-ToleranceC:
		return ModeCool
	default:
		return ModeIdle
	}
}
