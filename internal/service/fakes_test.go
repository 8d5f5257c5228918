package service

import (
	"context"
	"sync"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/weather"
)

// fakeStateRepo keeps one row in memory and bumps its revision the way the
// SQLite repo does. afterLoad, when set, runs once right after the next Load.
type fakeStateRepo struct {
	mu        sync.Mutex
	row       models.ThermostatState
	loadErr   error
	writeErr  error
	written   []models.ThermostatState
	afterLoad func()
}

func (f *fakeStateRepo) Load(ctx context.Context) (models.ThermostatState, error) {
	f.mu.Lock()
	row, err, hook := f.row, f.loadErr, f.afterLoad
	f.afterLoad = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return row, err
}

func (f *fakeStateRepo) Save(ctx context.Context, s models.ThermostatState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	s.Revision = 0
	if f.row.ID != 0 {
		s.Revision = f.row.Revision + 1
	}
	f.row = s
	f.written = append(f.written, s)
	return nil
}

func (f *fakeStateRepo) Seed(ctx context.Context, s models.ThermostatState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return false, f.writeErr
	}
	if f.row.ID != 0 {
		return false, nil
	}
	s.Revision = 0
	f.row = s
	f.written = append(f.written, s)
	return true, nil
}

func (f *fakeStateRepo) Advance(ctx context.Context, s models.ThermostatState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return false, f.writeErr
	}
	if f.row.ID == 0 || f.row.Revision != s.Revision {
		return false, nil
	}
	f.row.Mode = s.Mode
	f.row.CurrentTempC = s.CurrentTempC
	f.row.UpdatedAt = s.UpdatedAt
	f.row.Revision++
	f.written = append(f.written, f.row)
	return true, nil
}

func (f *fakeStateRepo) current() models.ThermostatState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row
}

func (f *fakeStateRepo) writes() []models.ThermostatState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ThermostatState(nil), f.written...)
}

type fakeHistoryRepo struct {
	appendErr error
	records   []models.AdjustmentRecord
	listErr   error

	lastFrom, lastTo time.Time
	lastLimit        int
	listAllCalls     int
}

func (f *fakeHistoryRepo) Append(ctx context.Context, rec models.AdjustmentRecord) (int64, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	rec.ID = int64(len(f.records) + 1)
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeHistoryRepo) ListAll(ctx context.Context) ([]models.AdjustmentRecord, error) {
	f.listAllCalls++
	return f.records, f.listErr
}

func (f *fakeHistoryRepo) List(ctx context.Context, from, to time.Time, limit int) ([]models.AdjustmentRecord, error) {
	f.lastFrom, f.lastTo, f.lastLimit = from, to, limit
	return f.records, f.listErr
}

type stubProvider struct {
	reading models.WeatherReading
	err     error
	calls   int
}

func (p *stubProvider) Current(ctx context.Context, at weather.Coordinates) (models.WeatherReading, error) {
	p.calls++
	return p.reading, p.err
}
