package service

import (
	"context"
	"errors"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

// ErrInvalidTimeRange is returned when From is after To.
var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type HistoryService struct {
	historyRepo repository.HistoryRepo
}

func NewHistoryService(historyRepo repository.HistoryRepo) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// All returns the whole history, newest first.
func (s *HistoryService) All(ctx context.Context) ([]models.AdjustmentRecord, error) {
	return s.historyRepo.ListAll(ctx)
}

// List returns records matching f, newest first.
func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.AdjustmentRecord, error) {
	from, to := toUTC(f.From), toUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	return s.historyRepo.List(ctx, from, to, clampLimit(f.Limit))
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultHistoryLimit
	case n > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return n
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
