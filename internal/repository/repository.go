package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_thermostat/internal/models"
)

// Authorization stores user accounts.
type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// HistoryRepo is the append-only adjustment history.
type HistoryRepo interface {
	Append(ctx context.Context, rec models.AdjustmentRecord) (int64, error)
	ListAll(ctx context.Context) ([]models.AdjustmentRecord, error)
	List(ctx context.Context, from, to time.Time, limit int) ([]models.AdjustmentRecord, error)
}

// StateRepo persists the single simulated thermostat snapshot.
//
// Save overwrites the whole row. Seed and Advance are for the simulator: they
// never overwrite a row written since it was loaded, and report whether they
// took effect.
type StateRepo interface {
	Save(ctx context.Context, s models.ThermostatState) error
	Load(ctx context.Context) (models.ThermostatState, error)
	Seed(ctx context.Context, s models.ThermostatState) (bool, error)
	Advance(ctx context.Context, s models.ThermostatState) (bool, error)
}

type Repository struct {
	HistoryRepo HistoryRepo
	StateRepo   StateRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		HistoryRepo: NewHistorySQLite(db),
		StateRepo:   NewStateSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
