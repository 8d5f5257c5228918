package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smart_thermostat/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

var _ StateRepo = (*StateSQLite)(nil)

const (
	thermostatStateRowID = 1

	upsertStateSQL = `
		INSERT INTO thermostat_state (id, mode, current_c, target_c, outdoor_c, occupied, suggestion, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mode=excluded.mode,
			current_c=excluded.current_c,
			target_c=excluded.target_c,
			outdoor_c=excluded.outdoor_c,
			occupied=excluded.occupied,
			suggestion=excluded.suggestion,
			updated_at=excluded.updated_at,
			revision=thermostat_state.revision + 1
	`

	seedStateSQL = `
		INSERT INTO thermostat_state (id, mode, current_c, target_c, outdoor_c, occupied, suggestion, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	advanceStateSQL = `
		UPDATE thermostat_state
		SET mode=?, current_c=?, updated_at=?, revision=revision + 1
		WHERE id=? AND revision=?
	`

	selectStateSQL = `
		SELECT id, mode, current_c, target_c, outdoor_c, occupied, suggestion, updated_at, revision
		FROM thermostat_state WHERE id=?
	`
)

// Save upserts the thermostat_state row (id always 1). A zero UpdatedAt is set to now.
func (r *StateSQLite) Save(ctx context.Context, state models.ThermostatState) error {
	ts := state.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		thermostatStateRowID,
		state.Mode,
		state.CurrentTempC,
		state.TargetTempC,
		state.OutdoorTempC,
		state.Occupied,
		state.LastSuggestion,
		ts.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save thermostat state: %w", err)
	}
	return nil
}

// Seed inserts state only if no row exists yet.
func (r *StateSQLite) Seed(ctx context.Context, state models.ThermostatState) (bool, error) {
	res, err := r.db.ExecContext(ctx, seedStateSQL,
		thermostatStateRowID,
		state.Mode,
		state.CurrentTempC,
		state.TargetTempC,
		state.OutdoorTempC,
		state.Occupied,
		state.LastSuggestion,
		state.UpdatedAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("seed thermostat state: %w", err)
	}
	return affectedOne(res)
}

// Advance writes the simulated mode, room temperature and time, and only if
// the row is still at state.Revision. Target, occupancy and suggestion are
// never touched, so a concurrent Save always wins.
func (r *StateSQLite) Advance(ctx context.Context, state models.ThermostatState) (bool, error) {
	res, err := r.db.ExecContext(ctx, advanceStateSQL,
		state.Mode,
		state.CurrentTempC,
		state.UpdatedAt.UTC(),
		thermostatStateRowID,
		state.Revision,
	)
	if err != nil {
		return false, fmt.Errorf("advance thermostat state: %w", err)
	}
	return affectedOne(res)
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

// Load fetches the thermostat_state row. A missing row yields the zero value
// (ID == 0) and no error.
func (r *StateSQLite) Load(ctx context.Context) (models.ThermostatState, error) {
	var (
		s          models.ThermostatState
		suggestion sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectStateSQL, thermostatStateRowID).Scan(
		&s.ID,
		&s.Mode,
		&s.CurrentTempC,
		&s.TargetTempC,
		&s.OutdoorTempC,
		&s.Occupied,
		&suggestion,
		&s.UpdatedAt,
		&s.Revision,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ThermostatState{}, nil
		}
		return models.ThermostatState{}, fmt.Errorf("load thermostat state: %w", err)
	}
	s.LastSuggestion = suggestion.String
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
