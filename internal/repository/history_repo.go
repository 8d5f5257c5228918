package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"smart_thermostat/internal/models"
)

// HistorySQLite stores adjustment records in the adjustments table.
type HistorySQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite {
	return &HistorySQLite{db: db, now: time.Now}
}

var _ HistoryRepo = (*HistorySQLite)(nil)

const (
	insertAdjustmentSQL = `
		INSERT INTO adjustments (created_at, room_temp, outdoor_temp, preferred_temp, adjusted_temp, change, time_of_day, occupancy, energy_efficiency, suggestion)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectAdjustmentsSQL = `SELECT id, created_at, room_temp, outdoor_temp, preferred_temp, adjusted_temp, change, time_of_day, occupancy, energy_efficiency, suggestion FROM adjustments`
)

// Append inserts rec with a server-side UTC timestamp and returns the new id.
// Any ID or Timestamp already set on rec is ignored.
func (r *HistorySQLite) Append(ctx context.Context, rec models.AdjustmentRecord) (int64, error) {
	var suggestion *string
	if rec.Suggestion != "" {
		suggestion = &rec.Suggestion
	}

	res, err := r.db.ExecContext(ctx, insertAdjustmentSQL,
		r.now().UTC(),
		rec.RoomTemp,
		rec.OutdoorTemp,
		rec.PreferredTemp,
		rec.AdjustedTemp,
		rec.Change,
		rec.TimeOfDay,
		rec.Occupancy,
		rec.EnergyEfficiency,
		suggestion,
	)
	if err != nil {
		return 0, fmt.Errorf("insert adjustment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for adjustment: %w", err)
	}
	return id, nil
}

// ListAll returns every record, newest first.
func (r *HistorySQLite) ListAll(ctx context.Context) ([]models.AdjustmentRecord, error) {
	return r.List(ctx, time.Time{}, time.Time{}, 0)
}

// List returns records in [from, to] (zero bound = open), newest first.
// limit <= 0 means no limit.
func (r *HistorySQLite) List(ctx context.Context, from, to time.Time, limit int) ([]models.AdjustmentRecord, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC())
	}

	q := selectAdjustmentsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query adjustments: %w", err)
	}
	defer rows.Close()

	out := make([]models.AdjustmentRecord, 0, 64)
	for rows.Next() {
		var (
			rec        models.AdjustmentRecord
			suggestion sql.NullString
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Timestamp,
			&rec.RoomTemp,
			&rec.OutdoorTemp,
			&rec.PreferredTemp,
			&rec.AdjustedTemp,
			&rec.Change,
			&rec.TimeOfDay,
			&rec.Occupancy,
			&rec.EnergyEfficiency,
			&suggestion,
		); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		rec.Timestamp = rec.Timestamp.UTC()
		rec.Suggestion = suggestion.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate adjustments: %w", err)
	}
	return out, nil
}
