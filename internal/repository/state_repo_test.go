package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}

var stateColumns = []string{"id", "mode", "current_c", "target_c", "outdoor_c", "occupied", "suggestion", "updated_at", "revision"}

func TestStateSQLite_Save_SetsUTCNowWhenTimeZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)
	state := models.ThermostatState{
		Mode:           "HEAT",
		CurrentTempC:   19.5,
		TargetTempC:    22,
		OutdoorTempC:   4,
		Occupied:       true,
		LastSuggestion: "seal the windows",
	}

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO thermostat_state")).
		WithArgs(1, "HEAT", 19.5, 22.0, 4.0, true, "seal the windows", isUTCRecent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Save_ConvertsGivenTimeToUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)
	original := time.Date(2024, 1, 15, 8, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))

	isExactUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Equal(original) && tm.Location() == time.UTC
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO thermostat_state")).
		WithArgs(1, "IDLE", 21.0, 21.0, 10.0, false, "", isExactUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), models.ThermostatState{
		Mode: "IDLE", CurrentTempC: 21, TargetTempC: 21, OutdoorTempC: 10, UpdatedAt: original,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Save_ExecErrorIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	boom := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO thermostat_state")).WillReturnError(boom)

	err = repository.NewStateSQLite(db).Save(context.Background(), models.ThermostatState{Mode: "IDLE"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
}

func TestStateSQLite_Load_NoRowsReturnsZeroValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM thermostat_state WHERE id=?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(stateColumns))

	st, err := repository.NewStateSQLite(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.ID != 0 {
		t.Fatalf("expected zero state, got %+v", st)
	}
}

func TestStateSQLite_Load_HappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	rows := sqlmock.NewRows(stateColumns).
		AddRow(1, "COOL", 26.4, 24.0, 33.0, true, nil, updated, 7)
	mock.ExpectQuery(regexp.QuoteMeta("FROM thermostat_state WHERE id=?")).
		WithArgs(1).
		WillReturnRows(rows)

	st, err := repository.NewStateSQLite(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.ID != 1 || st.Mode != "COOL" || st.CurrentTempC != 26.4 || st.TargetTempC != 24 || !st.Occupied {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Revision != 7 {
		t.Fatalf("expected revision 7, got %d", st.Revision)
	}
	if st.LastSuggestion != "" {
		t.Fatalf("NULL suggestion should load as empty, got %q", st.LastSuggestion)
	}
	if st.UpdatedAt.Location() != time.UTC || !st.UpdatedAt.Equal(updated) {
		t.Fatalf("expected UTC %v, got %v", updated.UTC(), st.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Advance(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 4, 0, time.UTC)
	cases := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "row at expected revision", affected: 1, want: true},
		{name: "row moved on", affected: 0, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New(): %v", err)
			}
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE thermostat_state")).
				WithArgs("HEAT", 18.2, at, 1, int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			ok, err := repository.NewStateSQLite(db).Advance(context.Background(), models.ThermostatState{
				ID: 1, Mode: "HEAT", CurrentTempC: 18.2, TargetTempC: 99, UpdatedAt: at, Revision: 3,
			})
			if err != nil {
				t.Fatalf("Advance() error = %v", err)
			}
			if ok != tc.want {
				t.Fatalf("Advance() = %v, want %v", ok, tc.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStateSQLite_Seed_ExistingRowIsKept(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repository.NewStateSQLite(db).Seed(context.Background(), models.ThermostatState{Mode: "IDLE", UpdatedAt: time.Now()})
	if err != nil || ok {
		t.Fatalf("Seed() = %v, %v; want false, nil", ok, err)
	}
}

func TestStateSQLite_Advance_ExecErrorIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	boom := errors.New("database is locked")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE thermostat_state")).WillReturnError(boom)

	_, err = repository.NewStateSQLite(db).Advance(context.Background(), models.ThermostatState{Mode: "IDLE"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
}
