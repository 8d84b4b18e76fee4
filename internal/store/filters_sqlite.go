package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/ledger-taxonomy/internal/fileutils"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/logging"

	_ "modernc.org/sqlite"
)

// SQLiteFilterStore keeps the saved quick filter in a single-row SQLite
// table. The schema is managed by RunMigrations.
type SQLiteFilterStore struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewSQLiteFilterStore opens (and migrates) the database at dbPath
func NewSQLiteFilterStore(dbPath string, logger logging.Logger) (*SQLiteFilterStore, error) {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Debug("Opened filter state database", logging.F(logging.FieldFile, dbPath))
	return &SQLiteFilterStore{db: db, logger: logger, now: time.Now}, nil
}

// Close releases the database handle
func (s *SQLiteFilterStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored filter
func (s *SQLiteFilterStore) Save(state filter.QuickFilter) error {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filter_state (id, type, area, account, search, time_window, only_recurrents, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			area = excluded.area,
			account = excluded.account,
			search = excluded.search,
			time_window = excluded.time_window,
			only_recurrents = excluded.only_recurrents,
			updated_at = excluded.updated_at`,
		state.Type, state.Area, state.Account, state.Search, state.Time,
		boolToInt(state.OnlyRecurrents), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save filter state: %w", err)
	}
	s.logger.Debug("Saved filter state", logging.F(logging.FieldBackend, "sqlite"))
	return nil
}

// Load returns the stored filter, or nil when none was saved
func (s *SQLiteFilterStore) Load() (*filter.QuickFilter, error) {
	ctx := context.Background()
	row := s.db.QueryRowContext(ctx, `
		SELECT type, area, account, search, time_window, only_recurrents
		FROM filter_state WHERE id = 1`)

	var state filter.QuickFilter
	var onlyRecurrents int64
	err := row.Scan(&state.Type, &state.Area, &state.Account, &state.Search, &state.Time, &onlyRecurrents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load filter state: %w", err)
	}
	state.OnlyRecurrents = onlyRecurrents != 0
	return &state, nil
}

// Clear forgets the stored filter
func (s *SQLiteFilterStore) Clear() error {
	if _, err := s.db.ExecContext(context.Background(), `DELETE FROM filter_state`); err != nil {
		return fmt.Errorf("clear filter state: %w", err)
	}
	s.logger.Debug("Cleared filter state", logging.F(logging.FieldBackend, "sqlite"))
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
