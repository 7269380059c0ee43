package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ppiankov/vendorscout/internal/model"
)

// ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS discovery_reports (
	category TEXT NOT NULL,
	location TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (category, location)
);
`

// SQLiteStore persists reports in a local SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed initializes) the database at dsn
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save upserts the report for its (category, location) pair
func (s *SQLiteStore) Save(ctx context.Context, report *model.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	query := `
	INSERT INTO discovery_reports (category, location, payload, created_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (category, location) DO UPDATE SET
		payload = excluded.payload,
		created_at = excluded.created_at
	`

	_, err = s.db.ExecContext(ctx, query,
		normalize(report.Category),
		normalize(report.Location),
		string(payload),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// Load returns the stored report or ErrNotFound
func (s *SQLiteStore) Load(ctx context.Context, category, location string) (*model.Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM discovery_reports WHERE category = ? AND location = ?`,
		normalize(category), normalize(location),
	)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return &report, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
