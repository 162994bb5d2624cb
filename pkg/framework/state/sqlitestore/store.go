// Package sqlitestore persists named parameter snapshots ("variations")
// in SQLite.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/state"
	"github.com/justyntemme/genart-go/pkg/framework/state/sqlitestore/migrations"
)

// ErrAlreadyExists is returned by Create for a taken name.
var ErrAlreadyExists = errors.New("variation already exists")

// Variation is a stored snapshot with its bookkeeping columns.
type Variation struct {
	Name      string
	APIID     string
	Snapshot  *state.Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists variations in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite variation store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("variation name is required")
	}
	return name, nil
}

// Create inserts a new variation and fails with ErrAlreadyExists when the
// name is taken.
func (s *Store) Create(ctx context.Context, name, apiID string, snap *state.Snapshot) error {
	name, err := s.ready(ctx, name)
	if err != nil {
		return err
	}
	payload, err := snap.Marshal()
	if err != nil {
		return fmt.Errorf("encode variation: %w", err)
	}
	now := toMillis(time.Now())
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO variations (name, api_id, seed, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, apiID, snap.Seed, payload, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create variation: %w", err)
	}
	return nil
}

// Save inserts or replaces a variation, keeping its creation time.
func (s *Store) Save(ctx context.Context, name, apiID string, snap *state.Snapshot) error {
	name, err := s.ready(ctx, name)
	if err != nil {
		return err
	}
	payload, err := snap.Marshal()
	if err != nil {
		return fmt.Errorf("encode variation: %w", err)
	}
	now := toMillis(time.Now())
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO variations (name, api_id, seed, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   api_id = excluded.api_id,
		   seed = excluded.seed,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		name, apiID, snap.Seed, payload, now, now,
	)
	if err != nil {
		return fmt.Errorf("save variation: %w", err)
	}
	return nil
}

// Get returns one variation by name.
func (s *Store) Get(ctx context.Context, name string) (Variation, error) {
	name, err := s.ready(ctx, name)
	if err != nil {
		return Variation{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, api_id, payload, created_at, updated_at
		   FROM variations
		  WHERE name = ?`,
		name,
	)
	v, err := scanVariation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Variation{}, apperrors.WithMetadata(apperrors.CodeNotFound,
			fmt.Sprintf("variation %q not found", name), map[string]string{"variation": name})
	}
	if err != nil {
		return Variation{}, fmt.Errorf("get variation: %w", err)
	}
	return v, nil
}

// List returns all variations, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Variation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, api_id, payload, created_at, updated_at
		   FROM variations
		  ORDER BY updated_at DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()

	var out []Variation
	for rows.Next() {
		v, err := scanVariation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variations: %w", err)
	}
	return out, nil
}

// Delete removes a variation. Deleting a missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	name, err := s.ready(ctx, name)
	if err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM variations WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVariation(row scanner) (Variation, error) {
	var v Variation
	var payload []byte
	var createdAt, updatedAt int64
	if err := row.Scan(&v.Name, &v.APIID, &payload, &createdAt, &updatedAt); err != nil {
		return Variation{}, err
	}
	snap, err := state.Unmarshal(payload)
	if err != nil {
		return Variation{}, err
	}
	v.Snapshot = snap
	v.CreatedAt = fromMillis(createdAt)
	v.UpdatedAt = fromMillis(updatedAt)
	return v, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
