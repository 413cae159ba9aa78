package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS players (
	name       TEXT PRIMARY KEY,
	balance    INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore persists records in a single SQLite table.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (creating if needed) the roster database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (Record, bool, error) {
	if s == nil || s.sqlDB == nil {
		return Record{}, false, ErrStoreClosed
	}
	rec := Record{Name: name}
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT balance FROM players WHERE name = ?`, name,
	).Scan(&rec.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("get player %q: %w", name, err)
	}
	return rec, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, rec Record) error {
	return s.PutAll(ctx, []Record{rec})
}

// PutAll upserts every record in one transaction.
func (s *SQLiteStore) PutAll(ctx context.Context, recs []Record) error {
	if s == nil || s.sqlDB == nil {
		return ErrStoreClosed
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().UnixMilli()
	for _, rec := range recs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO players (name, balance, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
			   balance = excluded.balance,
			   updated_at = excluded.updated_at`,
			rec.Name, rec.Balance, now,
		)
		if err != nil {
			return fmt.Errorf("put player %q: %w", rec.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns every record in the order it was first saved.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, ErrStoreClosed
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name, balance FROM players ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.Balance); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return out, nil
}
