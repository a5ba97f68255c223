// Package iofavorites keeps favorite names in a local SQLite database.
package iofavorites

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/namenest/namenest/pkg/favorites"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
  id TEXT PRIMARY KEY,
  added_at TEXT NOT NULL
);`

type store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the favorites database at path.
func Open(path string) (favorites.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// one writer keeps SQLite from returning "database is locked"
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, OpenError(path, err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, OpenError(path, err)
	}
	return &store{db: db, path: path}, nil
}

// Get implements favorites.Store.
func (s *store) Get(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM favorites ORDER BY rowid`)
	if err != nil {
		return nil, QueryError("get", err)
	}
	defer rows.Close()

	res := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, QueryError("get", err)
		}
		res = append(res, id)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("get", err)
	}
	return res, nil
}

// Has implements favorites.Store.
func (s *store) Has(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, QueryError("has", err)
	}
	return true, nil
}

// Toggle implements favorites.Store.
func (s *store) Toggle(ctx context.Context, id string) (bool, error) {
	if err := favorites.Validate(id); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, QueryError("toggle", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return false, QueryError("toggle", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, QueryError("toggle", err)
	}

	if deleted == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO favorites (id, added_at) VALUES (?, ?)`,
			id, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return false, QueryError("toggle", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, QueryError("toggle", err)
	}
	return deleted == 0, nil
}

// Close implements favorites.Store.
func (s *store) Close() error {
	return s.db.Close()
}
