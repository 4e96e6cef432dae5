// Package store persists the task collection in SQLite and reads the user config.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskboard-cli/internal/model"

	_ "modernc.org/sqlite"
)

const dbFileName = "tasks.sqlite"

// Store is a SQLite file holding one snapshot of the task collection.
type Store struct {
	Path string
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("store: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	// WAL lets the TUI and a concurrent CLI read while one of them writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			description TEXT NOT NULL,
			due_at TEXT,
			repeat_days TEXT NOT NULL,
			color TEXT NOT NULL,
			is_archive INTEGER NOT NULL,
			is_favorite INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the stored tasks in collection order. A new file yields no tasks.
func (s Store) Load(ctx context.Context) ([]model.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, description, due_at, repeat_days, color, is_archive, is_favorite FROM tasks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		var (
			t          model.Task
			due        sql.NullString
			repeatDays string
			color      string
			archive    int
			favorite   int
		)
		if err := rows.Scan(&t.ID, &t.Description, &due, &repeatDays, &color, &archive, &favorite); err != nil {
			return nil, err
		}
		if due.Valid && due.String != "" {
			d, err := time.Parse(time.RFC3339Nano, due.String)
			if err != nil {
				return nil, fmt.Errorf("task %s: due_at: %w", t.ID, err)
			}
			t.DueDate = &d
		}
		if t.Repeating, err = model.ParseRepeating(repeatDays); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		if t.Color, err = model.ParseColor(color); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		t.IsArchive = archive != 0
		t.IsFavorite = favorite != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save replaces the stored collection with tasks.
func (s Store) Save(ctx context.Context, tasks []model.Task) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Replace-all: collections are small and order lives in the position column.
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks(id, position, description, due_at, repeat_days, color, is_archive, is_favorite) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tasks {
		var due any
		if t.DueDate != nil {
			due = t.DueDate.Format(time.RFC3339Nano)
		}
		color := t.Color
		if color == "" {
			color = model.ColorBlack
		}
		if _, err := stmt.ExecContext(ctx, t.ID, i, t.Description, due, strings.Join(t.Repeating.Days(), ","), string(color), boolInt(t.IsArchive), boolInt(t.IsFavorite)); err != nil {
			return fmt.Errorf("save task %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
