// Package store handles SQLite persistence for operation history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"textkit/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for operation history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			tool TEXT NOT NULL,
			input TEXT NOT NULL,
			shift INTEGER NOT NULL,
			output TEXT NOT NULL,
			duration_us INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_operations_tool ON operations(tool);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertOperation stores a completed operation and returns its row id.
func (s *Store) InsertOperation(ctx context.Context, op model.Operation) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (created_at, tool, input, shift, output, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		op.CreatedAt.Format(time.RFC3339Nano),
		op.Tool,
		op.Input,
		op.Shift,
		op.Output,
		op.DurationUs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListOperations returns operations matching the filter, oldest first.
// A positive Last keeps only the most recent entries.
func (s *Store) ListOperations(ctx context.Context, filter model.HistoryFilter) ([]model.Operation, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Tool != "" {
		clauses = append(clauses, "tool = ?")
		args = append(args, filter.Tool)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, created_at, tool, input, shift, output, duration_us
		FROM operations
		WHERE %s
		ORDER BY created_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var ops []model.Operation
	for rows.Next() {
		var op model.Operation
		var createdAt string
		if err := rows.Scan(&op.ID, &createdAt, &op.Tool, &op.Input, &op.Shift, &op.Output, &op.DurationUs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		op.CreatedAt = parsed
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(ops) > filter.Last {
		ops = ops[len(ops)-filter.Last:]
	}
	return ops, nil
}

// CountByTool returns the number of recorded operations per tool.
func (s *Store) CountByTool(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tool, COUNT(*) FROM operations GROUP BY tool`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var tool string
		var count int
		if err := rows.Scan(&tool, &count); err != nil {
			return nil, err
		}
		counts[tool] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Clear deletes all recorded operations.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM operations`)
	return err
}
