// Package decisionlog persists detection outcomes to a SQLite database so
// past mode decisions can be inspected across CLI invocations. Selector
// state itself is never persisted; only the decided outcomes are.
package decisionlog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("decisionlog: not found")

// Log is an append-mostly store of detection records.
type Log struct {
	db   *sql.DB
	path string
}

// Record is one persisted detection outcome.
type Record struct {
	ID         string  `json:"id"`
	Mode       string  `json:"mode"`
	Score      int     `json:"score"`
	Confidence float64 `json:"confidence"`
	Query      string  `json:"query"`
	CreatedAt  string  `json:"created_at"` // RFC3339
}

// Open creates or opens the decision log at path with WAL mode and a
// 5 second busy timeout, creating the schema if needed.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("decisionlog: open: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("decisionlog: ping: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("decisionlog: %s: %w", p, err)
		}
	}

	ddl := `CREATE TABLE IF NOT EXISTS decisions (
		id         TEXT PRIMARY KEY,
		mode       TEXT NOT NULL,
		score      INTEGER NOT NULL,
		confidence REAL NOT NULL,
		query      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("decisionlog: create table: %w", err)
	}

	return &Log{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Log) Path() string {
	return l.path
}

// Append stores a detection outcome and returns the stored record with
// its generated id and timestamp.
func (l *Log) Append(mode string, score int, confidence float64, query string) (Record, error) {
	rec := Record{
		ID:         uuid.New().String(),
		Mode:       mode,
		Score:      score,
		Confidence: confidence,
		Query:      query,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	_, err := l.db.Exec(
		`INSERT INTO decisions (id, mode, score, confidence, query, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mode, rec.Score, rec.Confidence, rec.Query, rec.CreatedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("decisionlog: append: %w", err)
	}
	return rec, nil
}

// Get retrieves one record by id. Returns ErrNotFound if it does not
// exist.
func (l *Log) Get(id string) (Record, error) {
	var r Record
	err := l.db.QueryRow(
		`SELECT id, mode, score, confidence, query, created_at
		 FROM decisions WHERE id = ?`, id,
	).Scan(&r.ID, &r.Mode, &r.Score, &r.Confidence, &r.Query, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("decisionlog: get: %w", err)
	}
	return r, nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns all records.
func (l *Log) List(limit int) ([]Record, error) {
	query := `SELECT id, mode, score, confidence, query, created_at
		FROM decisions ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("decisionlog: list: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.Confidence, &r.Query, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("decisionlog: scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (l *Log) Count() (int, error) {
	var n int
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM decisions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("decisionlog: count: %w", err)
	}
	return n, nil
}

// Clear deletes all records and returns how many were removed.
func (l *Log) Clear() (int64, error) {
	res, err := l.db.Exec(`DELETE FROM decisions`)
	if err != nil {
		return 0, fmt.Errorf("decisionlog: clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("decisionlog: clear: %w", err)
	}
	return n, nil
}
