// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a SQLite ledger of pipeline runs: what was
// researched, which files were written, and who was emailed.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

const defaultLimit = 20

// timeFormat is fixed-width so started_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			company TEXT NOT NULL,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			files TEXT,
			emails INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_company ON runs(company)`,
		`CREATE TABLE IF NOT EXISTS run_contacts (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			title TEXT,
			persona TEXT,
			PRIMARY KEY (run_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores r and its contacts in one transaction. An empty ID is
// replaced with a new UUID; the stored ID is returned.
func (s *Store) Record(ctx context.Context, r types.RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = types.RunOK
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	filesJSON, _ := json.Marshal(r.Files)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, kind, company, started_at, duration_ms, status, error, files, emails)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Kind), r.Company, r.StartedAt.UTC().Format(timeFormat),
		r.Duration.Milliseconds(), string(r.Status), r.Error, string(filesJSON), r.Emails,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	if len(r.Contacts) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_contacts (run_id, position, name, title, persona) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return "", fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for i, c := range r.Contacts {
			if _, err := stmt.ExecContext(ctx, r.ID, i, c.Name, c.Title, string(c.Persona)); err != nil {
				return "", fmt.Errorf("inserting contact %s: %w", c.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return r.ID, nil
}

// ListOptions filters List results.
type ListOptions struct {
	// Company matches case-insensitively as a substring.
	Company string

	Kind types.RunKind

	// FailedOnly limits results to runs with status "error".
	FailedOnly bool

	// Limit caps the result count. Zero means 20; negative means no cap.
	Limit int
}

// List returns runs newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.RunRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, kind, company, started_at, duration_ms, status, error, files, emails
		FROM runs WHERE 1=1`)

	if opts.Company != "" {
		qb.WriteString(` AND company LIKE ? COLLATE NOCASE`)
		args = append(args, "%"+opts.Company+"%")
	}
	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.FailedOnly {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(types.RunFailed))
	}
	qb.WriteString(` ORDER BY started_at DESC, rowid DESC`)

	limit := opts.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var (
			r          types.RunRecord
			kind       string
			startedAt  string
			durationMS int64
			status     string
			errText    sql.NullString
			filesJSON  sql.NullString
		)
		if err := rows.Scan(&r.ID, &kind, &r.Company, &startedAt, &durationMS, &status, &errText, &filesJSON, &r.Emails); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Kind = types.RunKind(kind)
		r.Status = types.RunStatus(status)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(timeFormat, startedAt); err == nil {
			r.StartedAt = t
		}
		if errText.Valid {
			r.Error = errText.String
		}
		if filesJSON.Valid {
			json.Unmarshal([]byte(filesJSON.String), &r.Files)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		contacts, err := s.contacts(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Contacts = contacts
	}
	return runs, nil
}

func (s *Store) contacts(ctx context.Context, runID string) ([]types.RunContact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, title, persona FROM run_contacts WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying contacts for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []types.RunContact
	for rows.Next() {
		var (
			c       types.RunContact
			title   sql.NullString
			persona sql.NullString
		)
		if err := rows.Scan(&c.Name, &title, &persona); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		c.Title = title.String
		c.Persona = types.PersonaType(persona.String)
		out = append(out, c)
	}
	return out, rows.Err()
}
