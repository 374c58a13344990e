// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalogindex builds a local SQLite full-text index over the
// programme snapshots for offline inspection.
//
// The index is a data-team tool reached only through the CLI. The HTTP
// serving path never reads it: serving always re-reads the snapshots, and
// the index is a derived artifact that may lag behind them.
package catalogindex

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/catalog-server/internal/snapshot"
	"github.com/pdiddy/catalog-server/internal/title"
	"github.com/pdiddy/catalog-server/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the snapshot index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at indexDir/catalog.db and
// creates the schema if needed.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS programmes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			origin TEXT NOT NULL,
			title TEXT NOT NULL,
			raw TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_programmes_origin ON programmes(origin)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			origin TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='programmes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE programmes_fts USING fts5(title, content=programmes, content_rowid=rowid)`,
			`CREATE TRIGGER programmes_ai AFTER INSERT ON programmes BEGIN
				INSERT INTO programmes_fts(rowid, title) VALUES (new.rowid, new.title);
			END`,
			`CREATE TRIGGER programmes_ad AFTER DELETE ON programmes BEGIN
				INSERT INTO programmes_fts(programmes_fts, rowid, title) VALUES('delete', old.rowid, old.title);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// BuildSummary holds counts from an index build run.
type BuildSummary struct {
	Indexed int
	Skipped int
	Failed  int
}

// Build indexes every origin in the manifest. Snapshots unchanged since the
// previous run (by file mod time) are skipped; a snapshot that fails to read
// is reported and counted but does not abort the run.
func (s *Store) Build(ctx context.Context, m snapshot.Manifest, w io.Writer) (BuildSummary, error) {
	var summary BuildSummary

	for _, origin := range m.Origins() {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		path, err := m.ProgrammePath(origin)
		if err != nil {
			return summary, err
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", origin, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		statusErr := s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE origin = ?`, origin,
		).Scan(&storedModTime)
		if statusErr == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", origin)
			summary.Skipped++
			continue
		}

		records, err := snapshot.Load(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", origin, err)
			summary.Failed++
			continue
		}

		if err := s.indexOrigin(ctx, origin, records, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", origin, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "indexed %s (%d records)\n", origin, len(records))
		summary.Indexed++
	}

	fmt.Fprintf(w, "\nindexed: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) indexOrigin(ctx context.Context, origin string, records []types.Record, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM programmes WHERE origin = ?`, origin); err != nil {
		return fmt.Errorf("deleting old rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO programmes (origin, title, raw) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, origin, title.Resolve(origin, rec), string(raw)); err != nil {
			return fmt.Errorf("inserting record: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO indexing_status (origin, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(origin) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		origin, modTime,
	); err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// Hit is one full-text search result.
type Hit struct {
	Origin string `json:"origin"`
	Title  string `json:"title"`
	Raw    string `json:"raw"`
}

// Search runs an FTS5 match over resolved titles, optionally restricted to
// one origin. Limit 0 uses the configured default.
func (s *Store) Search(ctx context.Context, query, origin string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	sqlQuery := `SELECT p.origin, p.title, p.raw
		FROM programmes_fts f
		JOIN programmes p ON p.rowid = f.rowid
		WHERE programmes_fts MATCH ?`
	args := []any{query}
	if origin != "" {
		sqlQuery += ` AND p.origin = ?`
		args = append(args, origin)
	}
	sqlQuery += ` ORDER BY rank LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.Origin, &h.Title, &h.Raw); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
