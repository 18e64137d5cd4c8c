// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists emitted note documents in a local SQLite archive
// and serves full-text queries over them. See docs/ARCHITECTURE § Archive.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notes-emitter/pkg/types"
)

// Store manages the snapshot SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the snapshot database at the given path, creating
// the schema if it does not exist.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = "notes.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS notes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			text TEXT NOT NULL,
			date_created TEXT,
			date_modified TEXT,
			folder TEXT,
			account TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_account ON notes(account)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(folder)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='notes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE notes_fts USING fts5(name, text, content=notes, content_rowid=rowid)`,
			`CREATE TRIGGER notes_ai AFTER INSERT ON notes BEGIN
				INSERT INTO notes_fts(rowid, name, text) VALUES (new.rowid, new.name, new.text);
			END`,
			`CREATE TRIGGER notes_ad AFTER DELETE ON notes BEGIN
				INSERT INTO notes_fts(notes_fts, rowid, name, text) VALUES('delete', old.rowid, old.name, old.text);
			END`,
			`CREATE TRIGGER notes_au AFTER UPDATE ON notes BEGIN
				INSERT INTO notes_fts(notes_fts, rowid, name, text) VALUES('delete', old.rowid, old.name, old.text);
				INSERT INTO notes_fts(rowid, name, text) VALUES (new.rowid, new.name, new.text);
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

// Put upserts one document, keyed by its @id. An existing note with the same
// id is overwritten in place; the FTS index follows via triggers.
func (s *Store) Put(ctx context.Context, doc types.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, name, text, date_created, date_modified, folder, account)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			text = excluded.text,
			date_created = excluded.date_created,
			date_modified = excluded.date_modified,
			folder = excluded.folder,
			account = excluded.account`,
		doc.ID, doc.Name, doc.Text, doc.DateCreated, doc.DateModified, doc.IsPartOf, doc.Account)
	if err != nil {
		return fmt.Errorf("upserting note %s: %w", doc.ID, err)
	}
	return nil
}

// PutAll upserts the documents in one transaction and returns the count.
func (s *Store) PutAll(ctx context.Context, docs []types.Document) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, name, text, date_created, date_modified, folder, account)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				text = excluded.text,
				date_created = excluded.date_created,
				date_modified = excluded.date_modified,
				folder = excluded.folder,
				account = excluded.account`,
			doc.ID, doc.Name, doc.Text, doc.DateCreated, doc.DateModified, doc.IsPartOf, doc.Account)
		if err != nil {
			return 0, fmt.Errorf("upserting note %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(docs), nil
}

// Count returns the number of archived notes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return n, nil
}

// Result is one full-text search hit.
type Result struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Text    string `json:"text"`
	Folder  string `json:"folder"`
	Account string `json:"account"`
}

// Search runs an FTS5 match over note names and bodies, best matches first.
// A limit of 0 uses the configured default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT n.id, n.name, n.text, n.folder, n.account
		 FROM notes_fts f
		 JOIN notes n ON n.rowid = f.rowid
		 WHERE notes_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		ftsQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Name, &r.Text, &r.Folder, &r.Account); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ftsQuery quotes each term so user input cannot inject FTS5 syntax.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}
