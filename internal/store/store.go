// Package store persists run state and the issue archive in a local SQLite
// database under the data directory.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/r8slab/the-drop/internal/core"
)

// Store wraps the SQLite database holding run state and archived issues.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens the database under dataDir, creating the directory and
// tables as needed.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "drop.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	// Single-row table recording when the pipeline last completed a send
	runsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		last_run DATETIME
	);`

	// Archive of every generated issue
	issuesTable := `
	CREATE TABLE IF NOT EXISTS issues (
		id TEXT PRIMARY KEY,
		subject TEXT,
		html TEXT,
		sections TEXT,
		email_count INTEGER,
		market_image TEXT,
		model_used TEXT,
		date_generated DATETIME
	);`

	tables := []string{runsTable, issuesTable}
	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LastRun returns the timestamp of the last completed send, or the zero time
// when no run has been recorded yet.
func (s *Store) LastRun() (time.Time, error) {
	var lastRun time.Time
	err := s.db.QueryRow(`SELECT last_run FROM runs WHERE id = 1`).Scan(&lastRun)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read last run: %w", err)
	}
	return lastRun, nil
}

// SaveLastRun records when the pipeline last completed a send.
func (s *Store) SaveLastRun(t time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO runs (id, last_run) VALUES (1, ?)`, t.UTC())
	if err != nil {
		return fmt.Errorf("failed to save last run: %w", err)
	}
	return nil
}

// SaveIssue archives a generated issue.
func (s *Store) SaveIssue(issue core.Issue) error {
	sections, err := json.Marshal(issue.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO issues
	(id, subject, html, sections, email_count, market_image, model_used, date_generated)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		issue.ID,
		issue.Subject,
		issue.HTML,
		string(sections),
		issue.EmailCount,
		issue.MarketImage,
		issue.ModelUsed,
		issue.DateGenerated,
	)
	if err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return nil
}

// ListIssues returns archived issues, newest first. A non-positive limit
// returns everything.
func (s *Store) ListIssues(limit int) ([]core.Issue, error) {
	query := `
	SELECT id, subject, html, sections, email_count, market_image, model_used, date_generated
	FROM issues
	ORDER BY date_generated DESC`

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []core.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate issues: %w", err)
	}

	return issues, nil
}

// FindIssue retrieves an archived issue by ID or unique ID prefix. A miss
// returns nil without error.
func (s *Store) FindIssue(idOrPrefix string) (*core.Issue, error) {
	query := `
	SELECT id, subject, html, sections, email_count, market_image, model_used, date_generated
	FROM issues
	WHERE id LIKE ?
	ORDER BY date_generated DESC
	LIMIT 1`

	row := s.db.QueryRow(query, idOrPrefix+"%")

	issue, err := scanIssue(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &issue, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanIssue(row scanner) (core.Issue, error) {
	var issue core.Issue
	var sections string

	err := row.Scan(
		&issue.ID,
		&issue.Subject,
		&issue.HTML,
		&sections,
		&issue.EmailCount,
		&issue.MarketImage,
		&issue.ModelUsed,
		&issue.DateGenerated,
	)
	if err == sql.ErrNoRows {
		return core.Issue{}, err
	}
	if err != nil {
		return core.Issue{}, fmt.Errorf("failed to scan issue: %w", err)
	}

	if sections != "" {
		if err := json.Unmarshal([]byte(sections), &issue.Sections); err != nil {
			return core.Issue{}, fmt.Errorf("failed to decode sections: %w", err)
		}
	}

	return issue, nil
}
