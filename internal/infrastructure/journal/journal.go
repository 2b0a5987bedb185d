// Package journal persists submission attempts in SQLite for diagnostics.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tesso57/slidegen/internal/domain/deck"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id           TEXT PRIMARY KEY,
	topic        TEXT NOT NULL,
	template     INTEGER NOT NULL,
	include_code INTEGER NOT NULL,
	outcome      TEXT NOT NULL,
	message      TEXT NOT NULL DEFAULT '',
	error        TEXT NOT NULL DEFAULT '',
	started_at   TEXT NOT NULL,
	finished_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_started ON attempts(started_at);
`

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrClosed is returned by Record and Recent after Close.
var ErrClosed = errors.New("journal is closed")

// Manager records and lists attempts. The database is opened on first use.
type Manager struct {
	mu     sync.Mutex
	path   string
	db     *sql.DB
	closed bool
}

// NewManager creates a journal backed by the SQLite file at path.
func NewManager(path string) *Manager {
	return new(Manager{
		path: path,
	})
}

// Record stores one attempt, assigning an ID when it has none.
func (m *Manager) Record(ctx context.Context, attempt deck.Attempt) (deck.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.openLocked()
	if err != nil {
		return deck.Attempt{}, err
	}
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO attempts (id, topic, template, include_code, outcome, message, error, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.ID,
		attempt.Request.Topic,
		int(attempt.Request.Template),
		boolToInt(attempt.Request.IncludeCode),
		string(attempt.Outcome),
		attempt.Message,
		attempt.Error,
		formatTime(attempt.StartedAt),
		formatTime(attempt.FinishedAt),
	)
	if err != nil {
		return deck.Attempt{}, fmt.Errorf("record attempt: %w", err)
	}
	return attempt, nil
}

// Recent returns up to limit attempts, newest first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]deck.Attempt, error) {
	if limit <= 0 {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.openLocked()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, topic, template, include_code, outcome, message, error, started_at, finished_at
		 FROM attempts ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []deck.Attempt
	for rows.Next() {
		var (
			a                   deck.Attempt
			template, include   int
			outcome             string
			startedAt, finished string
		)
		if err := rows.Scan(&a.ID, &a.Request.Topic, &template, &include, &outcome, &a.Message, &a.Error, &startedAt, &finished); err != nil {
			return nil, err
		}
		a.Request.Template = deck.Template(template)
		a.Request.IncludeCode = include != 0
		a.Outcome = deck.Outcome(outcome)
		a.StartedAt = parseTime(startedAt)
		a.FinishedAt = parseTime(finished)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Close releases the database handle. The manager cannot be reopened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) openLocked() (*sql.DB, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if m.db != nil {
		return m.db, nil
	}
	if m.path == "" {
		return nil, errors.New("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0750); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	m.db = db
	return db, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
