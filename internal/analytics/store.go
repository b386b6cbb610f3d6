// Package analytics keeps privacy-conscious visitor and contact metrics in SQLite.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Visitor is one tracked page view. The IP is stored hashed, never raw.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactAttempt records the outcome of a contact submission, not its content
type ContactAttempt struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

type Stats struct {
	TotalVisitors     int64            `json:"total_visitors"`
	UniqueVisitors    int64            `json:"unique_visitors"`
	VisitorsToday     int64            `json:"visitors_today"`
	VisitorsThisWeek  int64            `json:"visitors_this_week"`
	ContactAttempts   int64            `json:"contact_attempts"`
	ContactDelivered  int64            `json:"contact_delivered"`
	TopPaths          []PathCount      `json:"top_paths"`
	RecentVisitors    []Visitor        `json:"recent_visitors"`
	RecentSubmissions []ContactAttempt `json:"recent_submissions"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE TABLE IF NOT EXISTS contact_attempts (
	id TEXT PRIMARY KEY,
	subject TEXT NOT NULL,
	status TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);`

// Store is the SQLite-backed metrics store
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open creates the database file and its parent directory if needed
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create analytics directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}
	// writes from the tracking goroutines would otherwise hit SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate analytics database: %w", err)
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("privacy-conscious visitor tracking initialized", "path", path)
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate hashing salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP is consistent per IP for the life of the process
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record visitor: %w", err)
	}
	return nil
}

func (s *Store) RecordContactAttempt(ctx context.Context, id, subject, status string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_attempts (id, subject, status, timestamp) VALUES (?, ?, ?, ?)`,
		id, subject, status, at.Unix())
	if err != nil {
		return fmt.Errorf("failed to record contact attempt: %w", err)
	}
	return nil
}

// Stats aggregates the dashboard numbers
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo}},
		{&stats.ContactAttempts, `SELECT COUNT(*) FROM contact_attempts`, nil},
		{&stats.ContactDelivered, `SELECT COUNT(*) FROM contact_attempts WHERE status = 'success'`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views FROM visitors
		GROUP BY path ORDER BY views DESC, path ASC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("failed to scan path count: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentSubmissions, err = s.RecentContactAttempts(ctx, 20); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentVisitors returns up to limit visitors, newest first
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (s *Store) RecentContactAttempts(ctx context.Context, limit int) ([]ContactAttempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject, status, timestamp
		FROM contact_attempts ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact attempts: %w", err)
	}
	defer rows.Close()

	var attempts []ContactAttempt
	for rows.Next() {
		var a ContactAttempt
		var ts int64
		if err := rows.Scan(&a.ID, &a.Subject, &a.Status, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan contact attempt: %w", err)
		}
		a.Timestamp = time.Unix(ts, 0)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Cleanup deletes visitor and contact rows older than retention and reports
// how many rows were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()

	var total int64
	for _, table := range []string{"visitors", "contact_attempts"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("failed to clean up %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
