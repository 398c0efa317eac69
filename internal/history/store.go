// Package history persists load-cycle reports to SQLite so the pipeline can
// answer "what did the last load of this folder look like" across runs.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ewen/folio/internal/folder"
)

//go:embed schema.sql
var schemaSQL string

// CycleRecord is one persisted load-cycle report.
type CycleRecord struct {
	ID        int64
	CycleID   string
	Folder    string
	Suffix    string
	Expected  int
	Loaded    int
	Failed    int
	Duration  time.Duration
	StartedAt time.Time
}

// FolderStats aggregates cycle history for one folder.
type FolderStats struct {
	Folder      string
	Cycles      int
	TotalLoaded int
	TotalFailed int
	LastRun     time.Time
}

// Store manages the SQLite database of load-cycle reports.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the report database at dbPath.
// ":memory:" yields an ephemeral store for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout must come first so later statements wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record persists one completed cycle report.
func (s *Store) Record(rep folder.Report) error {
	const query = `
		INSERT INTO load_cycles (cycle_id, folder, suffix, expected, loaded, failed, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query,
		rep.CycleID, rep.Folder, rep.Suffix,
		rep.Expected, rep.Loaded, rep.Failed,
		rep.Duration.Milliseconds(), rep.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record cycle %s: %w", rep.CycleID, err)
	}
	return nil
}

// List returns the most recent cycle records, newest first. An empty folder
// matches all folders; limit <= 0 means no limit.
func (s *Store) List(folderPath string, limit int) ([]CycleRecord, error) {
	query := `
		SELECT id, cycle_id, folder, suffix, expected, loaded, failed, duration_ms, started_at
		FROM load_cycles`
	args := []interface{}{}
	if folderPath != "" {
		query += " WHERE folder = ?"
		args = append(args, folderPath)
	}
	query += " ORDER BY started_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	var records []CycleRecord
	for rows.Next() {
		var rec CycleRecord
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.CycleID, &rec.Folder, &rec.Suffix,
			&rec.Expected, &rec.Loaded, &rec.Failed, &durationMS, &rec.StartedAt); err != nil {
			return nil, fmt.Errorf("scan cycle row: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Stats returns per-folder aggregates across all recorded cycles.
func (s *Store) Stats() ([]FolderStats, error) {
	const query = `
		SELECT folder, COUNT(*), SUM(loaded), SUM(failed), MAX(started_at)
		FROM load_cycles
		GROUP BY folder
		ORDER BY folder`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []FolderStats
	for rows.Next() {
		var st FolderStats
		if err := rows.Scan(&st.Folder, &st.Cycles, &st.TotalLoaded, &st.TotalFailed, &st.LastRun); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Clear deletes records started before the given time and returns how many
// were removed. The zero time clears everything.
func (s *Store) Clear(before time.Time) (int64, error) {
	var (
		result sql.Result
		err    error
	)
	if before.IsZero() {
		result, err = s.db.Exec("DELETE FROM load_cycles")
	} else {
		result, err = s.db.Exec("DELETE FROM load_cycles WHERE started_at < ?", before.UTC())
	}
	if err != nil {
		return 0, fmt.Errorf("clear cycles: %w", err)
	}
	return result.RowsAffected()
}
