// Package sqlite provides a SQLite-backed score cache.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

var _ ports.ScoreStore = (*Store)(nil)

const schema = `CREATE TABLE IF NOT EXISTS scores (
  target      TEXT NOT NULL,
  molecule    TEXT NOT NULL,
  score       REAL NOT NULL,
  source      TEXT NOT NULL,
  computed_at INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (target, molecule)
)`

// Store persists scores in SQLite, one row per (target, molecule) pair.
// All rows are mirrored in memory so reads never touch the database.
type Store struct {
	path  string
	sqlDB *sql.DB

	mu    sync.RWMutex
	cache map[string]domain.ScoreRecord

	// writeMu serializes upserts and deletes.
	writeMu sync.Mutex
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite score store, creating the schema if needed, and loads all rows.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, zerr.Wrap(domain.ErrStoreReadFailed, "storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, zerr.Wrap(err, "create storage directory")), "path", cleanPath)
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, zerr.Wrap(err, "open sqlite db")), "path", cleanPath)
	}
	// A single connection keeps writers from racing for the database lock.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, zerr.Wrap(err, "ping sqlite db")), "path", cleanPath)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, zerr.Wrap(err, "create schema")), "path", cleanPath)
	}

	s := &Store{
		path:  cleanPath,
		sqlDB: sqlDB,
		cache: make(map[string]domain.ScoreRecord),
	}
	if err := s.load(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", cleanPath)
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT target, molecule, score, source, computed_at FROM scores`)
	if err != nil {
		return zerr.Wrap(err, "query scores")
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	s.mu.Lock()
	defer s.mu.Unlock()
	for rows.Next() {
		var (
			r          domain.ScoreRecord
			source     string
			computedAt int64
		)
		if err := rows.Scan(&r.Target, &r.Molecule, &r.Score, &source, &computedAt); err != nil {
			return zerr.Wrap(err, "scan score row")
		}
		r.Source = domain.Source(source)
		r.ComputedAt = fromMillis(computedAt)
		s.cache[r.Key()] = r
	}
	return rows.Err()
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get retrieves the record for a normalized (molecule, target) pair.
func (s *Store) Get(molecule, target string) (*domain.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[domain.NewRequest(molecule, target).Key()]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record in memory, then upserts its row.
func (s *Store) Put(record domain.ScoreRecord) error {
	if math.IsNaN(record.Score) || math.IsInf(record.Score, 0) {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, "score is not finite"), "score", record.Score)
	}
	record.Molecule = domain.NormalizeMolecule(record.Molecule)
	record.Target = domain.NormalizeTarget(record.Target)
	record.Origin = ""
	record.Outcome = ""

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.cache[record.Key()] = record
	s.mu.Unlock()

	_, err := s.sqlDB.ExecContext(
		context.Background(),
		`INSERT INTO scores (target, molecule, score, source, computed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (target, molecule) DO UPDATE SET
		   score = excluded.score,
		   source = excluded.source,
		   computed_at = excluded.computed_at`,
		record.Target,
		record.Molecule,
		record.Score,
		string(record.Source),
		toMillis(record.ComputedAt),
	)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "upsert score")), "path", s.path)
	}
	return nil
}

// Stats summarises the store contents.
func (s *Store) Stats() (domain.CacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.CacheStats{
		Backend:   domain.CacheBackendSQLite,
		Path:      s.path,
		Total:     len(s.cache),
		PerTarget: make(map[string]int),
	}
	for _, r := range s.cache {
		stats.PerTarget[r.Target]++
	}
	return stats, nil
}

// Clear removes the records of a target, or all records when target is empty.
func (s *Store) Clear(target string) (int, error) {
	target = domain.NormalizeTarget(target)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	removed := 0
	for key, r := range s.cache {
		if target == "" || r.Target == target {
			delete(s.cache, key)
			removed++
		}
	}
	s.mu.Unlock()

	var err error
	if target == "" {
		_, err = s.sqlDB.ExecContext(context.Background(), `DELETE FROM scores`)
	} else {
		_, err = s.sqlDB.ExecContext(context.Background(), `DELETE FROM scores WHERE target = ?`, target)
	}
	if err != nil {
		return removed, zerr.With(errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "delete scores")), "path", s.path)
	}
	return removed, nil
}
