// Package cache implements the persisted score cache on a flat JSON file.
package cache

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScoreStore = (*Store)(nil)

// fileRecord is the on-disk form of a cached score.
type fileRecord struct {
	Molecule   string        `json:"molecule"`
	Target     string        `json:"target"`
	Score      float64       `json:"score"`
	Source     domain.Source `json:"source"`
	ComputedAt time.Time     `json:"computed_at,omitzero"`
}

// Store implements ports.ScoreStore using a flat JSON file that is rewritten
// on every mutation.
type Store struct {
	path string

	mu       sync.RWMutex
	cache    map[string]domain.ScoreRecord
	degraded error

	// writeMu serializes file rewrites.
	writeMu sync.Mutex
}

// NewStore creates a Store backed by the file at the given path.
// A missing or empty file yields an empty store. An unreadable or corrupt file
// puts the store in memory-only mode: it starts empty and refuses to persist.
func NewStore(path string, log ports.Logger) *Store {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ScoreRecord),
	}
	notes, err := s.load()
	if err != nil {
		s.degraded = err
		s.cache = make(map[string]domain.ScoreRecord)
		log.Warn("score cache is not durable, continuing in memory only: " + err.Error())
	}
	for _, note := range notes {
		log.Warn("score cache " + s.path + ": " + note)
	}
	return s
}

// NewDegraded creates an empty memory-only Store for a backend that failed to open.
func NewDegraded(path string, cause error, log ports.Logger) *Store {
	log.Warn("score cache is not durable, continuing in memory only: " + cause.Error())
	return &Store{
		path:     filepath.Clean(path),
		cache:    make(map[string]domain.ScoreRecord),
		degraded: cause,
	}
}

// load fills the cache from disk. The returned notes describe legacy entries
// that were skipped or shadowed.
func (s *Store) load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var (
		records []domain.ScoreRecord
		notes   []string
	)
	if data[0] == '{' {
		records, notes, err = decodeLegacy(data)
	} else {
		records, err = decode(data)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	for _, r := range records {
		if _, dup := s.cache[r.Key()]; dup {
			continue
		}
		s.cache[r.Key()] = r
	}
	return notes, nil
}

// legacyEntry is one value of the nested layout: either a bare score or a
// {"score": x, "timestamp": "...", "computed": true} object.
type legacyEntry struct {
	Score     *float64 `json:"score"`
	Timestamp string   `json:"timestamp"`
}

// decodeLegacy reads the nested {"TARGET": {"SMILES": entry}} layout of older
// caches. Targets and molecules are visited in sorted key order, so when two
// keys normalize to the same pair the first one in that order wins.
func decodeLegacy(data []byte) ([]domain.ScoreRecord, []string, error) {
	var nested map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &nested); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to unmarshal score cache")
	}

	var (
		records []domain.ScoreRecord
		notes   []string
	)
	seen := make(map[string]string)
	for _, target := range slices.Sorted(maps.Keys(nested)) {
		entries := nested[target]
		for _, molecule := range slices.Sorted(maps.Keys(entries)) {
			raw := bytes.TrimSpace(entries[molecule])
			if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
				continue
			}

			rec, ok := legacyRecord(raw)
			if !ok {
				notes = append(notes, fmt.Sprintf("skipped unreadable entry for %s on %s", molecule, target))
				continue
			}
			rec.Molecule = molecule
			rec.Target = target
			rec = normalized(rec)

			key := target + "/" + molecule
			if first, dup := seen[rec.Key()]; dup {
				notes = append(notes, fmt.Sprintf("ignored %s, same pair as %s", key, first))
				continue
			}
			seen[rec.Key()] = key
			records = append(records, rec)
		}
	}
	return records, notes, nil
}

func legacyRecord(raw json.RawMessage) (domain.ScoreRecord, bool) {
	rec := domain.ScoreRecord{Source: domain.SourceComputed}

	if raw[0] != '{' {
		if err := json.Unmarshal(raw, &rec.Score); err != nil {
			return rec, false
		}
		return rec, true
	}

	var entry legacyEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Score == nil {
		return rec, false
	}
	rec.Score = *entry.Score
	rec.ComputedAt = legacyTimestamp(entry.Timestamp)
	return rec, true
}

// legacyTimestamp parses RFC 3339 or a zone-less ISO 8601 time, read as UTC.
func legacyTimestamp(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// decode reads the record array written by save.
func decode(data []byte) ([]domain.ScoreRecord, error) {
	var stored []fileRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal score cache")
	}
	records := make([]domain.ScoreRecord, 0, len(stored))
	for _, f := range stored {
		records = append(records, normalized(domain.ScoreRecord{
			Molecule:   f.Molecule,
			Target:     f.Target,
			Score:      f.Score,
			Source:     f.Source,
			ComputedAt: f.ComputedAt,
		}))
	}
	return records, nil
}

func normalized(r domain.ScoreRecord) domain.ScoreRecord {
	r.Molecule = domain.NormalizeMolecule(r.Molecule)
	r.Target = domain.NormalizeTarget(r.Target)
	if r.Source == "" || r.Source == domain.SourceCached {
		r.Source = domain.SourceComputed
	}
	r.Origin = ""
	r.Outcome = ""
	return r
}

func (s *Store) save() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	snapshot := make([]fileRecord, 0, len(s.cache))
	for _, r := range s.cache {
		snapshot = append(snapshot, fileRecord{
			Molecule:   r.Molecule,
			Target:     r.Target,
			Score:      r.Score,
			Source:     r.Source,
			ComputedAt: r.ComputedAt,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(snapshot, func(a, b fileRecord) int {
		return cmp.Or(cmp.Compare(a.Target, b.Target), cmp.Compare(a.Molecule, b.Molecule))
	})

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal score cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for score cache")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary score cache file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write score cache")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close score cache")
	}
	//nolint:gosec // Cache is not secret
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return zerr.Wrap(err, "failed to set score cache permissions")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to replace score cache")
	}

	return nil
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

// Put stores the record in memory, then rewrites the file.
// Non-finite scores are refused and never enter the cache.
func (s *Store) Put(record domain.ScoreRecord) error {
	if math.IsNaN(record.Score) || math.IsInf(record.Score, 0) {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, "score is not finite"), "score", record.Score)
	}
	record = normalized(record)

	s.mu.Lock()
	s.cache[record.Key()] = record
	degraded := s.degraded
	s.mu.Unlock()

	if degraded != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreDegraded, "score kept in memory only"), "path", s.path)
	}

	if err := s.save(); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	return nil
}

// Stats summarises the store contents.
func (s *Store) Stats() (domain.CacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.CacheStats{
		Backend:   domain.CacheBackendJSON,
		Path:      s.path,
		Total:     len(s.cache),
		PerTarget: make(map[string]int),
		Degraded:  s.degraded != nil,
	}
	for _, r := range s.cache {
		stats.PerTarget[r.Target]++
	}
	return stats, nil
}

// Clear removes the records of a target, or all records when target is empty.
func (s *Store) Clear(target string) (int, error) {
	target = domain.NormalizeTarget(target)

	s.mu.Lock()
	before := len(s.cache)
	if target == "" {
		s.cache = make(map[string]domain.ScoreRecord)
	} else {
		maps.DeleteFunc(s.cache, func(_ string, r domain.ScoreRecord) bool {
			return r.Target == target
		})
	}
	removed := before - len(s.cache)
	degraded := s.degraded
	s.mu.Unlock()

	if removed == 0 || degraded != nil {
		return removed, nil
	}
	if err := s.save(); err != nil {
		return removed, zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	return removed, nil
}

// Close is a no-op; every mutation is already on disk.
func (s *Store) Close() error {
	return nil
}
