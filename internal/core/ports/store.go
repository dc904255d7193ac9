package ports

import "go.trai.ch/dockq/internal/core/domain"

// ScoreStore defines the interface for the persisted score cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ScoreStore interface {
	// Get retrieves the record for a normalized (molecule, target) pair.
	// Returns nil, nil if not found.
	Get(molecule, target string) (*domain.ScoreRecord, error)

	// Put inserts or overwrites a record and persists the store.
	// The record is served from memory even when persisting fails.
	Put(record domain.ScoreRecord) error

	// Stats summarises the store contents.
	Stats() (domain.CacheStats, error)

	// Clear removes all records of a target, or every record when target is empty.
	// It returns the number of removed records.
	Clear(target string) (int, error)

	// Close releases the underlying storage.
	Close() error
}
