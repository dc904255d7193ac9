// Package ports defines the core interfaces for the application.
package ports

import "context"

// DockingEngine computes real docking scores.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type DockingEngine interface {
	// Available reports whether an engine is installed at all.
	Available() bool

	// Dock scores a molecule against a target.
	// It returns an error if the engine fails, times out or produces no score.
	Dock(ctx context.Context, molecule, target string) (float64, error)
}
