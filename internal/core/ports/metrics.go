package ports

import (
	"time"

	"go.trai.ch/dockq/internal/core/domain"
)

// Metrics collects dispatcher and store measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveDispatch records one finished dispatch.
	ObserveDispatch(target string, outcome domain.Outcome, elapsed time.Duration)
	// EngineFailure records a docking engine failure that triggered a fallback.
	EngineFailure(target, reason string)
	// StoreWriteFailure records a score that could not be persisted.
	StoreWriteFailure()
}
