package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of dispatched work.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex output.
	Stdout() io.Writer
	// Cached marks the vertex as served from cache.
	Cached()
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
