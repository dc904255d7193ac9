// Package telemetry selects how dispatch progress is recorded.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/dockq/internal/core/ports"
)

var (
	_ ports.Telemetry = NoOp{}
	_ ports.Vertex    = noOpVertex{}
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns ctx unchanged and a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Stdout() io.Writer { return io.Discard }
func (noOpVertex) Cached()           {}
func (noOpVertex) Complete(error)    {}
