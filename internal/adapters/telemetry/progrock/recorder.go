// Package progrock records dispatch progress as Progrock vertices.
package progrock

import (
	"context"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/dockq/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex named after the unit of work.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &vertex{rec: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// vertex is one dispatched (molecule, target) pair. Only the first Complete
// call is recorded, so a deferred completion cannot overwrite an earlier error.
type vertex struct {
	rec  *progrock.VertexRecorder
	once sync.Once
}

func (v *vertex) Stdout() io.Writer {
	return v.rec.Stdout()
}

func (v *vertex) Cached() {
	v.rec.Cached()
}

func (v *vertex) Complete(err error) {
	v.once.Do(func() { v.rec.Done(err) })
}
