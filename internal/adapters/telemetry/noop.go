// Package telemetry provides telemetry implementations for provisioning runs.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new no-op telemetry implementation.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex attached to the context.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoOpVertex) Stdout() io.Writer {
	return io.Discard
}

// Stderr returns a writer that discards everything.
func (v *NoOpVertex) Stderr() io.Writer {
	return io.Discard
}

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
