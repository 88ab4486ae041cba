package ports

import (
	"context"
	"io"

	"go.trai.ch/toolup/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records provisioning progress, one vertex per plan step.
type Telemetry interface {
	// Record starts recording a new vertex and attaches it to the context.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer to capture standard output stream.
	Stdout() io.Writer

	// Stderr returns a writer to capture error output stream.
	Stderr() io.Writer

	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)

	// Cached marks the vertex as a no-op because the desired state already held.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Placeholder to support the option pattern.
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

type vertexContextKey struct{}

// ContextWithVertex returns a context carrying the given vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
