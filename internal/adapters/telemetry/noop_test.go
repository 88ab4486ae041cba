package telemetry_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolup/internal/adapters/telemetry"
	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
)

func TestNoOp_Record(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, vertex := rec.Record(context.Background(), "java@17.0.3-tem")
	require.NotNil(t, vertex)

	// The vertex rides the context so the version manager can stream into it.
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	// All operations are harmless no-ops.
	_, err := vertex.Stdout().Write([]byte("output"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("errors"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "message")
	vertex.Cached()
	vertex.Complete(nil)

	assert.Equal(t, io.Discard, vertex.Stdout())
	require.NoError(t, rec.Close())
}

func TestVertexFromContext_Empty(t *testing.T) {
	_, ok := ports.VertexFromContext(context.Background())
	assert.False(t, ok)
}
