package sdkman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolup/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the candidate resolver node.
	ResolverNodeID graft.ID = "adapter.sdkman.resolver"
	// ManagerNodeID is the unique identifier for the version manager node.
	ManagerNodeID graft.ID = "adapter.sdkman.manager"
)

func init() {
	graft.Register(graft.Node[ports.CandidateResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CandidateResolver, error) {
			return NewResolver()
		},
	})

	graft.Register(graft.Node[ports.VersionManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionManager, error) {
			return NewManager()
		},
	})
}
