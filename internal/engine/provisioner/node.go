package provisioner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolup/internal/adapters/logger"
	"go.trai.ch/toolup/internal/adapters/sdkman"
	"go.trai.ch/toolup/internal/adapters/state"
	telemetrynode "go.trai.ch/toolup/internal/adapters/telemetry/progrock"
	"go.trai.ch/toolup/internal/core/ports"
)

// NodeID is the unique identifier for the provisioning engine Graft node.
const NodeID graft.ID = "engine.provisioner"

func init() {
	graft.Register(graft.Node[*Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sdkman.ManagerNodeID,
			sdkman.ResolverNodeID,
			state.NodeID,
			telemetrynode.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Provisioner, error) {
			manager, err := graft.Dep[ports.VersionManager](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.CandidateResolver](ctx)
			if err != nil {
				return nil, err
			}

			receipts, err := graft.Dep[ports.ReceiptStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, resolver, receipts, telemetry, log), nil
		},
	})
}
