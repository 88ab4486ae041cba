package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolup/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolup/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolup/internal/adapters/sdkman"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolup/internal/adapters/state"    //nolint:depguard // Wired in app layer
	"go.trai.ch/toolup/internal/core/ports"
	"go.trai.ch/toolup/internal/engine/provisioner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			provisioner.NodeID,
			sdkman.ManagerNodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*provisioner.Provisioner](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[ports.VersionManager](ctx)
	if err != nil {
		return nil, err
	}

	receipts, err := graft.Dep[ports.ReceiptStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, engine, manager, receipts, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
