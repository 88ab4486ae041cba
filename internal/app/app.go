// Package app implements the application layer for toolup.
package app

import (
	"context"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
	"go.trai.ch/toolup/internal/engine/provisioner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       *provisioner.Provisioner
	manager      ports.VersionManager
	receipts     ports.ReceiptStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	engine *provisioner.Provisioner,
	manager ports.VersionManager,
	receipts ports.ReceiptStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		manager:      manager,
		receipts:     receipts,
		logger:       log,
	}
}

// Apply loads the plan file and provisions it.
func (a *App) Apply(ctx context.Context, planPath string) error {
	plan, err := a.configLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	if err := a.engine.Run(ctx, plan); err != nil {
		return zerr.Wrap(err, domain.ErrProvisionFailed.Error())
	}

	return nil
}

// Check loads and validates the plan file and preflights every pinned
// version without mutating the environment.
func (a *App) Check(ctx context.Context, planPath string) error {
	plan, err := a.configLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	if err := a.engine.Preflight(ctx, plan); err != nil {
		return zerr.Wrap(err, "plan check failed")
	}

	return nil
}

// Status reports the observed state of every planned tool.
func (a *App) Status(ctx context.Context, planPath string) ([]domain.ToolStatus, error) {
	plan, err := a.configLoader.Load(planPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load plan")
	}

	statuses := make([]domain.ToolStatus, 0, plan.Len())
	for spec := range plan.Walk() {
		installed, err := a.manager.Installed(ctx, spec.Name, spec.Version)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to inspect environment")
		}

		active, err := a.manager.Default(ctx, spec.Name)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to inspect environment")
		}

		receipt, err := a.receipts.Get(spec.Name)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read receipts")
		}

		statuses = append(statuses, domain.ToolStatus{
			Tool:           spec.Name,
			PlannedVersion: spec.Version,
			ActiveVersion:  active,
			Installed:      installed,
			Receipt:        receipt,
		})
	}

	return statuses, nil
}
