// Package provisioner implements the sequential provisioning engine.
package provisioner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// StepStatus represents the status of a provisioning step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to be executed.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates the step execution failed.
	StatusFailed StepStatus = "Failed"
	// StatusCached indicates the step was a no-op because the desired state already held.
	StatusCached StepStatus = "Cached"
)

// Provisioner walks a plan in order, installing each tool and marking it as
// the active default. Mutation is strictly sequential and fail-fast: the
// first failing step aborts the remainder of the plan, with no rollback.
type Provisioner struct {
	manager   ports.VersionManager
	resolver  ports.CandidateResolver
	receipts  ports.ReceiptStore
	telemetry ports.Telemetry
	logger    ports.Logger

	mu         sync.RWMutex
	stepStatus map[string]StepStatus
}

// New creates a new Provisioner.
func New(
	manager ports.VersionManager,
	resolver ports.CandidateResolver,
	receipts ports.ReceiptStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *Provisioner {
	return &Provisioner{
		manager:    manager,
		resolver:   resolver,
		receipts:   receipts,
		telemetry:  telemetry,
		logger:     log,
		stepStatus: make(map[string]StepStatus),
	}
}

// Run validates the plan, preflights every version, then provisions each step
// in plan order. On failure the returned error carries the failing tool and
// the completed/total step counts.
func (p *Provisioner) Run(ctx context.Context, plan *domain.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	p.initStatuses(plan)

	if err := p.Preflight(ctx, plan); err != nil {
		return err
	}

	fingerprint := plan.Fingerprint()
	total := plan.Len()
	completed := 0

	for spec := range plan.Walk() {
		if err := p.provisionStep(ctx, spec, fingerprint); err != nil {
			p.setStatus(spec.Name, StatusFailed)
			err = zerr.With(err, "completed", completed)
			return zerr.With(err, "total", total)
		}
		completed++
	}

	return nil
}

// Preflight verifies that every pinned version is published for the current
// platform. It is read-only, so unlike the install walk it may fan out.
func (p *Provisioner) Preflight(ctx context.Context, plan *domain.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for spec := range plan.Walk() {
		g.Go(func() error {
			if err := p.resolver.Resolve(groupCtx, spec.Name, spec.Version); err != nil {
				return zerr.Wrap(err, "preflight resolution failed")
			}
			return nil
		})
	}

	return g.Wait()
}

// Statuses returns a snapshot of per-tool step statuses.
func (p *Provisioner) Statuses() map[string]StepStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snapshot := make(map[string]StepStatus, len(p.stepStatus))
	for name, status := range p.stepStatus {
		snapshot[name] = status
	}
	return snapshot
}

func (p *Provisioner) initStatuses(plan *domain.Plan) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stepStatus = make(map[string]StepStatus, plan.Len())
	for spec := range plan.Walk() {
		p.stepStatus[spec.Name] = StatusPending
	}
}

func (p *Provisioner) setStatus(name string, status StepStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stepStatus[name] = status
}

// provisionStep installs one tool and marks it as the default. A step whose
// desired state already holds is recorded as cached and left untouched.
func (p *Provisioner) provisionStep(ctx context.Context, spec domain.ToolSpec, fingerprint string) error {
	ctx, vertex := p.telemetry.Record(ctx, spec.Display())
	p.setStatus(spec.Name, StatusRunning)

	installed, err := p.manager.Installed(ctx, spec.Name, spec.Version)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	current, err := p.manager.Default(ctx, spec.Name)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	if installed && current == spec.Version {
		p.setStatus(spec.Name, StatusCached)
		p.writeReceipt(spec, fingerprint)
		vertex.Cached()
		vertex.Complete(nil)
		p.logger.Info(fmt.Sprintf("%s already provisioned", spec.Display()))
		return nil
	}

	if !installed {
		p.logger.Info(fmt.Sprintf("installing %s", spec.Display()))
		if err := p.manager.Install(ctx, spec.Name, spec.Version); err != nil {
			vertex.Complete(err)
			return err
		}
	}

	if err := p.manager.SetDefault(ctx, spec.Name, spec.Version); err != nil {
		vertex.Complete(err)
		return err
	}

	p.setStatus(spec.Name, StatusCompleted)
	p.writeReceipt(spec, fingerprint)
	vertex.Complete(nil)
	p.logger.Info(fmt.Sprintf("%s is now the default", spec.Display()))
	return nil
}

// writeReceipt persists the step receipt. Receipts are informational, so a
// write failure is logged but never fails the step.
func (p *Provisioner) writeReceipt(spec domain.ToolSpec, fingerprint string) {
	receipt := domain.Receipt{
		Tool:            spec.Name,
		Version:         spec.Version,
		PlanFingerprint: fingerprint,
		Timestamp:       time.Now(),
	}
	if err := p.receipts.Put(receipt); err != nil {
		p.logger.Warn(fmt.Sprintf("failed to record receipt for %s: %v", spec.Display(), err))
	}
}
