package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Plan is an ordered sequence of tool specifications.
// Order is significant: a tool's prerequisites must be listed before it.
type Plan struct {
	specs []ToolSpec
}

// NewPlan creates a Plan from the given specs. The slice is copied so later
// mutation of the argument cannot affect the plan.
func NewPlan(specs []ToolSpec) *Plan {
	copied := make([]ToolSpec, len(specs))
	copy(copied, specs)
	return &Plan{specs: copied}
}

// Len returns the number of steps in the plan.
func (p *Plan) Len() int {
	return len(p.specs)
}

// Walk returns an iterator that yields specs in plan order.
func (p *Plan) Walk() iter.Seq[ToolSpec] {
	return func(yield func(ToolSpec) bool) {
		for _, spec := range p.specs {
			if !yield(spec) {
				return
			}
		}
	}
}

// Validate checks the plan invariants:
//   - the sequence is non-empty
//   - every spec has a non-empty name and version
//   - no tool name appears twice (duplicates are an authoring error, not last-wins)
//   - every prerequisite names a tool that appears earlier in the sequence
func (p *Plan) Validate() error {
	if len(p.specs) == 0 {
		return ErrEmptyPlan
	}

	seen := make(map[string]bool, len(p.specs))
	for i, spec := range p.specs {
		if spec.Name == "" || spec.Version == "" {
			err := zerr.With(ErrInvalidToolSpec, "index", i)
			err = zerr.With(err, "name", spec.Name)
			return zerr.With(err, "version", spec.Version)
		}

		if seen[spec.Name] {
			return zerr.With(ErrDuplicateTool, "tool", spec.Name)
		}

		for _, req := range spec.Requires {
			if !seen[req] {
				err := zerr.With(ErrPrerequisiteMissing, "tool", spec.Name)
				return zerr.With(err, "prerequisite", req)
			}
		}

		seen[spec.Name] = true
	}

	return nil
}
