// Package domain contains the core domain models for the provisioning plan.
package domain

// ToolSpec pins a single tool to an exact version.
// It is authored in the plan file and never mutated after loading.
type ToolSpec struct {
	// Name is the version-manager candidate name (e.g., "java", "gradle").
	Name string

	// Version is the exact version identifier to install (e.g., "17.0.3-tem").
	Version string

	// Requires lists tool names that must be provisioned before this one.
	// Each entry must appear earlier in the plan sequence.
	Requires []string
}

// Display returns the canonical "name@version" form used in logs and telemetry.
func (s ToolSpec) Display() string {
	return s.Name + "@" + s.Version
}
