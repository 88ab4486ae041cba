package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPlan is returned when the plan contains no tool specifications.
	ErrEmptyPlan = zerr.New("plan contains no tools")

	// ErrInvalidToolSpec is returned when a spec has an empty name or version.
	ErrInvalidToolSpec = zerr.New("invalid tool spec")

	// ErrDuplicateTool is returned when a tool name appears more than once in the plan.
	ErrDuplicateTool = zerr.New("duplicate tool in plan")

	// ErrPrerequisiteMissing is returned when a spec requires a tool that is not
	// listed earlier in the plan sequence.
	ErrPrerequisiteMissing = zerr.New("prerequisite not listed before dependent tool")

	// ErrVersionUnavailable is returned when the requested version is not published
	// for the current platform.
	ErrVersionUnavailable = zerr.New("requested version unavailable")

	// ErrInstallFailed is returned when the version manager fails to install a tool.
	ErrInstallFailed = zerr.New("tool installation failed")

	// ErrDefaultSelectionFailed is returned when the version manager fails to mark
	// an installed version as the active default.
	ErrDefaultSelectionFailed = zerr.New("default selection failed")

	// ErrProvisionFailed is the top-level marker for a failed provisioning run.
	ErrProvisionFailed = zerr.New("provisioning failed")
)
