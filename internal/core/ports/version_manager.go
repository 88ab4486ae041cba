// Package ports defines the core interfaces for the application.
package ports

import "context"

// VersionManager is the contract toolup consumes from the underlying version
// manager. The provisioner depends only on this interface, never on the
// manager's internal implementation.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_manager.go -destination=mocks/mock_version_manager.go -package=mocks
type VersionManager interface {
	// Install installs the named tool at the exact version.
	// Installing an already-present version must be a no-op.
	Install(ctx context.Context, tool, version string) error

	// SetDefault marks an installed version as the active default for the tool.
	SetDefault(ctx context.Context, tool, version string) error

	// Installed reports whether the exact tool version is present in the environment.
	Installed(ctx context.Context, tool, version string) (bool, error)

	// Default returns the currently active default version for the tool,
	// or the empty string if no default is set.
	Default(ctx context.Context, tool string) (string, error)
}
