package domain

import (
	"os"
	"path/filepath"
)

const (
	// ToolupDirName is the name of the internal state directory.
	ToolupDirName = ".toolup"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// CandidatesDirName is the name of the candidate-resolution cache directory.
	CandidatesDirName = "candidates"

	// ReceiptsFileName is the name of the provisioning receipts file.
	ReceiptsFileName = "receipts.json"

	// PlanFileName is the name of the default plan file.
	PlanFileName = "toolchain.yaml"

	// HomeEnvVar overrides the state directory location when set.
	HomeEnvVar = "TOOLUP_HOME"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultToolupPath returns the root directory for toolup state.
// It honors TOOLUP_HOME, then falls back to $HOME/.toolup, then to a
// relative .toolup directory when no home is resolvable.
func DefaultToolupPath() string {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ToolupDirName
	}
	return filepath.Join(home, ToolupDirName)
}

// DefaultCandidateCachePath returns the default path for the candidate cache.
func DefaultCandidateCachePath() string {
	return filepath.Join(DefaultToolupPath(), CacheDirName, CandidatesDirName)
}

// DefaultReceiptsPath returns the default path for the receipts file.
func DefaultReceiptsPath() string {
	return filepath.Join(DefaultToolupPath(), ReceiptsFileName)
}
