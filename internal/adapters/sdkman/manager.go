// Package sdkman implements the version-manager ports by driving the SDKMAN
// CLI and inspecting its candidate directory layout.
package sdkman

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DirEnvVar points at the SDKMAN installation root.
	DirEnvVar = "SDKMAN_DIR"

	initScriptRelPath = "bin/sdkman-init.sh"
	candidatesDirName = "candidates"
	currentLinkName   = "current"

	// outputTailLimit bounds how much captured CLI output lands in error metadata.
	outputTailLimit = 2048
)

// Manager implements ports.VersionManager by driving the SDKMAN CLI.
// sdk is a shell function, not a binary, so every mutating operation sources
// the init script inside a fresh non-interactive bash.
type Manager struct {
	dir string
}

// NewManager creates a Manager rooted at $SDKMAN_DIR, falling back to
// $HOME/.sdkman. It fails when no SDKMAN installation is present.
func NewManager() (*Manager, error) {
	dir := os.Getenv(DirEnvVar)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, "cannot locate sdkman installation")
		}
		dir = filepath.Join(home, ".sdkman")
	}

	if _, err := os.Stat(filepath.Join(dir, initScriptRelPath)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "sdkman init script not found"), "sdkman_dir", dir)
	}

	return NewManagerWithDir(dir), nil
}

// NewManagerWithDir creates a Manager rooted at an explicit directory.
// Used by tests against a fabricated candidate layout.
func NewManagerWithDir(dir string) *Manager {
	return &Manager{dir: filepath.Clean(dir)}
}

// Install installs the named tool at the exact version.
// SDKMAN skips the download when the version is already present locally.
func (m *Manager) Install(ctx context.Context, tool, version string) error {
	return m.runSDK(ctx, domain.ErrInstallFailed, "install", tool, version)
}

// SetDefault marks an installed version as the active default for the tool.
func (m *Manager) SetDefault(ctx context.Context, tool, version string) error {
	return m.runSDK(ctx, domain.ErrDefaultSelectionFailed, "default", tool, version)
}

// Installed reports whether the exact tool version is present in the
// candidate directory.
func (m *Manager) Installed(_ context.Context, tool, version string) (bool, error) {
	info, err := os.Stat(filepath.Join(m.dir, candidatesDirName, tool, version))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, "failed to inspect candidate directory")
	}
	return info.IsDir(), nil
}

// Default returns the version the candidate's "current" symlink points at,
// or the empty string when no default is set.
func (m *Manager) Default(_ context.Context, tool string) (string, error) {
	link := filepath.Join(m.dir, candidatesDirName, tool, currentLinkName)
	target, err := os.Readlink(link)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.Wrap(err, "failed to read current default")
	}
	return filepath.Base(target), nil
}

// runSDK sources the init script and invokes one sdk verb. On failure the
// returned error chains the given sentinel and carries the output tail.
func (m *Manager) runSDK(ctx context.Context, sentinel error, verb, tool, version string) error {
	//nolint:gosec // script is assembled from validated plan input
	cmd := exec.CommandContext(ctx, "bash", "-c", m.script(verb, tool, version))
	cmd.Env = m.commandEnv()

	var tail tailBuffer
	cmd.Stdout = &tail
	cmd.Stderr = &tail
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(v.Stdout(), &tail)
		cmd.Stderr = io.MultiWriter(v.Stderr(), &tail)
	}

	if err := cmd.Run(); err != nil {
		failure := zerr.With(sentinel, "tool", tool)
		failure = zerr.With(failure, "version", version)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure = zerr.With(failure, "exit_code", exitErr.ExitCode())
		}

		return zerr.With(failure, "output", tail.String())
	}

	return nil
}

func (m *Manager) script(verb, tool, version string) string {
	initScript := filepath.Join(m.dir, initScriptRelPath)
	return fmt.Sprintf("source %q && sdk %s %q %q", initScript, verb, tool, version)
}

// commandEnv pins the SDKMAN root and forces non-interactive behavior.
func (m *Manager) commandEnv() []string {
	return append(os.Environ(),
		DirEnvVar+"="+m.dir,
		"sdkman_auto_answer=true",
		"sdkman_selfupdate_feature=false",
		"sdkman_colour_enable=false",
	)
}

// tailBuffer keeps the last outputTailLimit bytes written to it.
type tailBuffer struct {
	buf []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - outputTailLimit; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return strings.TrimSpace(string(b.buf))
}
