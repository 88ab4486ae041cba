package sdkman_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolup/internal/adapters/sdkman"
	"go.trai.ch/toolup/internal/core/domain"
)

// fakeInitScript defines an sdk shell function that records its arguments and
// fails when a marker file exists, standing in for the real CLI.
const fakeInitScript = `
sdk() {
  echo "$@" >> "$SDKMAN_DIR/invocations.log"
  if [ -f "$SDKMAN_DIR/fail" ]; then
    echo "simulated sdk failure" >&2
    return 1
  fi
}
`

func newFakeInstallation(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), domain.DirPerm))
	err := os.WriteFile(filepath.Join(dir, "bin", "sdkman-init.sh"), []byte(fakeInitScript), domain.FilePerm)
	require.NoError(t, err)
	return dir
}

func invocations(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "invocations.log"))
	require.NoError(t, err)
	return string(data)
}

func TestNewManager(t *testing.T) {
	t.Run("uses SDKMAN_DIR when set", func(t *testing.T) {
		dir := newFakeInstallation(t)
		t.Setenv(sdkman.DirEnvVar, dir)

		m, err := sdkman.NewManager()
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("fails without init script", func(t *testing.T) {
		t.Setenv(sdkman.DirEnvVar, t.TempDir())

		m, err := sdkman.NewManager()
		require.Error(t, err)
		require.ErrorContains(t, err, "sdkman init script not found")
		assert.Nil(t, m)
	})
}

func TestManager_Install(t *testing.T) {
	t.Run("invokes sdk install", func(t *testing.T) {
		dir := newFakeInstallation(t)
		m := sdkman.NewManagerWithDir(dir)

		err := m.Install(context.Background(), "java", "17.0.3-tem")
		require.NoError(t, err)
		assert.Contains(t, invocations(t, dir), "install java 17.0.3-tem")
	})

	t.Run("maps CLI failure to install error", func(t *testing.T) {
		dir := newFakeInstallation(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fail"), nil, domain.FilePerm))
		m := sdkman.NewManagerWithDir(dir)

		err := m.Install(context.Background(), "java", "99.0.0")
		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrInstallFailed)
	})
}

func TestManager_SetDefault(t *testing.T) {
	t.Run("invokes sdk default", func(t *testing.T) {
		dir := newFakeInstallation(t)
		m := sdkman.NewManagerWithDir(dir)

		err := m.SetDefault(context.Background(), "gradle", "7.5.1")
		require.NoError(t, err)
		assert.Contains(t, invocations(t, dir), "default gradle 7.5.1")
	})

	t.Run("maps CLI failure to default selection error", func(t *testing.T) {
		dir := newFakeInstallation(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fail"), nil, domain.FilePerm))
		m := sdkman.NewManagerWithDir(dir)

		err := m.SetDefault(context.Background(), "gradle", "7.5.1")
		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrDefaultSelectionFailed)
	})
}

func TestManager_Installed(t *testing.T) {
	dir := newFakeInstallation(t)
	m := sdkman.NewManagerWithDir(dir)
	ctx := context.Background()

	javaDir := filepath.Join(dir, "candidates", "java", "17.0.3-tem")
	require.NoError(t, os.MkdirAll(javaDir, domain.DirPerm))

	installed, err := m.Installed(ctx, "java", "17.0.3-tem")
	require.NoError(t, err)
	assert.True(t, installed)

	installed, err = m.Installed(ctx, "java", "21.0.1-tem")
	require.NoError(t, err)
	assert.False(t, installed)

	installed, err = m.Installed(ctx, "kotlin", "1.7.21")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestManager_Default(t *testing.T) {
	dir := newFakeInstallation(t)
	m := sdkman.NewManagerWithDir(dir)
	ctx := context.Background()

	javaDir := filepath.Join(dir, "candidates", "java")
	require.NoError(t, os.MkdirAll(filepath.Join(javaDir, "17.0.3-tem"), domain.DirPerm))

	t.Run("empty when no default set", func(t *testing.T) {
		version, err := m.Default(ctx, "java")
		require.NoError(t, err)
		assert.Empty(t, version)
	})

	t.Run("resolves current symlink", func(t *testing.T) {
		link := filepath.Join(javaDir, "current")
		require.NoError(t, os.Symlink(filepath.Join(javaDir, "17.0.3-tem"), link))

		version, err := m.Default(ctx, "java")
		require.NoError(t, err)
		assert.Equal(t, "17.0.3-tem", version)
	})
}

func TestManager_InstallQuotesArguments(t *testing.T) {
	dir := newFakeInstallation(t)
	m := sdkman.NewManagerWithDir(dir)

	// A space in the version must reach sdk as a single argument.
	err := m.Install(context.Background(), "java", "17.0.3 tem")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(invocations(t, dir)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "install java 17.0.3 tem", lines[0])
}
