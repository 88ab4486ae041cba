package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolup/cmd/toolup/commands"
	"go.trai.ch/toolup/internal/build"
	"go.trai.ch/toolup/internal/core/domain"
)

type mockApp struct {
	applyFunc  func(ctx context.Context, planPath string) error
	checkFunc  func(ctx context.Context, planPath string) error
	statusFunc func(ctx context.Context, planPath string) ([]domain.ToolStatus, error)
}

func (m *mockApp) Apply(ctx context.Context, planPath string) error {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, planPath)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, planPath string) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, planPath)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, planPath string) ([]domain.ToolStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, planPath)
	}
	return nil, nil
}

func TestCommands_Apply(t *testing.T) {
	t.Run("uses the default plan file", func(t *testing.T) {
		var capturedPath string
		mock := &mockApp{
			applyFunc: func(_ context.Context, planPath string) error {
				capturedPath = planPath
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"apply"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.PlanFileName, capturedPath)
	})

	t.Run("honors the config flag", func(t *testing.T) {
		var capturedPath string
		mock := &mockApp{
			applyFunc: func(_ context.Context, planPath string) error {
				capturedPath = planPath
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"apply", "--config", "custom/plan.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom/plan.yaml", capturedPath)
	})

	t.Run("returns error on provisioning failure", func(t *testing.T) {
		mock := &mockApp{
			applyFunc: func(_ context.Context, _ string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"apply"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Check(t *testing.T) {
	t.Run("confirms a valid plan", func(t *testing.T) {
		called := false
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ string) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"check"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Contains(t, buf.String(), "plan is valid")
	})

	t.Run("propagates check failure", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ string) error {
				return errors.New("version unavailable")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"check"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Status(t *testing.T) {
	mock := &mockApp{
		statusFunc: func(_ context.Context, _ string) ([]domain.ToolStatus, error) {
			return []domain.ToolStatus{
				{Tool: "java", PlannedVersion: "17.0.3-tem", ActiveVersion: "17.0.3-tem", Installed: true},
				{Tool: "gradle", PlannedVersion: "7.5.1", ActiveVersion: "8.0", Installed: true},
				{Tool: "kotlin", PlannedVersion: "1.7.21", Installed: false},
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"status"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TOOL")
	assert.Contains(t, out, "provisioned")
	assert.Contains(t, out, "installed, not default")
	assert.Contains(t, out, "missing")
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
