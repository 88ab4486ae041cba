package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toolup/internal/app"
	"go.trai.ch/toolup/internal/core/ports/mocks"
	"go.trai.ch/toolup/internal/engine/provisioner"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockManager := mocks.NewMockVersionManager(ctrl)
	mockResolver := mocks.NewMockCandidateResolver(ctrl)
	mockReceipts := mocks.NewMockReceiptStore(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)

	engine := provisioner.New(mockManager, mockResolver, mockReceipts, mockTelemetry, mockLogger)
	application := app.New(mockLoader, engine, mockManager, mockReceipts, mockLogger)

	return &app.Components{
		App:    application,
		Logger: mockLogger,
	}, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _ := newTestComponents(ctrl)
	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockLoader, mockLogger := newTestComponents(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"apply"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
