package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toolup/internal/adapters/logger"
)

func TestLogger_Output(t *testing.T) {
	l := logger.New()
	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Info("installing java@17.0.3-tem")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "installing java@17.0.3-tem")

	buf.Reset()
	l.Warn("receipt write failed")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "receipt write failed")

	buf.Reset()
	l.Error(errors.New("install failed"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "install failed")
}
