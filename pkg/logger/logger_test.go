package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	logFilePath := filepath.Join(tempDir, "log", "dashboard.log")
	t.Run("successful creation", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()

	logFilePath := filepath.Join(tempDir, "dashboard.log")
	reloadedLogFilePath := filepath.Join(tempDir, "dashboard.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	err = os.Rename(logFilePath, reloadedLogFilePath)
	require.NoError(t, err)

	err = ws.Reload()
	require.NoError(t, err)

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	ws.Sync()

	contentOld, err := os.ReadFile(reloadedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(contentNew))
}

func TestReopenableWriteSyncer_ReloadOn(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "dashboard.log")
	rotatedLogFilePath := filepath.Join(tempDir, "dashboard.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()
	assert.Equal(t, logFilePath, ws.Path())

	_, err = ws.Write([]byte("beforeRotate\n"))
	require.NoError(t, err)
	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	reloaded := make(chan error, 1)
	stopped := make(chan struct{})
	go func() {
		ws.ReloadOn(ctx, signals, func(err error) { reloaded <- err })
		close(stopped)
	}()

	signals <- syscall.SIGHUP
	select {
	case err = <-reloaded:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reload was not triggered")
	}

	_, err = ws.Write([]byte("afterRotate\n"))
	require.NoError(t, err)

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "afterRotate\n", string(contentNew))
	contentOld, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "beforeRotate\n", string(contentOld))

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("reload loop did not stop after cancel")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel},
		{"info level", "info", zap.InfoLevel},
		{"warn level", "warn", zap.WarnLevel},
		{"error level", "error", zap.ErrorLevel},
		{"fatal level", "fatal", zap.FatalLevel},
		{"invalid level", "invalid", zap.InfoLevel},
		{"empty level", "", zap.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedLevel, ParseLevel(tc.logLevel))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger("warn", zapcore.AddSync(&buffer))
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger.Warn("inventory api slow", zap.String("operation", "InventoryClient.ListServers"))

	logOutput := buffer.String()
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"msg":"inventory api slow"`)
	assert.Contains(t, logOutput, `"operation":"InventoryClient.ListServers"`)
	assert.Contains(t, logOutput, `"caller":"logger/logger_test.go`)
}

func TestNewLogger_WithFileSyncer(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(filepath.Join(t.TempDir(), "dashboard.log"))
	require.NoError(t, err)
	defer ws.Close()

	logger := NewLogger("debug", ws)
	logger.Debug("page rendered")
	require.NoError(t, ws.Sync())

	content, err := os.ReadFile(ws.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "page rendered")
}
