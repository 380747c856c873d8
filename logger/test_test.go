package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()

	assert.NotNil(t, logger)
	assert.Len(t, logger.Logs, 0)
	assert.Nil(t, logger.metadata)
}

func TestTestLoggerMethods(t *testing.T) {
	logger := NewTestLogger()

	logger.Trace("Trace message", 1)
	logger.Debug("Debug message", 2)
	logger.Info("Info message", 3)
	logger.Warn("Warn message", 4)
	logger.Error("Error message", 5)

	assert.Len(t, logger.Logs, 5)

	assert.Equal(t, "TRACE", logger.Logs[0].Severity)
	assert.Equal(t, "Trace message", logger.Logs[0].Message)
	assert.Equal(t, []interface{}{1}, logger.Logs[0].Arguments)

	assert.Equal(t, "WARNING", logger.Logs[3].Severity)
	assert.Equal(t, "Warn message", logger.Logs[3].Message)

	assert.Equal(t, "ERROR", logger.Logs[4].Severity)
	assert.Equal(t, []interface{}{5}, logger.Logs[4].Arguments)
}

func TestTestLoggerWith(t *testing.T) {
	logger := NewTestLogger()

	child := logger.With(map[string]interface{}{"key": "value"}).WithPrefix("[x]")
	child.Info("message")

	assert.Equal(t, "value", logger.metadata["key"])
	assert.Len(t, logger.Logs, 1)
	assert.True(t, logger.IsLevelEnabled(LevelTrace))
}
