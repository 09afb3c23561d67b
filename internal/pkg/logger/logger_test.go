package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/transport-catalogue/internal/pkg/logger"
)

func TestNew(t *testing.T) {
	log, err := logger.New("warn", "production")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	// неизвестный уровень -> info
	log, err = logger.New("verbose", "production")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewStderr(t *testing.T) {
	log, err := logger.NewStderr("")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewStderr_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		infoOn  bool
		warnOn  bool
		debugOn bool
	}{
		{name: "empty falls back to warn", level: "", infoOn: false, warnOn: true},
		{name: "unknown falls back to warn", level: "loud", infoOn: false, warnOn: true},
		{name: "explicit info", level: "info", infoOn: true, warnOn: true},
		{name: "explicit debug", level: "debug", infoOn: true, warnOn: true, debugOn: true},
		{name: "explicit error", level: "error", infoOn: false, warnOn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewStderr(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.infoOn, log.Core().Enabled(zapcore.InfoLevel))
			assert.Equal(t, tt.warnOn, log.Core().Enabled(zapcore.WarnLevel))
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_EmptyLevelIsInfo(t *testing.T) {
	log, err := logger.New("", "production")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
