package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает zap логгер: json для production, цветной console для debug и local окружения
func New(level, env string) (*zap.Logger, error) {
	zapLevel := parseLevel(level, zapcore.InfoLevel)

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if zapLevel == zapcore.DebugLevel || env == "local" {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build(zap.Fields(zap.String("service", "transport-catalogue")))
}

// NewStderr - логгер для CLI: stdout занят ответами на запросы
func NewStderr(level string) (*zap.Logger, error) {
	zapLevel := parseLevel(level, zapcore.WarnLevel)

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

// parseLevel разбирает уровень логирования. Пустая строка для zap означает info,
// поэтому ее, как и нераспознанное значение, заменяем на def.
func parseLevel(level string, def zapcore.Level) zapcore.Level {
	if level == "" {
		return def
	}
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return def
	}
	return zapLevel
}
