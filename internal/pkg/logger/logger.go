package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New - создание логгера. Для уровня debug включается цветной консольный вывод,
// в остальных случаях пишется JSON в stdout.
func New(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if zapLevel == zapcore.DebugLevel {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}

// ForCommand - логгер для CLI-команд с полем command
func ForCommand(level, command string) (*zap.Logger, error) {
	log, err := New(level)
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("command", command)), nil
}
