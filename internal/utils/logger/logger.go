// Package logger provides structured logging for the garden planner engine,
// built on zap with lumberjack-managed file rotation.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/urban-gardening-assistant/planner-engine/pkg/types"
)

// NewLogger builds a zap.Logger configured per the service's environment:
// JSON-only in production/staging, a JSON+console tee in development.
func NewLogger(cfg *types.ServiceConfig) (*zap.Logger, error) {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if cfg.Debug || cfg.Environment == "development" {
		level = zapcore.DebugLevel
	}

	rotator := &lumberjack.Logger{
		Filename:   logFilePath(cfg.ServiceName),
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	jsonCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		level,
	)

	core := jsonCore
	if cfg.Environment == "development" {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			level,
		)
		core = zapcore.NewTee(jsonCore, consoleCore)
	}

	log := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("service", cfg.ServiceName),
			zap.String("version", cfg.Version),
			zap.String("environment", cfg.Environment),
		),
	)

	return log, nil
}

func logFilePath(serviceName string) string {
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		return dir + "/" + serviceName + ".log"
	}
	return "logs/" + serviceName + ".log"
}

// Error logs msg at error level with the given error and fields attached.
func Error(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{zap.Error(err)}, fields...)
	log.Error(msg, allFields...)
}

// Info logs msg at info level with the given fields attached.
func Info(log *zap.Logger, msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

// Debug logs msg at debug level with the given fields attached.
func Debug(log *zap.Logger, msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}
