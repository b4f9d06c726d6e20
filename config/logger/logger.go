package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init replaces the global logger. Development mode writes human readable
// console output, otherwise JSON.
func Init(level string, development bool) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger. It is a no-op logger until Init is called.
func L() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
