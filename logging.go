package airtablemock

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger   *zap.Logger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	logger, _ = cfg.Build()
}

// SetLogger replaces the package logger and returns the previous one. Tests
// install an observer here to assert on the warnings the mock logs, for
// example the one about an ignored view.
func SetLogger(l *zap.Logger) *zap.Logger {
	previous := logger
	logger = l
	return previous
}

func setLogLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, keeping the current one", zap.String("level", level))
		return
	}
	logLevel.SetLevel(parsed)
}
