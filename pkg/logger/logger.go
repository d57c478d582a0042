// Package logger is a small printf-style facade over zap.
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/penwern/curate-museum-crosswalk/pkg/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = newSugar(zapcore.InfoLevel)
)

func newSugar(level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Sugar()
}

// Initialize replaces the global logger with one at the given level.
// Unknown levels fall back to info.
func Initialize(level string) {
	lvl := zapcore.InfoLevel
	valid := utils.ValidateLogLevel(level)
	if valid {
		if parsed, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
			lvl = parsed
		}
	}
	mu.Lock()
	log = newSugar(lvl)
	mu.Unlock()
	if !valid {
		Warn("Unknown log level %q, using info", level)
	}
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(format string, args ...any) { current().Debugf(format, args...) }

func Info(format string, args ...any) { current().Infof(format, args...) }

func Warn(format string, args ...any) { current().Warnf(format, args...) }

func Error(format string, args ...any) { current().Errorf(format, args...) }

// Fatal logs and exits the process.
func Fatal(format string, args ...any) { current().Fatalf(format, args...) }

// Sync flushes buffered entries.
func Sync() { _ = current().Sync() }
