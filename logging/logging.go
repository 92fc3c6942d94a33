// Package logging builds the zap logger used for debug output.
// The terminal belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logFile = "reversi-local/debug.log"

// DefaultPath returns the debug log location under the XDG state directory, creating parent directories.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// New returns a JSON logger appending to path. With debug set, debug-level entries are kept.
func New(path string, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
