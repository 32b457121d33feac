// Package logger builds structured zerolog.Logger instances from
// config.LogConfig, the way the teacher repo's internal/logger does:
// a builder assembling a multi-writer from format-specific strategies,
// with rotation via lumberjack for file output.
package logger

import (
	"github.com/corvidscan/jsurlx/internal/config"
	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger together with the configuration used to build it.
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
}

// GetZerolog returns the underlying zerolog instance.
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// New creates a new logger instance from a config.LogConfig.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	built, err := NewLoggerBuilder().WithConfig(cfg).Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return *built.GetZerolog(), nil
}

// NewWithUnitID creates a logger whose rotated file output is organized
// under a subdirectory named after unitID (a Source Unit identifier).
func NewWithUnitID(cfg config.LogConfig, unitID string) (zerolog.Logger, error) {
	built, err := NewLoggerBuilder().WithConfig(cfg).WithUnitID(unitID).Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return *built.GetZerolog(), nil
}
