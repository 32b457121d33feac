package logger

import "github.com/rs/zerolog"

// LoggerConfig holds resolved configuration for logger setup, after a
// config.LogConfig has been converted by ConfigConverter.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int

	// UnitID, when set, organizes rotated log files under a per-unit
	// subdirectory (mirrors the teacher's per-scan log directories).
	UnitID     string
	UseSubdirs bool
}

// LogFormat represents the available log output formats.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns the canonical name for a LogFormat.
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// DefaultLoggerConfig returns sane defaults: console output at info level.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		EnableFile:    false,
		MaxSizeMB:     100,
		MaxBackups:    3,
	}
}
