package logger

import (
	"github.com/corvidscan/jsurlx/internal/config"
	"github.com/rs/zerolog"
)

// ConfigConverter converts config.LogConfig into the logger package's own
// LoggerConfig, applying fallbacks for unset or invalid fields.
type ConfigConverter struct {
	levelParser  *LogLevelParser
	formatParser *LogFormatParser
}

// NewConfigConverter creates a new config converter.
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{
		levelParser:  NewLogLevelParser(),
		formatParser: NewLogFormatParser(),
	}
}

// ConvertConfig converts application config to logger config.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := cc.levelParser.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return LoggerConfig{
		Level:         level,
		Format:        cc.formatParser.ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     cc.withDefault(cfg.MaxLogSizeMB, 100),
		MaxBackups:    cc.withDefault(cfg.MaxLogBackups, 3),
		UseSubdirs:    true,
	}, nil
}

func (cc *ConfigConverter) withDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
