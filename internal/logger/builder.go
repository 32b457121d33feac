package logger

import (
	"errors"
	"io"
	stdlog "log"

	"github.com/corvidscan/jsurlx/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides a fluent interface for assembling a Logger from a
// config.LogConfig, following the same builder/factory split the teacher
// repo uses.
type LoggerBuilder struct {
	config    LoggerConfig
	factory   *WriterFactory
	converter *ConfigConverter
}

// NewLoggerBuilder creates a new logger builder with default configuration.
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:    DefaultLoggerConfig(),
		factory:   NewWriterFactory(),
		converter: NewConfigConverter(),
	}
}

// WithConfig applies a config.LogConfig to the builder.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	loggerConfig, _ := lb.converter.ConvertConfig(cfg)
	lb.config = loggerConfig
	return lb
}

// WithUnitID tags rotated log files with a Source Unit identifier.
func (lb *LoggerBuilder) WithUnitID(unitID string) *LoggerBuilder {
	lb.config.UnitID = unitID
	return lb
}

// Build assembles the zerolog.Logger described by the builder's configuration.
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	writers := lb.createWriters()
	if len(writers) == 0 {
		return nil, errors.New("no output writers configured")
	}

	multi := zerolog.MultiLevelWriter(writers...)
	instance := zerolog.New(multi).Level(lb.config.Level).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(lb.config.Level)
	lb.configureStandardLog(instance)

	return &Logger{zerolog: instance, config: lb.config}, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return errors.New("file path required when file logging enabled")
	}
	if lb.config.MaxSizeMB <= 0 {
		return errors.New("max size must be positive")
	}
	return nil
}

func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}
	if lb.config.EnableFile {
		writers = append(writers, lb.factory.CreateFileWriter(lb.config))
	}

	return writers
}

func (lb *LoggerBuilder) configureStandardLog(logger zerolog.Logger) {
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)
}
