package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates writers based on the configured LogFormat.
type WriterFactory struct {
	strategies map[LogFormat]WriterStrategy
}

// NewWriterFactory creates a new writer factory with the default strategies.
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		strategies: map[LogFormat]WriterStrategy{
			FormatJSON:    &JSONWriterStrategy{},
			FormatConsole: &ConsoleWriterStrategy{NoColor: false},
			FormatText:    &TextWriterStrategy{},
		},
	}
}

// CreateConsoleWriter returns a writer over os.Stderr for the given format.
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	strategy, ok := wf.strategies[format]
	if !ok {
		strategy = &ConsoleWriterStrategy{NoColor: false}
	}
	return strategy.CreateWriter(os.Stderr)
}

// CreateFileWriter creates a rotating file writer, organizing log files
// under a per-unit subdirectory when configured to do so.
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) io.Writer {
	finalPath := wf.buildLogPath(cfg)

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		finalPath = cfg.FilePath
	}

	rotator := &lumberjack.Logger{
		Filename:   finalPath,
		MaxSize:    cfg.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: cfg.MaxBackups,
	}

	strategy, ok := wf.strategies[cfg.Format]
	if !ok {
		strategy = &JSONWriterStrategy{}
	}

	if cfg.Format == FormatConsole {
		return (&ConsoleWriterStrategy{NoColor: true}).CreateWriter(rotator)
	}

	return strategy.CreateWriter(rotator)
}

func (wf *WriterFactory) buildLogPath(cfg LoggerConfig) string {
	if !cfg.UseSubdirs || cfg.UnitID == "" {
		return cfg.FilePath
	}

	baseDir := filepath.Dir(cfg.FilePath)
	fileName := filepath.Base(cfg.FilePath)
	subDir := filepath.Join(baseDir, "units", cfg.UnitID)

	return filepath.Join(subDir, fileName)
}
