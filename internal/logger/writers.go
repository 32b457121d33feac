package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// WriterStrategy builds an io.Writer for a given underlying sink,
// formatting records according to a specific LogFormat.
type WriterStrategy interface {
	CreateWriter(sink io.Writer) io.Writer
}

// JSONWriterStrategy writes one JSON object per record - the zerolog default.
type JSONWriterStrategy struct{}

// CreateWriter returns the sink unchanged; zerolog.New already emits JSON.
func (s *JSONWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return sink
}

// ConsoleWriterStrategy wraps the sink in zerolog's human-readable console writer.
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter returns a zerolog.ConsoleWriter over sink.
func (s *ConsoleWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        sink,
		NoColor:    s.NoColor,
		TimeFormat: time.RFC3339,
	}
}

// TextWriterStrategy is like ConsoleWriterStrategy but always plain; the
// factory uses it for the "text" format on both console and file output.
type TextWriterStrategy struct{}

// CreateWriter returns a colorless zerolog.ConsoleWriter over sink.
func (s *TextWriterStrategy) CreateWriter(sink io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        sink,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
}
