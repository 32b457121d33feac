// Command jsurlx is a thin batch-mode CLI around the extraction engine:
// it reads a list of JavaScript/HTML file paths (as arguments, or one per
// line on stdin, matching jsluice's own main.go), runs the full pipeline
// over each, and prints discovered candidates as JSON lines.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	flag "github.com/spf13/pflag"

	"github.com/corvidscan/jsurlx/internal/config"
	jsctx "github.com/corvidscan/jsurlx/internal/context"
	"github.com/corvidscan/jsurlx/internal/extract"
	"github.com/corvidscan/jsurlx/internal/logger"
	"github.com/corvidscan/jsurlx/internal/models"
	"github.com/corvidscan/jsurlx/internal/resource"
	"github.com/rs/zerolog"
)

// candidateLine is what gets marshaled to stdout, one JSON object per line.
type candidateLine struct {
	UnitID   string            `json:"unit_id"`
	Filename string            `json:"filename,omitempty"`
	Text     string            `json:"text"`
	Template bool              `json:"template,omitempty"`
	Source   models.SourceKind `json:"source"`
}

func main() {
	flags := parseFlags()

	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsurlx: loading config: %v\n", err)
		os.Exit(1)
	}

	if flags.ContextPolicy != "" {
		cfg.Context.Policy = flags.ContextPolicy
	}
	if flags.IncludeTemplate {
		cfg.Extraction.IncludeTemplates = true
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "jsurlx: %v\n", err)
		os.Exit(1)
	}

	zLogger, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsurlx: initializing logger: %v\n", err)
		os.Exit(1)
	}

	ctxBindings, err := resolveContextBindings(flags, cfg)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("failed to resolve context bindings")
	}

	mon := resource.New(cfg.Resource, zLogger)
	mon.Start()
	defer mon.Stop()

	var input io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		input = strings.NewReader(strings.Join(args, "\n"))
	}

	jobs := make(chan string)
	lines := make(chan candidateLine)

	var wg sync.WaitGroup
	for i := 0; i < flags.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for filename := range jobs {
				processFile(filename, cfg, ctxBindings, mon, flags.IncludeFilename, zLogger, lines)
			}
		}()
	}

	go func() {
		sc := bufio.NewScanner(input)
		for sc.Scan() {
			name := strings.TrimSpace(sc.Text())
			if name == "" {
				continue
			}
			jobs <- name
		}
		close(jobs)
		wg.Wait()
		close(lines)
	}()

	enc := json.NewEncoder(os.Stdout)
	for l := range lines {
		if err := enc.Encode(l); err != nil {
			zLogger.Error().Err(err).Msg("failed to encode candidate")
		}
	}
}

func processFile(filename string, cfg *config.Config, ctxBindings jsctx.Bindings, mon *resource.Monitor, includeFilename bool, zLogger zerolog.Logger, lines chan<- candidateLine) {
	source, err := os.ReadFile(filename)
	if err != nil {
		zLogger.Error().Err(err).Str("filename", filename).Msg("failed to read source file")
		return
	}

	var result extract.Result
	wrapErr := mon.WrapUnit(filename, func() error {
		result = extract.Process(source, cfg, ctxBindings)
		return nil
	})
	if wrapErr != nil {
		zLogger.Error().Err(wrapErr).Str("filename", filename).Msg("extraction pass failed")
		return
	}

	zLogger.Debug().
		Str("filename", filename).
		Str("unit_id", result.UnitID).
		Int("candidate_count", len(result.Candidates)).
		Msg("processed source unit")

	for _, c := range result.Candidates {
		line := candidateLine{
			UnitID:   result.UnitID,
			Text:     c.Text,
			Template: c.Template,
			Source:   c.Source,
		}
		if includeFilename {
			line.Filename = filename
		}
		lines <- line
	}
}
