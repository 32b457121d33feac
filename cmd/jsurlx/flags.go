package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// AppFlags holds the thin CLI surface, kept deliberately small since the
// command-line tool is out of the core's scope — everything meaningful
// lives in the library, the way jsluice's own main.go is a few hundred
// lines around an Analyzer doing all the work.
type AppFlags struct {
	ConfigFile      string
	ContextPairs    []string
	ContextFile     string
	ContextPolicy   string
	IncludeTemplate bool
	IncludeFilename bool
	Concurrency     int
}

func parseFlags() AppFlags {
	var f AppFlags

	flag.StringVarP(&f.ConfigFile, "config", "c", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	flag.StringArrayVar(&f.ContextPairs, "context", nil, "A name=value context binding; repeatable.")
	flag.StringVar(&f.ContextFile, "context-file", "", "Path to a JSON/YAML file of name -> value context bindings.")
	flag.StringVar(&f.ContextPolicy, "context-policy", "", "Context policy: merge, override, or only. Overrides the config file.")
	flag.BoolVar(&f.IncludeTemplate, "include-templates", false, "Emit template-form candidates (e.g. \"/users/{id}\") alongside their placeholder form.")
	flag.BoolVar(&f.IncludeFilename, "include-filename", false, "Add the source filename to each emitted JSON line.")
	flag.IntVarP(&f.Concurrency, "concurrency", "j", 1, "Number of Source Units to process concurrently.")

	flag.Parse()

	if f.Concurrency < 1 {
		fmt.Fprintln(os.Stderr, "jsurlx: --concurrency must be at least 1")
		os.Exit(1)
	}

	return f
}
