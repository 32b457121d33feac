package main

import (
	"os"

	"github.com/corvidscan/jsurlx/internal/config"
	jsctx "github.com/corvidscan/jsurlx/internal/context"
)

// resolveContextBindings layers the config file's context values, an
// optional --context-file, and individual --context KEY=VALUE flags, in
// that order of increasing precedence.
func resolveContextBindings(flags AppFlags, cfg *config.Config) (jsctx.Bindings, error) {
	bindings, err := jsctx.ParseKeyValue(mapToPairs(cfg.Context.Values))
	if err != nil {
		return jsctx.Bindings{}, err
	}

	if flags.ContextFile != "" {
		data, err := os.ReadFile(flags.ContextFile)
		if err != nil {
			return jsctx.Bindings{}, err
		}
		fileBindings, err := jsctx.ParseFile(flags.ContextFile, data)
		if err != nil {
			return jsctx.Bindings{}, err
		}
		bindings = jsctx.Merge(bindings, fileBindings)
	}

	if len(flags.ContextPairs) > 0 {
		cliBindings, err := jsctx.ParseKeyValue(flags.ContextPairs)
		if err != nil {
			return jsctx.Bindings{}, err
		}
		bindings = jsctx.Merge(bindings, cliBindings)
	}

	return bindings, nil
}

func mapToPairs(m map[string]string) []string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	return pairs
}
