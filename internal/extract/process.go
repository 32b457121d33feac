package extract

import (
	"github.com/google/uuid"

	jsctx "github.com/corvidscan/jsurlx/internal/context"
	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/config"
	"github.com/corvidscan/jsurlx/internal/eval"
	"github.com/corvidscan/jsurlx/internal/filter"
	"github.com/corvidscan/jsurlx/internal/htmlurl"
	"github.com/corvidscan/jsurlx/internal/models"
	"github.com/corvidscan/jsurlx/internal/symtab"
)

// Result is the outcome of running the full pipeline over one Source Unit.
type Result struct {
	// UnitID correlates this run's log lines across a batch, the way the
	// teacher correlates a scan's log lines by session ID.
	UnitID     string
	Candidates []models.Candidate
}

// Process runs C1 (parse) through C8 (context) over source using cfg and
// ctxBindings, returning the deduplicated candidates the driver discovered.
func Process(source []byte, cfg *config.Config, ctxBindings jsctx.Bindings) Result {
	result := Result{UnitID: uuid.NewString()}

	policy := symtab.Merge
	if cfg.Extraction.MergePolicy == "override" {
		policy = symtab.Override
	}

	degraded := cfg.Extraction.SkipSymbols || int64(len(source)) > cfg.Extraction.MaxFileSize
	ctxPolicy := jsctx.Policy(cfg.Context.Policy)

	var unit *ast.SourceUnit
	var table *symtab.Table

	if ctxPolicy == jsctx.Only {
		// C2 is never run; every lookup resolves from context alone.
		unit = ast.Parse(source)
		table = jsctx.OnlyTable(ctxBindings)
		degraded = false
	} else {
		unit = ast.Parse(source)
		if degraded {
			table = symtab.NewTable(policy)
		} else {
			table = symtab.Build(unit.Root, policy)
		}
		jsctx.Apply(table, ctxBindings, ctxPolicy)
	}

	evalCfg := eval.DefaultConfig()
	evalCfg.Placeholder = cfg.Extraction.Placeholder
	evalCfg.MaxDepth = cfg.Extraction.MaxRecursionDepth
	evalCfg.MaxFanOut = cfg.Extraction.MaxFanOut
	evalCfg.SkipAliases = cfg.Extraction.SkipAliases
	evalCfg.Degraded = degraded
	evalCfg.LocationOverrides = ctxBindings.LocationOverrides

	ev := eval.New(table, evalCfg)
	html := htmlurl.New(cfg.HTML.Parser)
	f := filter.New(filter.Config{Placeholder: cfg.Extraction.Placeholder, Extensions: cfg.Filter.Extensions})

	driver := New(table, ev, html, f, Config{
		MaxNodes:          cfg.Extraction.MaxNodes,
		IncludeTemplates:  cfg.Extraction.IncludeTemplates,
		IncludeErrorNodes: cfg.Extraction.IncludeErrorNodes,
	})

	result.Candidates = driver.Run(unit.Root)
	return result
}
