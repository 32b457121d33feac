// Package extract implements C7: the extraction driver that orchestrates
// the AST walk, invokes C3 on expression roots, applies C4/C5/C6, and
// deduplicates results.
package extract

import (
	"strings"

	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/eval"
	"github.com/corvidscan/jsurlx/internal/filter"
	"github.com/corvidscan/jsurlx/internal/htmlurl"
	"github.com/corvidscan/jsurlx/internal/models"
	"github.com/corvidscan/jsurlx/internal/routeparam"
	"github.com/corvidscan/jsurlx/internal/symtab"
)

// Config controls the driver's traversal and output shaping.
type Config struct {
	MaxNodes          int
	IncludeTemplates  bool
	IncludeErrorNodes bool
}

// Driver ties the evaluator, HTML backend, and filter together over a
// single Source Unit.
type Driver struct {
	table   *symtab.Table
	eval    *eval.Evaluator
	html    htmlurl.Backend
	filter  *filter.Filter
	cfg     Config
	visited map[string]struct{}
	order   []models.Candidate
	nodes   int
}

// New builds a Driver. table is either the Table C2 built from the Source
// Unit, or one produced by context.OnlyTable under the "only" context
// policy.
func New(table *symtab.Table, ev *eval.Evaluator, html htmlurl.Backend, f *filter.Filter, cfg Config) *Driver {
	return &Driver{table: table, eval: ev, html: html, filter: f, cfg: cfg, visited: map[string]struct{}{}}
}

// Run walks root and returns the deduplicated candidates discovered,
// order of first discovery preserved.
func (d *Driver) Run(root *ast.Node) []models.Candidate {
	d.walk(root)
	return d.order
}

func (d *Driver) walk(n *ast.Node) {
	if n == nil {
		return
	}
	if d.cfg.MaxNodes > 0 && d.nodes >= d.cfg.MaxNodes {
		return
	}
	d.nodes++

	if n.Type() == "comment" {
		if text, ok := filter.StripCommentDelimiter(n.Content()); ok {
			d.emit(text, models.SourceComment, false)
		}
		return
	}

	if n.IsError() && !d.cfg.IncludeErrorNodes {
		// Candidates inside an ERROR subtree are retained only when
		// include-error is set; otherwise the subtree is skipped. With it
		// set, the ERROR node falls through to the walk below, which visits
		// its children as if they were siblings (§7).
		return
	}

	if value := sinkValue(n); value != nil {
		d.processRoot(value, models.SourceMember)
		for _, c := range n.NamedChildren() {
			d.walk(c)
		}
		return
	}

	if isGenericRoot(n) {
		d.processRoot(n, sourceKindOf(n))
		return
	}

	if arg := catchAllCallArg(n); arg != nil {
		d.processRoot(arg, models.SourceMethodCall)
	}

	for _, c := range n.NamedChildren() {
		d.walk(c)
	}
}

// catchAllCallArg implements SUPPLEMENTED FEATURES #5: beyond the named
// sink catalogue, any call expression's first argument is still worth
// evaluating, the same generous catch-all jsluice applies to every
// call_expression it sees. For a literal argument, MaybeURL is run first
// against its raw text to skip the cost (and noise) of evaluating and
// filtering obvious non-URL literals such as log messages or regexes;
// identifier/member arguments carry no cheap text to pre-check, so they're
// passed straight through to evaluation and left to C6 to filter.
func catchAllCallArg(n *ast.Node) *ast.Node {
	if n.Type() != "call_expression" {
		return nil
	}
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}
	arg := args.NamedChild(0)
	switch {
	case arg.IsStringy():
		if !looksLikeMaybeURL(arg.CollapsedString()) {
			return nil
		}
		return arg
	case arg.Type() == "identifier", arg.Type() == "member_expression":
		return arg
	default:
		return nil
	}
}

func sourceKindOf(n *ast.Node) models.SourceKind {
	switch n.Type() {
	case "string":
		return models.SourceLiteral
	case "template_string":
		return models.SourceTemplate
	case "binary_expression":
		return models.SourceConcatenation
	case "call_expression":
		return models.SourceMethodCall
	default:
		return models.SourceMember
	}
}

func (d *Driver) processRoot(n *ast.Node, kind models.SourceKind) {
	if n.Type() == "string" && looksLikeProse(n.RawString()) {
		for _, u := range proseEmbeddedURLs(n.RawString()) {
			d.emit(u, models.SourceLiteral, false)
		}
		return
	}

	scopeID := d.table.ScopeAt(n.StartByte(), n.EndByte())
	set := d.eval.Evaluate(n, scopeID)

	for _, item := range set.Items() {
		if item.Template && !d.cfg.IncludeTemplates {
			continue
		}
		d.emit(item.Text, kind, item.Template)
	}
}

func (d *Driver) emit(text string, kind models.SourceKind, template bool) {
	normalized := routeparam.Normalize(text)

	if looksLikeHTMLFragment(normalized) {
		for _, attr := range htmlurl.Extract(normalized, d.html) {
			d.emitFiltered(routeparam.Normalize(attr), models.SourceHTMLEmbedded, false)
		}
		return
	}

	d.emitFiltered(normalized, kind, template)
}

func (d *Driver) emitFiltered(text string, kind models.SourceKind, template bool) {
	kept, ok := d.filter.Keep(text)
	if !ok {
		return
	}
	if _, dup := d.visited[kept]; dup {
		return
	}
	d.visited[kept] = struct{}{}
	d.order = append(d.order, models.Candidate{
		Text:     kept,
		Template: template,
		Source:   kind,
	})
}

// looksLikeHTMLFragment mirrors §4.5's trigger for the HTML-embedded
// extractor: trimmed text starting with '<' or containing a DOCTYPE
// declaration.
func looksLikeHTMLFragment(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "<") {
		return true
	}
	return strings.Contains(strings.ToUpper(trimmed), "<!DOCTYPE")
}
