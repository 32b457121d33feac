package eval

import (
	"regexp"
	"strings"

	"github.com/corvidscan/jsurlx/internal/ast"
)

// knownMethods is the closed catalogue of string/array methods C3
// understands; anything else degrades to the placeholder per §9.
var knownMethods = map[string]bool{
	"concat":  true,
	"join":    true,
	"replace": true,
}

func (e *Evaluator) evalMethodCall(n *ast.Node, ctx *evalCtx) Set {
	fn := n.ChildByFieldName("function")
	if fn == nil || fn.Type() != "member_expression" {
		return e.placeholderOnly()
	}
	receiver := fn.ChildByFieldName("object")
	method := fn.ChildByFieldName("property")
	if receiver == nil || method == nil {
		return e.placeholderOnly()
	}
	if !knownMethods[method.Content()] {
		return e.placeholderOnly()
	}

	args := n.ChildByFieldName("arguments")
	argNodes := args.NamedChildren()

	switch method.Content() {
	case "concat":
		result := e.evalExpr(receiver, ctx)
		for _, a := range argNodes {
			result = cartesian(result, e.evalExpr(a, ctx), e.cfg.MaxFanOut, e.cfg.Placeholder)
		}
		return result

	case "join":
		elems, ok := e.arrayElements(receiver, ctx)
		if !ok {
			return e.placeholderOnly()
		}
		var sep Set
		if len(argNodes) > 0 {
			sep = e.evalExpr(argNodes[0], ctx)
		} else {
			sep = Single(",", false)
		}
		return e.evalJoin(elems, sep)

	case "replace":
		if len(argNodes) < 2 {
			return e.evalExpr(receiver, ctx)
		}
		receiverSet := e.evalExpr(receiver, ctx)
		return e.evalReplace(receiverSet, argNodes[0], argNodes[1], ctx)
	}

	return e.placeholderOnly()
}

// arrayElements resolves n to the per-element evaluation sets of an array
// literal, following one level of identifier indirection to the literal
// the symbol was declared or last assigned from.
func (e *Evaluator) arrayElements(n *ast.Node, ctx *evalCtx) ([]Set, bool) {
	switch n.Type() {
	case "array":
		elems := n.NamedChildren()
		out := make([]Set, 0, len(elems))
		for _, el := range elems {
			out = append(out, e.evalExpr(el, ctx))
		}
		return out, true
	case "identifier":
		sym := e.table.Lookup(ctx.scopeID, n.Content())
		if sym == nil {
			return nil, false
		}
		for _, init := range sym.Inits {
			if init.Type() == "array" {
				return e.arrayElements(init, ctx)
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// evalJoin implements `<array>.join(sep)`: every choice of separator
// produces a joined string for every combination of element alternatives;
// an element whose evaluation yields no items contributes the placeholder
// for its position instead of dropping the whole join (an unresolved
// identifier element already yields its own "{name}" token item).
func (e *Evaluator) evalJoin(elemSets []Set, sepSet Set) Set {
	sepItems := sepSet.Items()
	if len(sepItems) == 0 {
		sepItems = []Item{{Text: ","}}
	}

	result := NewSet()
	for _, sep := range sepItems {
		combos := []string{""}
		templated := sep.Template
		first := true
		for _, elemSet := range elemSets {
			items := elemSet.Items()
			if len(items) == 0 {
				items = []Item{{Text: e.cfg.Placeholder}}
			}
			next := make([]string, 0, len(combos)*len(items))
			for _, c := range combos {
				for _, it := range items {
					if it.Template {
						templated = true
					}
					piece := it.Text
					if !first {
						piece = sep.Text + piece
					}
					next = append(next, c+piece)
				}
			}
			combos = next
			first = false
			if len(combos) > e.cfg.MaxFanOut {
				return collapse(e.cfg.Placeholder)
			}
		}
		for _, c := range combos {
			result.Add(Item{Text: c, Template: templated})
		}
		if result.Len() > e.cfg.MaxFanOut {
			return collapse(e.cfg.Placeholder)
		}
	}
	return result
}

// evalReplace implements `<receiver>.replace(pattern, replacement)`. Per
// the open question documented in SPEC_FULL, replacement text is always
// treated as a literal — no $1-style back-reference expansion.
func (e *Evaluator) evalReplace(receiver Set, patternNode, replacementNode *ast.Node, ctx *evalCtx) Set {
	replacementSet := e.evalExpr(replacementNode, ctx)
	replacement, ok := singleLiteral(replacementSet)
	if !ok {
		return receiver
	}

	if patternNode.Type() == "regex" {
		return e.evalReplaceRegex(receiver, patternNode, replacement)
	}

	patternSet := e.evalExpr(patternNode, ctx)
	pattern, ok := singleLiteral(patternSet)
	if !ok {
		return receiver
	}

	out := NewSet()
	for _, it := range receiver.Items() {
		out.Add(Item{Text: strings.Replace(it.Text, pattern, replacement, 1), Template: it.Template})
	}
	return out
}

func (e *Evaluator) evalReplaceRegex(receiver Set, patternNode *ast.Node, replacement string) Set {
	pattern := patternNode.ChildByFieldName("pattern")
	flagsNode := patternNode.ChildByFieldName("flags")
	if pattern == nil {
		return receiver
	}
	flags := ""
	if flagsNode != nil {
		flags = flagsNode.Content()
	}
	global := strings.Contains(flags, "g")

	re, err := regexp.Compile(pattern.Content())
	if err != nil {
		return receiver
	}

	out := NewSet()
	for _, it := range receiver.Items() {
		var result string
		if global {
			result = re.ReplaceAllLiteralString(it.Text, replacement)
		} else {
			result = replaceFirstLiteral(re, it.Text, replacement)
		}
		out.Add(Item{Text: result, Template: it.Template})
	}
	return out
}

// replaceFirstLiteral replaces only the first regex match, treating
// replacement as literal text (no back-reference expansion).
func replaceFirstLiteral(re *regexp.Regexp, s, replacement string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}
