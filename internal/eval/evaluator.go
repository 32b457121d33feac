package eval

import (
	"fmt"
	"strings"

	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/symtab"
)

// Evaluator reduces an expression node to a Set of candidate strings,
// looking up identifiers and object shapes in a symtab.Table.
type Evaluator struct {
	table *symtab.Table
	cfg   Config
}

// New builds an Evaluator over table using cfg's guards and placeholder.
func New(table *symtab.Table, cfg Config) *Evaluator {
	return &Evaluator{table: table, cfg: cfg}
}

// evalCtx threads recursion depth and a cycle-protection set through a
// single top-level Evaluate call.
type evalCtx struct {
	scopeID int
	depth   int
	visited map[string]bool
}

func newEvalCtx(scopeID int) *evalCtx {
	return &evalCtx{scopeID: scopeID, visited: make(map[string]bool)}
}

func (c *evalCtx) child(scopeID int) *evalCtx {
	return &evalCtx{scopeID: scopeID, depth: c.depth + 1, visited: c.visited}
}

// Evaluate is the C3 entry point: it reduces n, evaluated in scopeID, to a
// set of String Values.
func (e *Evaluator) Evaluate(n *ast.Node, scopeID int) Set {
	return e.evalExpr(n, newEvalCtx(scopeID))
}

// unresolvedToken is the value an unresolved identifier or member access
// evaluates to: a single "{name}" template token (§4.3).
func (e *Evaluator) unresolvedToken(name string) Set {
	if name == "" {
		name = "value"
	}
	return Single(fmt.Sprintf("{%s}", name), true)
}

// placeholderOnly is the value an unresolved call, unsupported operator,
// or degraded-mode lookup evaluates to: the bare configured placeholder.
func (e *Evaluator) placeholderOnly() Set {
	return Single(e.cfg.Placeholder, false)
}

// evalExpr is the full C3 dispatch table.
func (e *Evaluator) evalExpr(n *ast.Node, ctx *evalCtx) Set {
	if n == nil {
		return NewSet()
	}
	if e.cfg.MaxDepth > 0 && ctx.depth > e.cfg.MaxDepth {
		return e.placeholderOnly()
	}

	switch n.Type() {
	case "string":
		return Single(n.RawString(), false)

	case "template_string":
		return e.evalTemplate(n, ctx)

	case "number":
		return Single(n.Content(), false)

	case "true", "false":
		return Single(n.Content(), false)

	case "identifier":
		return e.evalIdentifier(n, ctx)

	case "binary_expression":
		return e.evalBinary(n, ctx)

	case "member_expression", "subscript_expression":
		return e.evalMember(n, ctx)

	case "call_expression":
		return e.evalCall(n, ctx)

	case "ternary_expression":
		left := e.evalExpr(n.ChildByFieldName("consequence"), ctx)
		right := e.evalExpr(n.ChildByFieldName("alternative"), ctx)
		return union(left, right, e.cfg.MaxFanOut, e.cfg.Placeholder)

	case "assignment_expression":
		return e.evalExpr(n.ChildByFieldName("right"), ctx)

	case "unary_expression":
		return e.evalExpr(n.ChildByFieldName("argument"), ctx)

	case "sequence_expression":
		children := n.NamedChildren()
		if len(children) == 0 {
			return e.placeholderOnly()
		}
		return e.evalExpr(children[len(children)-1], ctx)

	case "parenthesized_expression":
		return e.evalExpr(n.NamedChild(0), ctx)

	default:
		return e.placeholderOnly()
	}
}

// evalTemplate implements the template-literal case of §4.3. Every
// substitution contributes its resolved value(s), plus a "{name}" template
// token and a placeholder-substituted form — include-templates (applied
// downstream, in the extraction driver) then decides whether the
// template-token form survives to output, while the resolved and
// placeholder forms always do.
func (e *Evaluator) evalTemplate(n *ast.Node, ctx *evalCtx) Set {
	parts := n.TemplateParts()
	result := Single("", false)
	for _, part := range parts {
		if !part.IsSubstitution {
			result = cartesian(result, Single(part.Text, false), e.cfg.MaxFanOut, e.cfg.Placeholder)
			continue
		}

		sub := NewSet()
		sub.AddAll(e.evalExpr(part.Expr, ctx))
		name := e.templateTokenName(part.Expr, ctx)
		sub.Add(Item{Text: fmt.Sprintf("{%s}", name), Template: true})
		sub.Add(Item{Text: e.cfg.Placeholder})

		result = cartesian(result, sub, e.cfg.MaxFanOut, e.cfg.Placeholder)
	}
	return result
}

// templateTokenName picks the identifier name rendered inside a "{name}"
// template token, preferring the alias a variable was last assigned from
// (§4.2's alias policy) unless SkipAliases is set.
func (e *Evaluator) templateTokenName(n *ast.Node, ctx *evalCtx) string {
	if n == nil {
		return "value"
	}
	if n.Type() != "identifier" {
		return strings.TrimSpace(n.Content())
	}
	name := n.Content()
	if e.cfg.SkipAliases {
		return name
	}
	sym := e.table.Lookup(ctx.scopeID, name)
	if sym != nil && sym.AliasName != "" {
		return sym.AliasName
	}
	return name
}

func (e *Evaluator) evalIdentifier(n *ast.Node, ctx *evalCtx) Set {
	name := n.Content()
	if e.cfg.Degraded {
		return e.placeholderOnly()
	}

	key := fmt.Sprintf("%d:%s", ctx.scopeID, name)
	if ctx.visited[key] {
		return e.unresolvedToken(name)
	}

	sym := e.table.Lookup(ctx.scopeID, name)
	if sym == nil || sym.Unresolved {
		return e.unresolvedToken(name)
	}

	result := NewSet()
	for _, v := range sym.ContextValues {
		result.Add(Item{Text: v})
	}
	if sym.ContextOnly {
		if result.Len() == 0 {
			return e.unresolvedToken(name)
		}
		return result
	}

	if len(sym.Inits) == 0 {
		if result.Len() > 0 {
			return result
		}
		return e.unresolvedToken(name)
	}

	childCtx := ctx.child(sym.ScopeID)
	childCtx.visited = markVisited(ctx.visited, key)

	for _, init := range sym.Inits {
		result.AddAll(e.evalExpr(init, childCtx))
	}
	return result
}

func markVisited(visited map[string]bool, key string) map[string]bool {
	out := make(map[string]bool, len(visited)+1)
	for k, v := range visited {
		out[k] = v
	}
	out[key] = true
	return out
}

// evalBinary handles `+` concatenation and the `||`/`&&` fallback forms
// common in sink arguments (`window.GLOBAL_URI || "/default"`,
// `config && config.url`): since the left operand's truthiness can't be
// known statically, both operators are evaluated as "take the right
// side", matching the original extractor's resolve_binary_expression.
func (e *Evaluator) evalBinary(n *ast.Node, ctx *evalCtx) Set {
	op := n.ChildByFieldName("operator")
	if op == nil {
		return e.placeholderOnly()
	}
	switch op.Content() {
	case "+":
		left := e.evalExpr(n.ChildByFieldName("left"), ctx)
		right := e.evalExpr(n.ChildByFieldName("right"), ctx)
		return cartesian(left, right, e.cfg.MaxFanOut, e.cfg.Placeholder)
	case "||", "&&":
		return e.evalExpr(n.ChildByFieldName("right"), ctx)
	default:
		return e.placeholderOnly()
	}
}

func (e *Evaluator) evalCall(n *ast.Node, ctx *evalCtx) Set {
	fn := n.ChildByFieldName("function")
	if fn != nil && fn.Type() == "member_expression" {
		return e.evalMethodCall(n, ctx)
	}
	return e.placeholderOnly()
}

// ref is the intermediate result of resolving a reference expression: it
// is either a string-producing Set, or an Object Shape to index further.
type ref struct {
	shape   *symtab.ObjectShape
	strings Set
	isShape bool
}

func (e *Evaluator) evalMember(n *ast.Node, ctx *evalCtx) Set {
	r := e.resolveRef(n, ctx)
	if r.isShape {
		return e.unresolvedToken(memberPropertyName(n))
	}
	return r.strings
}

func (e *Evaluator) resolveRef(n *ast.Node, ctx *evalCtx) ref {
	if n == nil {
		return ref{strings: e.placeholderOnly()}
	}

	switch n.Type() {
	case "identifier":
		return e.resolveIdentifierRef(n, ctx)

	case "member_expression":
		return e.resolveMemberRef(n, ctx, n.ChildByFieldName("object"), n.ChildByFieldName("property"), false)

	case "subscript_expression":
		return e.resolveMemberRef(n, ctx, n.ChildByFieldName("object"), n.ChildByFieldName("index"), true)

	default:
		return ref{strings: e.evalExpr(n, ctx)}
	}
}

func (e *Evaluator) resolveIdentifierRef(n *ast.Node, ctx *evalCtx) ref {
	if e.cfg.Degraded {
		return ref{strings: e.placeholderOnly()}
	}
	sym := e.table.Lookup(ctx.scopeID, n.Content())
	if sym == nil {
		return ref{strings: e.unresolvedToken(n.Content())}
	}
	if sym.Shape != nil {
		return ref{shape: sym.Shape, isShape: true}
	}
	return ref{strings: e.evalIdentifier(n, ctx)}
}

func (e *Evaluator) resolveMemberRef(n *ast.Node, ctx *evalCtx, object, propertyNode *ast.Node, isSubscript bool) ref {
	// window.location resolves to its defaults table even in degraded mode (§4.7).
	if isLocationRoot(object) {
		name := propName(propertyNode, isSubscript)
		if v, ok := e.cfg.LocationOverrides[name]; ok {
			return ref{strings: Single(v, false)}
		}
		if item, ok := locationDefault(name, e.cfg.Placeholder); ok {
			return ref{strings: Single(item.Text, item.Template)}
		}
		return ref{strings: e.unresolvedToken(name)}
	}

	if e.cfg.Degraded {
		return ref{strings: e.placeholderOnly()}
	}

	objRef := e.resolveRef(object, ctx)
	key := propName(propertyNode, isSubscript)

	if !objRef.isShape {
		return ref{strings: e.unresolvedToken(key)}
	}

	pv := objRef.shape.Get(key)
	if pv == nil {
		pv = objRef.shape.Dynamic
	}
	if pv == nil {
		return ref{strings: e.unresolvedToken(key)}
	}
	if pv.Shape != nil {
		return ref{shape: pv.Shape, isShape: true}
	}
	if len(pv.Inits) == 0 {
		return ref{strings: e.unresolvedToken(key)}
	}

	result := NewSet()
	for _, init := range pv.Inits {
		result.AddAll(e.evalExpr(init, ctx))
	}
	return ref{strings: result}
}

func propName(n *ast.Node, isSubscript bool) string {
	if n == nil {
		return ""
	}
	if isSubscript {
		if n.IsStringy() {
			return n.RawString()
		}
		if n.Type() == "number" {
			return n.Content()
		}
		return ""
	}
	switch n.Type() {
	case "property_identifier", "identifier":
		return n.Content()
	default:
		return n.Content()
	}
}

func memberPropertyName(n *ast.Node) string {
	prop := n.ChildByFieldName("property")
	if prop == nil {
		prop = n.ChildByFieldName("index")
	}
	if prop == nil {
		return "value"
	}
	if prop.IsStringy() {
		return prop.RawString()
	}
	return prop.Content()
}
