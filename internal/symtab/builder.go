package symtab

import (
	"strings"

	"github.com/corvidscan/jsurlx/internal/ast"
)

// Build walks root once, recording every variable binding, object shape,
// and property mutation it sees, scope by scope, and returns the resulting
// Table. policy controls whether a re-assignment to an existing symbol
// merges with or overrides its prior value set.
func Build(root *ast.Node, policy Policy) *Table {
	t := newTable(policy)
	t.recordSpan(root.StartByte(), root.EndByte(), t.Root)
	b := &builder{table: t}
	b.hoistBlock(root, t.Root)
	b.walkStatements(root, t.Root)
	return t
}

type builder struct {
	table *Table
}

// hoistBlock pre-registers every function declaration and var-declared
// name reachable from n without crossing a nested function boundary, per
// the hoisting rules in §3: function declarations are visible throughout
// their enclosing function/program scope, and var names climb to the
// nearest function/program scope.
func (b *builder) hoistBlock(n *ast.Node, scopeID int) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "function_declaration":
		name := n.ChildByFieldName("name")
		if name != nil {
			sym := b.table.declare(scopeID, name.Content())
			sym.Unresolved = true
		}
		return // don't descend into the function body here
	case "function", "arrow_function", "function_expression":
		return // nested function: its own var/function hoists belong to its own scope
	case "variable_declaration":
		b.hoistVarDeclaration(n, scopeID)
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		b.hoistBlock(n.Child(i), scopeID)
	}
}

func (b *builder) hoistVarDeclaration(n *ast.Node, scopeID int) {
	target := b.table.nearestHoistTarget(scopeID)
	for _, child := range n.NamedChildren() {
		if child.Type() != "variable_declarator" {
			continue
		}
		name := child.ChildByFieldName("name")
		if name == nil || name.Type() != "identifier" {
			continue
		}
		b.table.declare(target, name.Content())
	}
}

// walkStatements processes n's children (or n itself, for a single
// statement) in scopeID, descending into nested constructs and creating
// child scopes as needed.
func (b *builder) walkStatements(n *ast.Node, scopeID int) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "program", "statement_block":
		for i := 0; i < n.NamedChildCount(); i++ {
			b.walkStatement(n.NamedChild(i), scopeID)
		}
	default:
		b.walkStatement(n, scopeID)
	}
}

func (b *builder) walkStatement(n *ast.Node, scopeID int) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "lexical_declaration", "variable_declaration":
		b.walkDeclaration(n, scopeID)

	case "expression_statement":
		for _, c := range n.NamedChildren() {
			b.walkExpressionForEffect(c, scopeID)
		}

	case "function_declaration":
		b.walkFunction(n, scopeID)

	case "if_statement":
		b.walkExpressionForEffect(n.ChildByFieldName("condition"), scopeID)
		b.walkStatementInChildScope(n.ChildByFieldName("consequence"), scopeID)
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			b.walkStatementInChildScope(alt, scopeID)
		}

	case "for_statement", "for_in_statement", "while_statement", "do_statement":
		child := b.table.newScope(scopeID, Block)
		b.table.recordSpan(n.StartByte(), n.EndByte(), child)
		for i := 0; i < n.NamedChildCount(); i++ {
			b.walkStatement(n.NamedChild(i), child)
		}

	case "try_statement", "catch_clause", "finally_clause":
		for i := 0; i < n.NamedChildCount(); i++ {
			b.walkCatchAware(n.NamedChild(i), scopeID)
		}

	case "statement_block":
		child := b.table.newScope(scopeID, Block)
		b.table.recordSpan(n.StartByte(), n.EndByte(), child)
		b.hoistBlock(n, child)
		b.walkStatements(n, child)

	case "return_statement":
		for _, c := range n.NamedChildren() {
			b.walkExpressionForEffect(c, scopeID)
		}

	default:
		// Expression statements wrapped unusually, or unhandled statement
		// kinds: still walk children for effect in case they contain
		// assignments or calls worth recording.
		for i := 0; i < n.NamedChildCount(); i++ {
			b.walkExpressionForEffect(n.NamedChild(i), scopeID)
		}
	}
}

func (b *builder) walkCatchAware(n *ast.Node, scopeID int) {
	if n.Type() != "catch_clause" {
		b.walkStatement(n, scopeID)
		return
	}
	child := b.table.newScope(scopeID, Catch)
	b.table.recordSpan(n.StartByte(), n.EndByte(), child)
	if param := n.ChildByFieldName("parameter"); param != nil && param.Type() == "identifier" {
		sym := b.table.declare(child, param.Content())
		sym.Unresolved = true
	}
	body := n.ChildByFieldName("body")
	b.hoistBlock(body, child)
	b.walkStatements(body, child)
}

// walkStatementInChildScope handles an if/for/while body that may or may
// not be a statement_block (JS permits a single statement without braces).
func (b *builder) walkStatementInChildScope(n *ast.Node, scopeID int) {
	if n == nil {
		return
	}
	if n.Type() == "statement_block" {
		b.walkStatement(n, scopeID)
		return
	}
	child := b.table.newScope(scopeID, Block)
	b.table.recordSpan(n.StartByte(), n.EndByte(), child)
	b.walkStatement(n, child)
}

func (b *builder) walkDeclaration(n *ast.Node, scopeID int) {
	isVar := n.Type() == "variable_declaration"
	target := scopeID
	if isVar {
		target = b.table.nearestHoistTarget(scopeID)
	}
	for _, child := range n.NamedChildren() {
		if child.Type() != "variable_declarator" {
			continue
		}
		name := child.ChildByFieldName("name")
		value := child.ChildByFieldName("value")
		if name == nil || name.Type() != "identifier" {
			continue
		}

		sym := b.table.declare(target, name.Content())
		if value == nil {
			continue
		}

		sym.addInit(value, b.table.policy)
		if value.Type() == "identifier" && !sym.AliasSemantic {
			sym.AliasName = value.Content()
		}
		b.recordShapeIfObject(sym, value)
		b.walkExpressionForEffect(value, scopeID)
	}
}

func (b *builder) walkFunction(n *ast.Node, scopeID int) {
	child := b.table.newScope(scopeID, Function)
	b.table.recordSpan(n.StartByte(), n.EndByte(), child)
	b.bindParameters(n.ChildByFieldName("parameters"), child)

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	if body.Type() == "statement_block" {
		b.hoistBlock(body, child)
		b.walkStatements(body, child)
		return
	}
	// Arrow function with an expression body.
	b.walkExpressionForEffect(body, child)
}

func (b *builder) bindParameters(params *ast.Node, scopeID int) {
	if params == nil {
		return
	}
	for _, p := range params.NamedChildren() {
		switch p.Type() {
		case "identifier":
			sym := b.table.declare(scopeID, p.Content())
			sym.Unresolved = true
		case "assignment_pattern":
			// default parameter value: `function f(a = "x")`
			left := p.ChildByFieldName("left")
			if left != nil && left.Type() == "identifier" {
				sym := b.table.declare(scopeID, left.Content())
				right := p.ChildByFieldName("right")
				if right != nil {
					sym.addInit(right, b.table.policy)
				} else {
					sym.Unresolved = true
				}
			}
		case "rest_pattern":
			inner := p.NamedChild(0)
			if inner != nil && inner.Type() == "identifier" {
				sym := b.table.declare(scopeID, inner.Content())
				sym.Unresolved = true
			}
		default:
			// Destructuring patterns: bind whatever identifiers appear,
			// unresolved, since the builder does not model destructuring
			// shapes.
			ast.Walk(p, 0, func(id *ast.Node) {
				if id.Type() == "identifier" {
					sym := b.table.declare(scopeID, id.Content())
					sym.Unresolved = true
				}
			})
		}
	}
}

// walkExpressionForEffect descends into an expression purely to discover
// assignments, property mutations, and nested functions worth recording;
// it never itself produces a value (that's C3's job).
func (b *builder) walkExpressionForEffect(n *ast.Node, scopeID int) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "assignment_expression":
		b.walkAssignment(n, scopeID)

	case "arrow_function", "function", "function_expression":
		b.walkFunction(n, scopeID)

	case "object":
		b.buildObjectShape(n, scopeID)

	case "call_expression":
		fn := n.ChildByFieldName("function")
		args := n.ChildByFieldName("arguments")
		b.walkExpressionForEffect(fn, scopeID)
		if args != nil {
			for _, a := range args.NamedChildren() {
				b.walkExpressionForEffect(a, scopeID)
			}
		}
		b.applyAppendSetAlias(fn, args, scopeID)

	case "new_expression":
		b.walkNewExpression(n, scopeID)

	case "binary_expression", "ternary_expression":
		b.walkExpressionForEffect(n.ChildByFieldName("left"), scopeID)
		b.walkExpressionForEffect(n.ChildByFieldName("right"), scopeID)
		b.walkExpressionForEffect(n.ChildByFieldName("condition"), scopeID)
		b.walkExpressionForEffect(n.ChildByFieldName("consequence"), scopeID)
		b.walkExpressionForEffect(n.ChildByFieldName("alternative"), scopeID)

	case "template_string":
		for _, part := range n.TemplateParts() {
			if part.IsSubstitution {
				b.walkExpressionForEffect(part.Expr, scopeID)
			}
		}

	case "sequence_expression":
		for _, c := range n.NamedChildren() {
			b.walkExpressionForEffect(c, scopeID)
		}

	case "parenthesized_expression", "unary_expression", "return_statement":
		for _, c := range n.NamedChildren() {
			b.walkExpressionForEffect(c, scopeID)
		}

	default:
		for _, c := range n.NamedChildren() {
			b.walkExpressionForEffect(c, scopeID)
		}
	}
}

func (b *builder) walkAssignment(n *ast.Node, scopeID int) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	b.walkExpressionForEffect(right, scopeID)

	switch left.Type() {
	case "identifier":
		sym := b.table.Lookup(scopeID, left.Content())
		if sym == nil {
			sym = b.table.declare(b.table.nearestHoistTarget(scopeID), left.Content())
		}
		sym.addInit(right, b.table.policy)
		if !sym.AliasSemantic {
			if right.Type() == "identifier" {
				sym.AliasName = right.Content()
			} else {
				sym.AliasName = ""
			}
		}
		b.recordShapeIfObject(sym, right)

	case "member_expression", "subscript_expression":
		b.walkPropertyAssignment(left, right, scopeID)
	}
}

// walkPropertyAssignment updates the Object Shape of the symbol the
// property-access chain is rooted at, e.g. `a.b.c = "x"` updates a's
// shape at path b.c.
func (b *builder) walkPropertyAssignment(left, right *ast.Node, scopeID int) {
	root, path, ok := b.propertyPath(left, scopeID)
	if !ok || root == nil {
		return
	}
	if root.Shape == nil {
		root.Shape = NewObjectShape()
	}
	shape := root.Shape
	for i, key := range path {
		if i == len(path)-1 {
			if key == "" {
				shape.SetDynamic(right, b.table.policy)
			} else {
				shape.Set(key, right, b.table.policy)
			}
			continue
		}
		next := shape.Get(key)
		if next == nil || next.Shape == nil {
			nested := NewObjectShape()
			shape.SetShape(key, nested)
			shape = nested
			continue
		}
		shape = next.Shape
	}
}

// propertyPath walks a member/subscript access chain down to its root
// identifier, returning the root symbol and the chain of property names
// from outermost object to the final property ("" for a non-literal
// computed key).
func (b *builder) propertyPath(n *ast.Node, scopeID int) (*Symbol, []string, bool) {
	var path []string
	cur := n
	for {
		switch cur.Type() {
		case "member_expression":
			prop := cur.ChildByFieldName("property")
			path = append([]string{propName(prop)}, path...)
			cur = cur.ChildByFieldName("object")
		case "subscript_expression":
			idx := cur.ChildByFieldName("index")
			key := ""
			if idx != nil && idx.IsStringy() {
				key = idx.RawString()
			}
			path = append([]string{key}, path...)
			cur = cur.ChildByFieldName("object")
		case "identifier":
			sym := b.table.Lookup(scopeID, cur.Content())
			if sym == nil {
				sym = b.table.declare(b.table.nearestHoistTarget(scopeID), cur.Content())
			}
			return sym, path, true
		default:
			return nil, nil, false
		}
	}
}

func propName(n *ast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "property_identifier", "identifier":
		return n.Content()
	case "string":
		return n.RawString()
	case "computed_property_name":
		inner := n.NamedChild(0)
		if inner != nil && inner.IsStringy() {
			return inner.RawString()
		}
		return ""
	default:
		return ""
	}
}

// recordShapeIfObject builds an Object Shape for sym when value is itself
// an object literal, so later property reads/writes resolve against it.
func (b *builder) recordShapeIfObject(sym *Symbol, value *ast.Node) {
	if value == nil || value.Type() != "object" {
		return
	}
	sym.Shape = b.objectShapeOf(value)
}

// buildObjectShape walks an object literal purely for its nested
// assignment/function side effects (method bodies, computed keys); the
// shape value itself is constructed by objectShapeOf when the literal is
// bound to a symbol. It also records a semantic alias for each bare
// identifier value keyed by its property name (`{ contentId: t }` gives
// t the alias "contentId"), the same enrichment a URLSearchParams/FormData
// key provides.
func (b *builder) buildObjectShape(n *ast.Node, scopeID int) {
	for _, pair := range n.NamedChildren() {
		if pair.Type() != "pair" {
			continue
		}
		key := pair.ChildByFieldName("key")
		value := pair.ChildByFieldName("value")
		b.walkExpressionForEffect(value, scopeID)
		b.applySemanticAlias(propName(key), value, scopeID)
	}
}

// walkNewExpression walks a `new X(...)` call's arguments for effect and,
// when X is URLSearchParams or FormData and the first argument is an
// object literal, applies the same semantic aliasing buildObjectShape
// gives a plain object literal (`new URLSearchParams({ key: t })` gives
// t the alias "key").
func (b *builder) walkNewExpression(n *ast.Node, scopeID int) {
	args := n.ChildByFieldName("arguments")
	if args != nil {
		for _, a := range args.NamedChildren() {
			b.walkExpressionForEffect(a, scopeID)
		}
	}
	ctor := n.ChildByFieldName("constructor")
	if ctor == nil || args == nil || args.NamedChildCount() == 0 {
		return
	}
	switch ctor.Content() {
	case "URLSearchParams", "FormData":
	default:
		return
	}
	if first := args.NamedChild(0); first != nil && first.Type() == "object" {
		b.buildObjectShape(first, scopeID)
	}
}

// applyAppendSetAlias implements the params.append("key", value) /
// params.set("key", value) alias pattern URLSearchParams and FormData
// share, keying the value argument's identifier alias off the string key
// regardless of which object the method is called on.
func (b *builder) applyAppendSetAlias(fn, args *ast.Node, scopeID int) {
	if fn == nil || fn.Type() != "member_expression" || args == nil || args.NamedChildCount() < 2 {
		return
	}
	method := fn.ChildByFieldName("property")
	if method == nil {
		return
	}
	switch method.Content() {
	case "append", "set":
	default:
		return
	}
	key := args.NamedChild(0)
	if key == nil || !key.IsStringy() {
		return
	}
	b.applySemanticAlias(key.RawString(), args.NamedChild(1), scopeID)
}

// applySemanticAlias records key as value's symbol's alias when value is
// a bare identifier in scope, marking it AliasSemantic so a later plain
// `x = y` assignment doesn't clobber it with a less meaningful name.
func (b *builder) applySemanticAlias(key string, value *ast.Node, scopeID int) {
	if key == "" || value == nil || value.Type() != "identifier" {
		return
	}
	sym := b.table.Lookup(scopeID, value.Content())
	if sym == nil {
		return
	}
	sym.AliasName = key
	sym.AliasSemantic = true
}

func (b *builder) objectShapeOf(n *ast.Node) *ObjectShape {
	shape := NewObjectShape()
	for _, pair := range n.NamedChildren() {
		if pair.Type() != "pair" {
			continue
		}
		key := pair.ChildByFieldName("key")
		value := pair.ChildByFieldName("value")
		if value == nil {
			continue
		}
		name := propName(key)
		if name == "" && key != nil && key.Type() != "computed_property_name" {
			// shorthand or unusual key shape; fall back to raw content
			name = strings.TrimSpace(key.Content())
		}
		if value.Type() == "object" {
			shape.SetShape(name, b.objectShapeOf(value))
			continue
		}
		if name == "" {
			shape.SetDynamic(value, Merge)
		} else {
			shape.Set(name, value, Merge)
		}
	}
	return shape
}
