package extract

import "github.com/corvidscan/jsurlx/internal/ast"

// isGenericRoot reports whether n is itself an expression kind the spec
// names as capable of "producing a string at its syntactic position":
// string/template literals, binary `+` expressions with a stringy-looking
// operand, and method calls from C3's known catalogue (concat/join/replace).
func isGenericRoot(n *ast.Node) bool {
	switch n.Type() {
	case "string", "template_string":
		return true
	case "binary_expression":
		op := n.ChildByFieldName("operator")
		if op == nil {
			return false
		}
		switch op.Content() {
		case "+":
			return looksStringy(n.ChildByFieldName("left")) || looksStringy(n.ChildByFieldName("right"))
		case "||", "&&":
			return looksStringy(n.ChildByFieldName("right"))
		}
		return false
	case "call_expression":
		fn := n.ChildByFieldName("function")
		if fn == nil || fn.Type() != "member_expression" {
			return false
		}
		method := fn.ChildByFieldName("property")
		if method == nil {
			return false
		}
		switch method.Content() {
		case "concat", "join", "replace":
			return true
		}
		return false
	}
	return false
}

// looksStringy is a shallow, non-recursive heuristic used only to decide
// whether a binary expression is a candidate root at all — it never
// drives evaluation itself, so a false negative here just means a
// concatenation that's entirely identifiers is skipped as a root (its
// operands may still surface independently via sink matching elsewhere).
func looksStringy(n *ast.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "string", "template_string", "binary_expression", "call_expression", "member_expression":
		return true
	}
	return false
}
