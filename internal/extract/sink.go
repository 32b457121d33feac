package extract

import (
	"strings"

	"github.com/corvidscan/jsurlx/internal/ast"
)

// sinkValue returns the expression node worth evaluating as a URL
// candidate when n is a recognized URL-consuming sink site: a call to a
// known network/navigation function, an assignment to a known
// location-ish property, or a setAttribute("href", …) call. It returns
// nil when n isn't a sink.
func sinkValue(n *ast.Node) *ast.Node {
	switch n.Type() {
	case "call_expression":
		return callSinkValue(n)
	case "assignment_expression":
		return assignmentSinkValue(n)
	}
	return nil
}

var sinkCallNames = map[string]bool{
	"fetch":      true,
	"window.open": true,
	"open":       true,
	"$.get":      true,
	"$.post":     true,
	"$.ajax":     true,
}

func callSinkValue(n *ast.Node) *ast.Node {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return nil
	}
	name := fn.Content()
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}

	if sinkCallNames[name] || strings.HasSuffix(name, ".open") || strings.HasSuffix(name, ".location.replace") {
		return args.NamedChild(0)
	}

	if strings.HasSuffix(name, ".setAttribute") {
		if args.NamedChildCount() < 2 {
			return nil
		}
		attr := args.NamedChild(0)
		if attr == nil || !attr.IsStringy() {
			return nil
		}
		switch strings.ToLower(attr.RawString()) {
		case "href", "src", "action", "formaction":
			return args.NamedChild(1)
		}
		return nil
	}

	return nil
}

var interestingAssignmentNames = map[string]bool{
	"location":     true,
	"this.url":     true,
	"this._url":    true,
	"this.baseUrl": true,
}

func assignmentSinkValue(n *ast.Node) *ast.Node {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil {
		return nil
	}
	name := left.Content()
	if interestingAssignmentNames[name] ||
		strings.HasSuffix(name, ".href") ||
		strings.HasSuffix(name, ".src") ||
		strings.HasSuffix(name, ".action") ||
		strings.HasSuffix(name, ".formaction") ||
		strings.HasSuffix(name, ".location") {
		return right
	}
	return nil
}
