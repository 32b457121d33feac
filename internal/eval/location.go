package eval

import (
	"fmt"

	"github.com/corvidscan/jsurlx/internal/ast"
)

// isLocationRoot reports whether n is the object half of a member access
// rooted at window.location or bare location — `window.location.origin`,
// `location.href`, and so on.
func isLocationRoot(n *ast.Node) bool {
	if n == nil {
		return false
	}
	if n.Type() == "identifier" && n.Content() == "location" {
		return true
	}
	if n.Type() != "member_expression" {
		return false
	}
	obj := n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")
	if obj == nil || prop == nil {
		return false
	}
	return obj.Type() == "identifier" && obj.Content() == "window" && prop.Content() == "location"
}

// locationDefault returns the well-known default value for a
// window.location property, per §4.3.
func locationDefault(property, placeholder string) (Item, bool) {
	switch property {
	case "origin":
		return Item{Text: fmt.Sprintf("https://%s", placeholder)}, true
	case "host", "hostname":
		return Item{Text: placeholder}, true
	case "protocol":
		return Item{Text: "https:"}, true
	case "pathname":
		return Item{Text: fmt.Sprintf("/%s", placeholder)}, true
	case "href":
		return Item{Text: fmt.Sprintf("https://%s/", placeholder)}, true
	case "search", "hash", "port":
		return Item{Text: ""}, true
	default:
		return Item{}, false
	}
}
