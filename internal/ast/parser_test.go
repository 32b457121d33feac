package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleProgram(t *testing.T) {
	unit := Parse([]byte(`const base = "/api";`))
	require.NotNil(t, unit.Root)
	assert.Equal(t, "program", unit.Root.Type())
	assert.False(t, unit.Root.HasError())
}

func TestParse_HTMLFallsBackToInlineScripts(t *testing.T) {
	html := []byte(`<html><body><script>const u = "/api/users";</script></body></html>`)
	unit := Parse(html)
	require.NotNil(t, unit.Root)

	var sawString bool
	Walk(unit.Root, 0, func(n *Node) {
		if n.Type() == "string" && n.RawString() == "/api/users" {
			sawString = true
		}
	})
	assert.True(t, sawString)
}

func TestNode_RawStringDecodesEscapes(t *testing.T) {
	unit := Parse([]byte(`const x = "a\x3db";`))

	var found *Node
	Walk(unit.Root, 0, func(n *Node) {
		if n.Type() == "string" {
			found = n
		}
	})
	require.NotNil(t, found)
	assert.Equal(t, "a=b", found.RawString())
}

func TestNode_TemplateParts(t *testing.T) {
	unit := Parse([]byte("const u = `/users/${id}/profile`;"))

	var tmpl *Node
	Walk(unit.Root, 0, func(n *Node) {
		if n.Type() == "template_string" {
			tmpl = n
		}
	})
	require.NotNil(t, tmpl)

	parts := tmpl.TemplateParts()
	require.Len(t, parts, 3)
	assert.Equal(t, "/users/", parts[0].Text)
	assert.True(t, parts[1].IsSubstitution)
	assert.Equal(t, "id", parts[1].Expr.Content())
	assert.Equal(t, "/profile", parts[2].Text)
}

func TestNode_CollapsedString(t *testing.T) {
	unit := Parse([]byte("const u = `/users/${id}/profile`;"))

	var tmpl *Node
	Walk(unit.Root, 0, func(n *Node) {
		if n.Type() == "template_string" {
			tmpl = n
		}
	})
	require.NotNil(t, tmpl)
	assert.Equal(t, "/users/FUZZ/profile", tmpl.CollapsedString())
}

func TestWalk_RespectsMaxNodes(t *testing.T) {
	unit := Parse([]byte(`const a = 1; const b = 2; const c = 3;`))
	visited := Walk(unit.Root, 3, func(n *Node) {})
	assert.Equal(t, 3, visited)
}
