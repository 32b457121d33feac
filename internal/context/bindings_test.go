package context

import (
	"testing"

	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/eval"
	"github.com/corvidscan/jsurlx/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue_SplitsLocationOverrides(t *testing.T) {
	b, err := ParseKeyValue([]string{"t=/api", "window.location.host=example.com"})
	require.NoError(t, err)
	assert.Equal(t, "/api", b.Values["t"])
	assert.Equal(t, "example.com", b.LocationOverrides["host"])
}

func TestParseKeyValue_RejectsMissingEquals(t *testing.T) {
	_, err := ParseKeyValue([]string{"noequals"})
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	b, err := ParseJSON([]byte(`{"t":"/api","window.location.host":"example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "/api", b.Values["t"])
	assert.Equal(t, "example.com", b.LocationOverrides["host"])
}

// TestApply_OverridePolicy exercises S7: a file-derived "t" is overridden
// by a context binding, and the override survives through template
// evaluation.
func TestApply_OverridePolicy(t *testing.T) {
	unit := ast.Parse([]byte("const t=\"/v2\"; const u=`${t}/users`;"))
	table := symtab.Build(unit.Root, symtab.Merge)

	b, err := ParseKeyValue([]string{"t=/api"})
	require.NoError(t, err)
	Apply(table, b, Override)

	var init *ast.Node
	ast.Walk(unit.Root, 0, func(n *ast.Node) {
		if n.Type() == "variable_declarator" {
			if v := n.ChildByFieldName("value"); v != nil {
				init = v
			}
		}
	})
	require.NotNil(t, init)

	ev := eval.New(table, eval.DefaultConfig())
	set := ev.Evaluate(init, table.Root)

	var texts []string
	for _, it := range set.Items() {
		texts = append(texts, it.Text)
	}
	assert.Contains(t, texts, "/api/users")
	assert.NotContains(t, texts, "/v2/users")
}

func TestApply_LocationOverrideWiresIntoEvalConfig(t *testing.T) {
	unit := ast.Parse([]byte(`const u = window.location.host + "/api";`))
	table := symtab.Build(unit.Root, symtab.Merge)

	b, err := ParseKeyValue([]string{"window.location.host=example.com"})
	require.NoError(t, err)

	cfg := eval.DefaultConfig()
	cfg.LocationOverrides = b.LocationOverrides
	ev := eval.New(table, cfg)

	var init *ast.Node
	ast.Walk(unit.Root, 0, func(n *ast.Node) {
		if n.Type() == "variable_declarator" {
			if v := n.ChildByFieldName("value"); v != nil {
				init = v
			}
		}
	})
	require.NotNil(t, init)

	set := ev.Evaluate(init, table.Root)
	var texts []string
	for _, it := range set.Items() {
		texts = append(texts, it.Text)
	}
	assert.Contains(t, texts, "example.com/api")
}
