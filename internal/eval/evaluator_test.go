package eval

import (
	"testing"

	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastDeclaratorInit finds the initializer expression of the last
// top-level variable declarator in source, for evaluating "the final
// expression of interest" the way each spec scenario phrases it.
func lastDeclaratorInit(t *testing.T, source string) (*ast.Node, *symtab.Table) {
	t.Helper()
	unit := ast.Parse([]byte(source))
	table := symtab.Build(unit.Root, symtab.Merge)

	var last *ast.Node
	ast.Walk(unit.Root, 0, func(n *ast.Node) {
		if n.Type() == "variable_declarator" {
			if v := n.ChildByFieldName("value"); v != nil {
				last = v
			}
		}
	})
	require.NotNil(t, last)
	return last, table
}

func TestEvaluate_S1_BinaryConcatenation(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const base="/api"; const url=base+"/users";`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/api/users")
}

func TestEvaluate_S2_TemplateSubstitution(t *testing.T) {
	init, table := lastDeclaratorInit(t, "const id=\"123\"; const u=`/users/${id}/profile`;")
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/users/123/profile")
	assert.Contains(t, texts, "/users/{id}/profile")
	assert.Contains(t, texts, "/users/FUZZ/profile")
}

func TestEvaluate_S3_WindowLocationOrigin(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const u = window.location.origin + "/api/users";`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "https://FUZZ/api/users")
}

func TestEvaluate_S4_ArrayJoin(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const p=["/api","/v2","/users"]; const u=p.join("");`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/api/v2/users")
}

func TestEvaluate_S5_ReplaceChain(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const t="/api/{env}/{r}"; const u=t.replace("{env}","prod").replace("{r}","users");`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/api/prod/users")
}

func TestEvaluate_CyclicAliasDoesNotRecurseForever(t *testing.T) {
	init, table := lastDeclaratorInit(t, `let a = "/x"; a = b; let b = a;`)
	ev := New(table, DefaultConfig())

	assert.NotPanics(t, func() {
		ev.Evaluate(init, table.Root)
	})
}

func TestEvaluate_LogicalOrFallsBackToRightOperand(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const u = window.GLOBAL_URI || "/default";`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/default")
}

func TestEvaluate_LogicalAndTakesRightOperand(t *testing.T) {
	init, table := lastDeclaratorInit(t, `const base = "/api/users"; const u = config && base;`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "/api/users")
}

func TestEvaluate_UnresolvedIdentifierYieldsTemplateToken(t *testing.T) {
	init, table := lastDeclaratorInit(t, `function f(x) { return x; } const u = f;`)
	ev := New(table, DefaultConfig())

	set := ev.Evaluate(init, table.Root)
	texts := textsOf(set)
	assert.Contains(t, texts, "{f}")
}

func textsOf(s Set) []string {
	var out []string
	for _, it := range s.Items() {
		out = append(out, it.Text)
	}
	return out
}
