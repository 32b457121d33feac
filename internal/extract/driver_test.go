package extract

import (
	"testing"

	"github.com/corvidscan/jsurlx/internal/ast"
	"github.com/corvidscan/jsurlx/internal/eval"
	"github.com/corvidscan/jsurlx/internal/filter"
	"github.com/corvidscan/jsurlx/internal/htmlurl"
	"github.com/corvidscan/jsurlx/internal/symtab"
	"github.com/stretchr/testify/assert"
)

func newDriver(source string, cfg Config) (*Driver, *ast.SourceUnit) {
	unit := ast.Parse([]byte(source))
	table := symtab.Build(unit.Root, symtab.Merge)
	ev := eval.New(table, eval.DefaultConfig())
	f := filter.New(filter.Config{Placeholder: "FUZZ"})
	return New(table, ev, htmlurl.GoqueryBackend{}, f, cfg), unit
}

func TestDriver_S1_BinaryConcatenation(t *testing.T) {
	d, unit := newDriver(`const base="/api"; const url=base+"/users";`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/users")
}

func TestDriver_S3_WindowLocationOrigin(t *testing.T) {
	d, unit := newDriver(`const u = window.location.origin + "/api/users";`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "https://FUZZ/api/users")
}

func TestDriver_S4_ArrayJoin(t *testing.T) {
	d, unit := newDriver(`const p=["/api","/v2","/users"]; const u=p.join("");`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/v2/users")
}

func TestDriver_S5_ReplaceChain(t *testing.T) {
	d, unit := newDriver(`const t="/api/{env}/{r}"; const u=t.replace("{env}","prod").replace("{r}","users");`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/prod/users")
}

func TestDriver_S6_JunkFiltering(t *testing.T) {
	src := `"application/json"; "https://"; "user.profile.name"; "http://www.w3.org/2000/svg"; "/api/v2/users";`
	d, unit := newDriver(src, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Equal(t, []string{"/api/v2/users"}, got)
}

func TestDriver_RoutParamNormalization(t *testing.T) {
	d, unit := newDriver(`const u = "/users/:id/profile";`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/users/{id}/profile")
}

func TestDriver_DeduplicatesAcrossExpressions(t *testing.T) {
	d, unit := newDriver(`const a = "/api/users"; const b = "/api/users";`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	assert.Len(t, cands, 1)
}

func TestDriver_SinkArgumentIdentifierResolves(t *testing.T) {
	d, unit := newDriver(`const endpoint = "/api/users"; fetch(endpoint);`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/users")
}

func TestDriver_HTMLEmbeddedURLExtraction(t *testing.T) {
	d, unit := newDriver("const h = '<a href=\"/api/widgets\">x</a>';", Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/widgets")
	assert.NotContains(t, got, `<a href="/api/widgets">x</a>`)
}

func TestDriver_CatchAllCallArgumentResolves(t *testing.T) {
	d, unit := newDriver(`loadScript("/assets/app.js");`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/assets/app.js")
}

func TestDriver_CatchAllCallArgumentResolvesIdentifier(t *testing.T) {
	d, unit := newDriver(`const path = "/assets/bundle.js"; loadScript(path);`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/assets/bundle.js")
}

func TestDriver_CatchAllSkipsNonURLShapedArgument(t *testing.T) {
	d, unit := newDriver(`doThing("just a log message");`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	assert.Empty(t, cands)
}

func TestDriver_CommentYieldsCandidateWithDelimiterStripped(t *testing.T) {
	d, unit := newDriver("// /api/legacy/users\nconst a = 1;", Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/legacy/users")
}

func TestDriver_ProtocolRelativeCommentKeepsLeadingSlashes(t *testing.T) {
	d, unit := newDriver("// //cdn.example.com/app.js\nconst a = 1;", Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "//cdn.example.com/app.js")
}

func TestDriver_ProseErrorMessageYieldsOnlyEmbeddedURL(t *testing.T) {
	src := `const msg = "Warning: componentWillMount has been deprecated, see https://reactjs.org/link/unsafe-component-lifecycles for details.";`
	d, unit := newDriver(src, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Equal(t, []string{"https://reactjs.org/link/unsafe-component-lifecycles"}, got)
}

func TestDriver_ProseWithNoEmbeddedURLYieldsNothing(t *testing.T) {
	src := `const msg = "Warning: this component must be one of the supported types, please change your usage accordingly";`
	d, unit := newDriver(src, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	assert.Empty(t, cands)
}

func TestDriver_LogicalOrSinkArgumentFallsBack(t *testing.T) {
	d, unit := newDriver(`fetch(window.GLOBAL_URI || "/api/fallback");`, Config{MaxNodes: 10000})
	cands := d.Run(unit.Root)
	var got []string
	for _, c := range cands {
		got = append(got, c.Text)
	}
	assert.Contains(t, got, "/api/fallback")
}

func TestDriver_MaxNodesBoundsTraversal(t *testing.T) {
	d, unit := newDriver(`const a="/api/one"; const b="/api/two"; const c="/api/three";`, Config{MaxNodes: 1})
	cands := d.Run(unit.Root)
	assert.LessOrEqual(t, len(cands), 1)
}
