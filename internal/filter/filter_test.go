package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFilter() *Filter {
	return New(Config{Placeholder: "FUZZ"})
}

func TestKeep_RetainsAbsolutePath(t *testing.T) {
	f := newFilter()
	got, ok := f.Keep("/api/users")
	assert.True(t, ok)
	assert.Equal(t, "/api/users", got)
}

func TestKeep_RetainsFullURL(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("https://api.example.com/users")
	assert.True(t, ok)
}

func TestKeep_RetainsBareDomain(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("api.example.com")
	assert.True(t, ok)
}

func TestKeep_RejectsBareScheme(t *testing.T) {
	f := newFilter()
	for _, s := range []string{"https://", "http://", "//", "http:", "ftp://"} {
		_, ok := f.Keep(s)
		assert.Falsef(t, ok, "expected rejection of %q", s)
	}
}

func TestKeep_RejectsMIMEShape(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("application/json")
	assert.False(t, ok)
}

func TestKeep_RejectsDottedIdentifierPath(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("foo.bar.baz")
	assert.False(t, ok)
}

func TestKeep_RejectsW3CNamespace(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("http://www.w3.org/2000/svg")
	assert.False(t, ok)
}

func TestKeep_RejectsGenericTestURL(t *testing.T) {
	f := newFilter()
	for _, s := range []string{"http://localhost", "http://a", "http://b"} {
		_, ok := f.Keep(s)
		assert.Falsef(t, ok, "expected rejection of %q", s)
	}
}

func TestKeep_RejectsPlaceholderOnly(t *testing.T) {
	f := newFilter()
	for _, s := range []string{"FUZZ/FUZZ", "{x}/{y}", "FUZZ"} {
		_, ok := f.Keep(s)
		assert.Falsef(t, ok, "expected rejection of %q", s)
	}
}

func TestKeep_RejectsDateFormatPlaceholder(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("/yyyy/mm/dd")
	assert.False(t, ok)
}

func TestKeep_RejectsTimezoneIdentifier(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("America/New_York")
	assert.False(t, ok)
}

func TestKeep_RejectsNoStructuralSignal(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("just some words")
	assert.False(t, ok)
}

func TestKeep_TrimsUnbalancedTrailingBracket(t *testing.T) {
	f := newFilter()
	got, ok := f.Keep("/api/users)")
	assert.True(t, ok)
	assert.Equal(t, "/api/users", got)
}

func TestKeep_KeepsBalancedTrailingBracket(t *testing.T) {
	f := newFilter()
	got, ok := f.Keep("/api/(users)")
	assert.True(t, ok)
	assert.Equal(t, "/api/(users)", got)
}

func TestKeep_ExtensionAllowlistOverridesWeakStructuralSignal(t *testing.T) {
	f := New(Config{Placeholder: "FUZZ", Extensions: []string{"svelte"}})
	got, ok := f.Keep("component.svelte")
	assert.True(t, ok)
	assert.Equal(t, "component.svelte", got)
}

func TestKeep_RejectsDataURIScheme(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("data:text/plain;base64,aGVsbG8=")
	assert.False(t, ok)
}

func TestKeep_RejectsJavascriptScheme(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("javascript:alert(1)")
	assert.False(t, ok)
}

func TestKeep_RejectsTelScheme(t *testing.T) {
	f := newFilter()
	_, ok := f.Keep("tel:+1-555-0100")
	assert.False(t, ok)
}

func TestKeep_ConsolidatesAdjacentPlaceholders(t *testing.T) {
	f := newFilter()
	got, ok := f.Keep("/spaces/FUZZFUZZ/profile")
	assert.True(t, ok)
	assert.Equal(t, "/spaces/FUZZ/profile", got)
}

func TestStripCommentDelimiter_LineComment(t *testing.T) {
	got, ok := StripCommentDelimiter("// /api/legacy/users")
	assert.True(t, ok)
	assert.Equal(t, "/api/legacy/users", got)
}

func TestStripCommentDelimiter_BlockComment(t *testing.T) {
	got, ok := StripCommentDelimiter("/* /api/legacy/users */")
	assert.True(t, ok)
	assert.Equal(t, "/api/legacy/users", got)
}

func TestStripCommentDelimiter_KeepsProtocolRelativeURL(t *testing.T) {
	got, ok := StripCommentDelimiter("// //cdn.example.com/app.js")
	assert.True(t, ok)
	assert.Equal(t, "//cdn.example.com/app.js", got)
}

func TestStripCommentDelimiter_EmptyAfterStripping(t *testing.T) {
	_, ok := StripCommentDelimiter("//")
	assert.False(t, ok)
}
