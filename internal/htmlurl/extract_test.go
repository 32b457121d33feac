package htmlurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `
<html>
<body>
  <a href="/users/123">profile</a>
  <img src="/static/logo.png" srcset="/static/logo@2x.png 2x, /static/logo@1x.png 1x">
  <form action="/login" formaction="/login/submit"></form>
  <object data="/embed/player.swf"></object>
  <video poster="/thumbs/a.jpg"></video>
  <div style="background-image:url(x)" background="/bg/tile.png"></div>
  <span data-url="/api/v1/widgets"></span>
  <span data-label="not a url"></span>
</body>
</html>`

func TestGoqueryBackend_ExtractsAllAttributeKinds(t *testing.T) {
	got := Extract(sample, GoqueryBackend{})
	assert.Contains(t, got, "/users/123")
	assert.Contains(t, got, "/static/logo@2x.png")
	assert.Contains(t, got, "/static/logo@1x.png")
	assert.Contains(t, got, "/login")
	assert.Contains(t, got, "/login/submit")
	assert.Contains(t, got, "/embed/player.swf")
	assert.Contains(t, got, "/thumbs/a.jpg")
	assert.Contains(t, got, "/bg/tile.png")
	assert.Contains(t, got, "/api/v1/widgets")
	assert.NotContains(t, got, "not a url")
}

func TestTokenizerBackend_ExtractsAllAttributeKinds(t *testing.T) {
	got := Extract(sample, TokenizerBackend{})
	assert.Contains(t, got, "/users/123")
	assert.Contains(t, got, "/static/logo@2x.png")
	assert.Contains(t, got, "/login")
	assert.Contains(t, got, "/embed/player.swf")
	assert.Contains(t, got, "/api/v1/widgets")
	assert.NotContains(t, got, "not a url")
}

func TestExtract_DeduplicatesAcrossTags(t *testing.T) {
	got := Extract(`<a href="/x">1</a><a href="/x">2</a>`, GoqueryBackend{})
	assert.Equal(t, []string{"/x"}, got)
}

func TestExtract_NonHTMLFragmentYieldsNothing(t *testing.T) {
	assert.Nil(t, Extract(`const x = "/api/users";`, GoqueryBackend{}))
}

func TestNew_SelectsBackendByName(t *testing.T) {
	assert.IsType(t, GoqueryBackend{}, New("goquery"))
	assert.IsType(t, TokenizerBackend{}, New("tokenizer"))
	assert.IsType(t, GoqueryBackend{}, New("unknown"))
}

func TestIsURLLike(t *testing.T) {
	assert.True(t, IsURLLike("/api/users"))
	assert.True(t, IsURLLike("https://example.com"))
	assert.False(t, IsURLLike("some-widget-id"))
}
