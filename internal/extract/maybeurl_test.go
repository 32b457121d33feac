package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeMaybeURL(t *testing.T) {
	assert.True(t, looksLikeMaybeURL("/assets/app.js"))
	assert.True(t, looksLikeMaybeURL("https://api.example.com/v1"))
	assert.True(t, looksLikeMaybeURL("report.pdf"))
	assert.False(t, looksLikeMaybeURL("just a log message"))
	assert.False(t, looksLikeMaybeURL("user.profile.name"))
	assert.False(t, looksLikeMaybeURL("javascript:alert(1)"))
}
