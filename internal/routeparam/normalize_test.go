package routeparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ColonParam(t *testing.T) {
	assert.Equal(t, "/users/{id}/profile", Normalize("/users/:id/profile"))
}

func TestNormalize_ColonParamAtStart(t *testing.T) {
	assert.Equal(t, "{id}/profile", Normalize(":id/profile"))
}

func TestNormalize_BracketParam(t *testing.T) {
	assert.Equal(t, "/api/{VERSION}/users", Normalize("/api/[VERSION]/users"))
}

func TestNormalize_Mixed(t *testing.T) {
	assert.Equal(t, "/api/{VERSION}/users/{id}", Normalize("/api/[VERSION]/users/:id"))
}

func TestNormalize_NoParams(t *testing.T) {
	assert.Equal(t, "/api/v2/users", Normalize("/api/v2/users"))
}
