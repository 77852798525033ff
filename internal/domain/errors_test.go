package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_StatusCode(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
		class  string
	}{
		{BadRequest, 400, ClientError},
		{Unauthorized, 401, ClientError},
		{Forbidden, 403, ClientError},
		{NotFound, 404, ClientError},
		{UnprocessableEntity, 422, ClientError},
		{Internal, 500, ServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.StatusCode())
		assert.Equal(t, tt.class, tt.kind.Class())
	}
}

func TestNewError_Decoration(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		message  string
		expected string
	}{
		{
			name:     "bad request gets the generic banner",
			kind:     BadRequest,
			message:  "city id not required",
			expected: "🤯 Oops, something went wrong: city id not required",
		},
		{
			name:     "internal gets the generic banner",
			kind:     Internal,
			message:  "cities could not be loaded",
			expected: "🤯 Oops, something went wrong: cities could not be loaded",
		},
		{
			name:     "unauthorized gets the lock prefix",
			kind:     Unauthorized,
			message:  "incorrect credentials",
			expected: "🔒 incorrect credentials",
		},
		{
			name:     "forbidden gets the lock prefix",
			kind:     Forbidden,
			message:  "insufficient permissions",
			expected: "🔒 insufficient permissions",
		},
		{
			name:     "not found is kept as-is",
			kind:     NotFound,
			message:  "city with id 3 not found",
			expected: "city with id 3 not found",
		},
		{
			name:     "unprocessable is kept as-is",
			kind:     UnprocessableEntity,
			message:  "name too short",
			expected: "name too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.kind, tt.message)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestNewError_Deterministic(t *testing.T) {
	a := NewError(BadRequest, "poi id required")
	b := NewError(BadRequest, "poi id required")
	assert.Equal(t, a.Error(), b.Error())
}

func TestError_Extensions(t *testing.T) {
	err := NewError(UnprocessableEntity, "name too long")

	ext := err.Extensions()
	require.Len(t, ext, 3)
	assert.Equal(t, 422, ext["statusCode"])
	assert.Equal(t, "CLIENT_ERROR", ext["statusCodeClass"])
	assert.Equal(t, "Unprocessable Entity", ext["statusCodeMessage"])
}

func TestError_Extensions_Internal(t *testing.T) {
	ext := NewError(Internal, "city could not be saved").Extensions()
	assert.Equal(t, 500, ext["statusCode"])
	assert.Equal(t, "SERVER_ERROR", ext["statusCodeClass"])
	assert.Equal(t, "Internal Server Error", ext["statusCodeMessage"])
}
