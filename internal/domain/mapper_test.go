package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundByID(t *testing.T) {
	err := NotFoundByID("city", 42)
	assert.Equal(t, NotFound, err.Kind)
	assert.Equal(t, "city with id 42 not found", err.Error())
}

func TestNotFoundByName(t *testing.T) {
	err := NotFoundByName("poi", "Le Bon Accueil")
	assert.Equal(t, NotFound, err.Kind)
	assert.Equal(t, `poi with name "Le Bon Accueil" not found`, err.Error())
}

func TestLocationTaken(t *testing.T) {
	err := LocationTaken("48.8588443", "2.2943506")
	assert.Equal(t, UnprocessableEntity, err.Kind)
	assert.Equal(t, "location (48.8588443, 2.2943506) already exists", err.Error())
}

func TestReferenceMissing(t *testing.T) {
	err := ReferenceMissing("tag", 7)
	assert.Equal(t, UnprocessableEntity, err.Kind)
	assert.Equal(t, "tag with id 7 does not exist", err.Error())
}

func TestDuplicateMessage(t *testing.T) {
	tests := []struct {
		column   string
		expected string
	}{
		{"name", "city name already exists"},
		{"address", "city address already exists"},
		{"picture", "city picture already exists"},
		{"username", "city username already exists"},
		{"email", "city email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			err, ok := DuplicateMessage("city", tt.column)
			require.True(t, ok)
			assert.Equal(t, UnprocessableEntity, err.Kind)
			assert.Equal(t, tt.expected, err.Error())
		})
	}

	_, ok := DuplicateMessage("city", "shoe_size")
	assert.False(t, ok)
}

func TestReferenceMessage(t *testing.T) {
	err, ok := ReferenceMessage("city_id")
	require.True(t, ok)
	assert.Equal(t, UnprocessableEntity, err.Kind)
	assert.Equal(t, "city does not exist", err.Error())

	_, ok = ReferenceMessage("unknown_id")
	assert.False(t, ok)
}
