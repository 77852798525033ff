package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/domain"
)

func validTagInput() TagInput {
	return TagInput{
		Name: "romantic",
		Icon: strPtr("https://example.com/heart.svg"),
	}
}

func TestTagForCreation(t *testing.T) {
	tag, err := TagForCreation(validTagInput())
	require.NoError(t, err)
	assert.Equal(t, "romantic", tag.Name)
	assert.Equal(t, "https://example.com/heart.svg", tag.Icon)
}

func TestTagForCreation_IDNotAllowed(t *testing.T) {
	in := validTagInput()
	in.ID = int32Ptr(4)

	_, err := TagForCreation(in)
	requireDomainError(t, err, domain.BadRequest, "tag id not required")
}

func TestTagForCreation_NameRequired(t *testing.T) {
	in := validTagInput()
	in.Name = "  "

	_, err := TagForCreation(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "name too short")
}

func TestTagForCreation_IconOptional(t *testing.T) {
	in := validTagInput()
	in.Icon = nil

	tag, err := TagForCreation(in)
	require.NoError(t, err)
	assert.Empty(t, tag.Icon)
}

func TestTagForCreation_IconTooLong(t *testing.T) {
	in := validTagInput()
	in.Icon = strPtr(strings.Repeat("x", 256))

	_, err := TagForCreation(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "icon too long")
}

func TestTagForUpdate(t *testing.T) {
	in := validTagInput()
	in.ID = int32Ptr(4)

	tag, err := TagForUpdate(in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), tag.ID)
}

func TestTagForUpdate_IDRequired(t *testing.T) {
	_, err := TagForUpdate(validTagInput())
	requireDomainError(t, err, domain.BadRequest, "tag id required")
}

func TestTagForUpdate_IDMustBePositive(t *testing.T) {
	in := validTagInput()
	in.ID = int32Ptr(0)

	_, err := TagForUpdate(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "tag id must be at least 1")
}

func TestTagReferences(t *testing.T) {
	tags, err := TagReferences(refs(3, 4))
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, int64(3), tags[0].ID)

	empty, err := TagReferences(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = TagReferences(refs(3, 0))
	requireDomainError(t, err, domain.UnprocessableEntity, "tag id must be at least 1")
}
