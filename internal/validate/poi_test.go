package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/domain"
)

func validPoiInput() PoiInput {
	return PoiInput{
		Name:      "Tour Eiffel",
		Address:   "Champ de Mars, 5 Av. Anatole France",
		Latitude:  "48.8588443",
		Longitude: "2.2943506",
		City:      ref(1),
		Type:      ref(2),
		Tags:      refs(3, 4),
	}
}

func TestPoiForCreation(t *testing.T) {
	poi, err := PoiForCreation(validPoiInput())
	require.NoError(t, err)
	assert.Equal(t, "Tour Eiffel", poi.Name)
	require.NotNil(t, poi.City)
	assert.Equal(t, int64(1), poi.City.ID)
	require.NotNil(t, poi.Type)
	assert.Equal(t, int64(2), poi.Type.ID)
	require.Len(t, poi.Tags, 2)
	assert.Equal(t, int64(3), poi.Tags[0].ID)
	assert.Equal(t, int64(4), poi.Tags[1].ID)
}

func TestPoiForCreation_IDNotAllowed(t *testing.T) {
	in := validPoiInput()
	in.ID = int32Ptr(9)

	_, err := PoiForCreation(in)
	requireDomainError(t, err, domain.BadRequest, "poi id not required")
}

func TestPoiForCreation_CityRequired(t *testing.T) {
	in := validPoiInput()
	in.City = nil

	_, err := PoiForCreation(in)
	requireDomainError(t, err, domain.BadRequest, "poi city required")
}

func TestPoiForCreation_TypeRequired(t *testing.T) {
	in := validPoiInput()
	in.Type = nil

	_, err := PoiForCreation(in)
	requireDomainError(t, err, domain.BadRequest, "poi type required")
}

func TestPoiForCreation_TagsOptional(t *testing.T) {
	in := validPoiInput()
	in.Tags = nil

	poi, err := PoiForCreation(in)
	require.NoError(t, err)
	assert.Empty(t, poi.Tags)
}

func TestPoiForCreation_BadTagReferenceAbortsArray(t *testing.T) {
	in := validPoiInput()
	in.Tags = refs(3, 0)

	_, err := PoiForCreation(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "tag id must be at least 1")
}

func TestPoiForCreation_AddressRequired(t *testing.T) {
	in := validPoiInput()
	in.Address = "  "

	_, err := PoiForCreation(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "address too short")
}

func TestPoiForUpdate(t *testing.T) {
	in := validPoiInput()
	in.ID = int32Ptr(12)

	poi, err := PoiForUpdate(in)
	require.NoError(t, err)
	assert.Equal(t, int64(12), poi.ID)
}

func TestPoiForUpdate_IDRequired(t *testing.T) {
	_, err := PoiForUpdate(validPoiInput())
	requireDomainError(t, err, domain.BadRequest, "poi id required")
}

func TestPoiForUpdate_IDRuleRunsFirst(t *testing.T) {
	in := validPoiInput()
	in.ID = int32Ptr(-1)
	in.Name = ""

	_, err := PoiForUpdate(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "poi id must be at least 1")
}
