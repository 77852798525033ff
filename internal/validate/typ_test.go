package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/domain"
)

func validTypeInput() TypeInput {
	return TypeInput{
		Name:  "Restaurant",
		Logo:  "https://example.com/restaurant.svg",
		Color: "#FF5733",
	}
}

func TestTypeForCreation(t *testing.T) {
	typ, err := TypeForCreation(validTypeInput())
	require.NoError(t, err)
	assert.Equal(t, "Restaurant", typ.Name)
	assert.Equal(t, "#FF5733", typ.Color)
}

func TestTypeForCreation_IDNotAllowed(t *testing.T) {
	in := validTypeInput()
	in.ID = int32Ptr(1)

	_, err := TypeForCreation(in)
	requireDomainError(t, err, domain.BadRequest, "type id not required")
}

func TestTypeForCreation_Color(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FF5733", true},
		{"#abc", true},
		{"#AbCdEf", true},
		{"FF5733", false},
		{"#FF573", false},
		{"#GG5733", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			in := validTypeInput()
			in.Color = tt.color

			_, err := TypeForCreation(in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				requireDomainError(t, err, domain.UnprocessableEntity,
					"color must be a valid hex color")
			}
		})
	}
}

func TestTypeForCreation_LogoTooShort(t *testing.T) {
	in := validTypeInput()
	in.Logo = "ab"

	_, err := TypeForCreation(in)
	requireDomainError(t, err, domain.UnprocessableEntity, "logo too short")
}

func TestTypeForUpdate_IDRequired(t *testing.T) {
	_, err := TypeForUpdate(validTypeInput())
	requireDomainError(t, err, domain.BadRequest, "type id required")
}
