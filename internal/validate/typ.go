package validate

import "cityguide/internal/domain"

// TypeInput is the raw type payload as deserialized by the transport
// layer.
type TypeInput struct {
	ID    *int32
	Name  string
	Logo  string
	Color string
}

// TypeForCreation validates a type creation payload.
func TypeForCreation(in TypeInput) (*domain.Type, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "type id not required")
	}

	typ := normalizeType(in)
	if err := run(typeRules(typ)); err != nil {
		return nil, err
	}
	return typ, nil
}

// TypeForUpdate validates a type update payload.
func TypeForUpdate(in TypeInput) (*domain.Type, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "type id required")
	}

	typ := normalizeType(in)
	typ.ID = int64(*in.ID)

	rules := append([]rule{
		{"id", atLeast(typ.ID, 1), "type id must be at least 1"},
	}, typeRules(typ)...)
	if err := run(rules); err != nil {
		return nil, err
	}
	return typ, nil
}

// TypeReference validates a nested type reference.
func TypeReference(in RefInput) (*domain.Type, error) {
	if err := run([]rule{
		{"id", atLeast(int64(in.ID), 1), "type id must be at least 1"},
	}); err != nil {
		return nil, err
	}
	return &domain.Type{ID: int64(in.ID)}, nil
}

func normalizeType(in TypeInput) *domain.Type {
	return &domain.Type{
		Name:  trim(in.Name),
		Logo:  trim(in.Logo),
		Color: trim(in.Color),
	}
}

// typeRules is the type field rule table, in declaration order.
func typeRules(t *domain.Type) []rule {
	return []rule{
		{"name", minLength(t.Name, 1), "name too short"},
		{"name", maxLength(t.Name, 255), "name too long"},
		{"logo", minLength(t.Logo, 3), "logo too short"},
		{"logo", maxLength(t.Logo, 255), "logo too long"},
		{"color", matches(t.Color, colorPattern), "color must be a valid hex color"},
	}
}
