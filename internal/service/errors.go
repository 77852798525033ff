package service

import (
	"errors"

	"cityguide/internal/domain"
)

// classifyWriteError translates a storage write failure into the
// structured error for the entity. A recognized unique column maps to
// its "already exists" message, a recognized foreign-key column maps
// to its "does not exist" message, everything else stays internal.
// latitude/longitude provide the context for the composite location
// constraint; entities without a location pass empty strings.
func classifyWriteError(entity, latitude, longitude string, err error) error {
	var dup *domain.DuplicateError
	if errors.As(err, &dup) {
		if dup.Column == "location" && latitude != "" {
			return domain.LocationTaken(latitude, longitude)
		}
		if mapped, ok := domain.DuplicateMessage(entity, dup.Column); ok {
			return mapped
		}
		return domain.NotSaved(entity)
	}

	var ref *domain.ReferenceError
	if errors.As(err, &ref) {
		if mapped, ok := domain.ReferenceMessage(ref.Column); ok {
			return mapped
		}
	}

	return domain.NotSaved(entity)
}
