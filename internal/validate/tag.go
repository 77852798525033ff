package validate

import "cityguide/internal/domain"

// TagInput is the raw tag payload as deserialized by the transport
// layer.
type TagInput struct {
	ID   *int32
	Name string
	Icon *string
}

// TagForCreation validates a tag creation payload.
func TagForCreation(in TagInput) (*domain.Tag, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "tag id not required")
	}

	tag := normalizeTag(in)
	if err := run(tagRules(tag)); err != nil {
		return nil, err
	}
	return tag, nil
}

// TagForUpdate validates a tag update payload.
func TagForUpdate(in TagInput) (*domain.Tag, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "tag id required")
	}

	tag := normalizeTag(in)
	tag.ID = int64(*in.ID)

	rules := append([]rule{
		{"id", atLeast(tag.ID, 1), "tag id must be at least 1"},
	}, tagRules(tag)...)
	if err := run(rules); err != nil {
		return nil, err
	}
	return tag, nil
}

// TagReference validates a nested tag reference.
func TagReference(in RefInput) (*domain.Tag, error) {
	if err := run([]rule{
		{"id", atLeast(int64(in.ID), 1), "tag id must be at least 1"},
	}); err != nil {
		return nil, err
	}
	return &domain.Tag{ID: int64(in.ID)}, nil
}

// TagReferences validates every tag reference in the array; any
// failure aborts the whole array.
func TagReferences(refs *[]RefInput) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	if refs == nil {
		return tags, nil
	}
	for _, ref := range *refs {
		tag, err := TagReference(ref)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func normalizeTag(in TagInput) *domain.Tag {
	return &domain.Tag{
		Name: trim(in.Name),
		Icon: trimPtr(in.Icon),
	}
}

// tagRules is the tag field rule table, in declaration order.
func tagRules(t *domain.Tag) []rule {
	return []rule{
		{"name", minLength(t.Name, 1), "name too short"},
		{"name", maxLength(t.Name, 255), "name too long"},
		{"icon", optional(t.Icon, maxLength(t.Icon, 255)), "icon too long"},
	}
}
