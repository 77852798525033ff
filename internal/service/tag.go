package service

import (
	"context"
	"errors"

	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// TagService handles tag business operations.
type TagService struct {
	tags      storage.TagRepository
	publisher event.Publisher
}

func NewTagService(tags storage.TagRepository, publisher event.Publisher) *TagService {
	return &TagService{tags: tags, publisher: publisher}
}

func (s *TagService) GetAll(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("tags")
	}
	return tags, nil
}

func (s *TagService) GetByPoi(ctx context.Context, poiID int64) ([]domain.Tag, error) {
	tags, err := s.tags.ListByPoi(ctx, poiID)
	if err != nil {
		return nil, domain.NotLoaded("tags")
	}
	return tags, nil
}

func (s *TagService) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("tag", id)
		}
		return nil, domain.NotLoaded("tag")
	}
	return tag, nil
}

func (s *TagService) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("tag", name)
		}
		return nil, domain.NotLoaded("tag")
	}
	return tag, nil
}

func (s *TagService) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if err := s.tags.Save(ctx, tag); err != nil {
		return nil, classifyWriteError("tag", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("tag", tag.ID))

	return tag, nil
}

func (s *TagService) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if _, err := s.tags.GetByID(ctx, tag.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("tag", tag.ID)
		}
		return nil, domain.NotLoaded("tag")
	}

	if other, err := s.tags.GetByName(ctx, tag.Name); err == nil {
		if other.ID != tag.ID {
			return nil, domain.FieldTaken("tag", "name")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("tag")
	}

	if err := s.tags.Save(ctx, tag); err != nil {
		return nil, classifyWriteError("tag", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("tag", tag.ID))

	return tag, nil
}

// Delete removes a tag and returns the removed record.
func (s *TagService) Delete(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("tag")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("tag", id))

	return tag, nil
}
