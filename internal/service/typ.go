package service

import (
	"context"
	"errors"

	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// TypeService handles poi-type business operations.
type TypeService struct {
	types     storage.TypeRepository
	publisher event.Publisher
}

func NewTypeService(types storage.TypeRepository, publisher event.Publisher) *TypeService {
	return &TypeService{types: types, publisher: publisher}
}

func (s *TypeService) GetAll(ctx context.Context) ([]domain.Type, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("types")
	}
	return types, nil
}

func (s *TypeService) GetByID(ctx context.Context, id int64) (*domain.Type, error) {
	typ, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("type", id)
		}
		return nil, domain.NotLoaded("type")
	}
	return typ, nil
}

func (s *TypeService) GetByName(ctx context.Context, name string) (*domain.Type, error) {
	typ, err := s.types.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("type", name)
		}
		return nil, domain.NotLoaded("type")
	}
	return typ, nil
}

// Create persists a validated type. Name, logo and color uniqueness is
// guarded by the column constraints and remapped on violation.
func (s *TypeService) Create(ctx context.Context, typ *domain.Type) (*domain.Type, error) {
	if err := s.types.Save(ctx, typ); err != nil {
		return nil, classifyWriteError("type", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("type", typ.ID))

	return typ, nil
}

func (s *TypeService) Update(ctx context.Context, typ *domain.Type) (*domain.Type, error) {
	if _, err := s.types.GetByID(ctx, typ.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("type", typ.ID)
		}
		return nil, domain.NotLoaded("type")
	}

	if other, err := s.types.GetByName(ctx, typ.Name); err == nil {
		if other.ID != typ.ID {
			return nil, domain.FieldTaken("type", "name")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("type")
	}

	if err := s.types.Save(ctx, typ); err != nil {
		return nil, classifyWriteError("type", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("type", typ.ID))

	return typ, nil
}

// Delete removes a type and returns the removed record.
func (s *TypeService) Delete(ctx context.Context, id int64) (*domain.Type, error) {
	typ, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.types.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("type")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("type", id))

	return typ, nil
}
