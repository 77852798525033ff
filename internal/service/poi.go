package service

import (
	"context"
	"errors"

	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// PoiService handles point-of-interest business operations.
type PoiService struct {
	pois      storage.PoiRepository
	cities    storage.CityRepository
	types     storage.TypeRepository
	tags      storage.TagRepository
	publisher event.Publisher
}

func NewPoiService(
	pois storage.PoiRepository,
	cities storage.CityRepository,
	types storage.TypeRepository,
	tags storage.TagRepository,
	publisher event.Publisher,
) *PoiService {
	return &PoiService{
		pois:      pois,
		cities:    cities,
		types:     types,
		tags:      tags,
		publisher: publisher,
	}
}

func (s *PoiService) GetAll(ctx context.Context) ([]domain.Poi, error) {
	pois, err := s.pois.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("pois")
	}
	return pois, nil
}

func (s *PoiService) GetByCity(ctx context.Context, cityID int64) ([]domain.Poi, error) {
	pois, err := s.pois.ListByCity(ctx, cityID)
	if err != nil {
		return nil, domain.NotLoaded("pois")
	}
	return pois, nil
}

func (s *PoiService) GetByID(ctx context.Context, id int64) (*domain.Poi, error) {
	poi, err := s.pois.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("poi", id)
		}
		return nil, domain.NotLoaded("poi")
	}
	return poi, nil
}

func (s *PoiService) GetByName(ctx context.Context, name string) (*domain.Poi, error) {
	poi, err := s.pois.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("poi", name)
		}
		return nil, domain.NotLoaded("poi")
	}
	return poi, nil
}

// Create persists a validated poi after verifying every referenced
// entity exists and the coordinate pair is free.
func (s *PoiService) Create(ctx context.Context, poi *domain.Poi) (*domain.Poi, error) {
	if err := s.checkReferences(ctx, poi); err != nil {
		return nil, err
	}
	if err := s.checkLocationFree(ctx, poi); err != nil {
		return nil, err
	}

	if err := s.pois.Save(ctx, poi); err != nil {
		return nil, classifyWriteError("poi", poi.Latitude, poi.Longitude, err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("poi", poi.ID))

	return poi, nil
}

func (s *PoiService) Update(ctx context.Context, poi *domain.Poi) (*domain.Poi, error) {
	current, err := s.pois.GetByID(ctx, poi.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("poi", poi.ID)
		}
		return nil, domain.NotLoaded("poi")
	}

	if other, err := s.pois.GetByName(ctx, poi.Name); err == nil {
		if other.ID != poi.ID {
			return nil, domain.FieldTaken("poi", "name")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("poi")
	}

	if err := s.checkReferences(ctx, poi); err != nil {
		return nil, err
	}

	if current.Latitude != poi.Latitude || current.Longitude != poi.Longitude {
		if err := s.checkLocationFree(ctx, poi); err != nil {
			return nil, err
		}
	}

	if err := s.pois.Save(ctx, poi); err != nil {
		return nil, classifyWriteError("poi", poi.Latitude, poi.Longitude, err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("poi", poi.ID))

	return poi, nil
}

// Delete removes a poi and returns the removed record.
func (s *PoiService) Delete(ctx context.Context, id int64) (*domain.Poi, error) {
	poi, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.pois.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("poi")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("poi", id))

	return poi, nil
}

// checkReferences verifies the referenced city, type and every tag
// exist in storage. Existence is verified here, against storage, not
// during input validation.
func (s *PoiService) checkReferences(ctx context.Context, poi *domain.Poi) error {
	if _, err := s.cities.GetByID(ctx, poi.City.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ReferenceMissing("city", poi.City.ID)
		}
		return domain.NotLoaded("city")
	}

	if _, err := s.types.GetByID(ctx, poi.Type.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ReferenceMissing("type", poi.Type.ID)
		}
		return domain.NotLoaded("type")
	}

	for _, tag := range poi.Tags {
		if _, err := s.tags.GetByID(ctx, tag.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ReferenceMissing("tag", tag.ID)
			}
			return domain.NotLoaded("tag")
		}
	}

	return nil
}

func (s *PoiService) checkLocationFree(ctx context.Context, poi *domain.Poi) error {
	existing, err := s.pois.GetByLocation(ctx, poi.Latitude, poi.Longitude)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return domain.NotLoaded("poi")
	}
	if existing.ID != poi.ID {
		return domain.LocationTaken(poi.Latitude, poi.Longitude)
	}
	return nil
}
