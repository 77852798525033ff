// Package service contains the business logic layer.
// Services orchestrate operations across repositories, apply the
// uniqueness business rules, and translate storage failures into
// structured domain errors. They do not know about GraphQL or HTTP.
package service

import (
	"context"
	"errors"

	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// CityService handles city business operations.
type CityService struct {
	cities    storage.CityRepository
	publisher event.Publisher
}

func NewCityService(cities storage.CityRepository, publisher event.Publisher) *CityService {
	return &CityService{cities: cities, publisher: publisher}
}

func (s *CityService) GetAll(ctx context.Context) ([]domain.City, error) {
	cities, err := s.cities.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("cities")
	}
	return cities, nil
}

func (s *CityService) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("city", id)
		}
		return nil, domain.NotLoaded("city")
	}
	return city, nil
}

func (s *CityService) GetByName(ctx context.Context, name string) (*domain.City, error) {
	city, err := s.cities.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("city", name)
		}
		return nil, domain.NotLoaded("city")
	}
	return city, nil
}

// Create persists a validated city. The coordinate pair is pre-checked
// against existing rows; the column constraints remain the
// authoritative guard, so a write that still collides is remapped the
// same way.
func (s *CityService) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	if err := s.checkLocationFree(ctx, city); err != nil {
		return nil, err
	}

	if err := s.cities.Save(ctx, city); err != nil {
		return nil, classifyWriteError("city", city.Latitude, city.Longitude, err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("city", city.ID))

	return city, nil
}

// Update persists a validated city after verifying the target exists,
// the new name collides with no other row, and a changed coordinate
// pair is still free.
func (s *CityService) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	current, err := s.cities.GetByID(ctx, city.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("city", city.ID)
		}
		return nil, domain.NotLoaded("city")
	}

	if other, err := s.cities.GetByName(ctx, city.Name); err == nil {
		if other.ID != city.ID {
			return nil, domain.FieldTaken("city", "name")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("city")
	}

	if current.Latitude != city.Latitude || current.Longitude != city.Longitude {
		if err := s.checkLocationFree(ctx, city); err != nil {
			return nil, err
		}
	}

	// Ownership survives updates that don't name a user.
	if city.User == nil {
		city.User = current.User
	}

	if err := s.cities.Save(ctx, city); err != nil {
		return nil, classifyWriteError("city", city.Latitude, city.Longitude, err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("city", city.ID))

	return city, nil
}

// Delete removes a city and returns the removed record.
func (s *CityService) Delete(ctx context.Context, id int64) (*domain.City, error) {
	city, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cities.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("city")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("city", id))

	return city, nil
}

func (s *CityService) checkLocationFree(ctx context.Context, city *domain.City) error {
	existing, err := s.cities.GetByLocation(ctx, city.Latitude, city.Longitude)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return domain.NotLoaded("city")
	}
	if existing.ID != city.ID {
		return domain.LocationTaken(city.Latitude, city.Longitude)
	}
	return nil
}
