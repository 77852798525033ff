// Package storage defines the repository interfaces for data persistence.
//
// These interfaces keep the service layer independent of the storage
// implementation, and let tests substitute in-memory fakes for the
// PostgreSQL repositories.
//
// Contract shared by all repositories: lookups that match no row
// return domain.ErrNotFound; writes that hit a unique or foreign-key
// constraint return *domain.DuplicateError / *domain.ReferenceError
// with the violated column resolved from the constraint name.
package storage

import (
	"context"

	"cityguide/internal/domain"
)

// CityRepository defines the operations for city persistence.
type CityRepository interface {
	// List retrieves all cities.
	List(ctx context.Context) ([]domain.City, error)

	// GetByID retrieves a city by id.
	GetByID(ctx context.Context, id int64) (*domain.City, error)

	// GetByName retrieves a city by name.
	GetByName(ctx context.Context, name string) (*domain.City, error)

	// GetByLocation retrieves the city at the exact coordinate pair.
	GetByLocation(ctx context.Context, latitude, longitude string) (*domain.City, error)

	// Save inserts the city when its id is zero, updates it otherwise.
	// The id is filled in on insert.
	Save(ctx context.Context, city *domain.City) error

	// Delete removes a city.
	Delete(ctx context.Context, id int64) error
}

// PoiRepository defines the operations for point-of-interest persistence.
type PoiRepository interface {
	List(ctx context.Context) ([]domain.Poi, error)
	ListByCity(ctx context.Context, cityID int64) ([]domain.Poi, error)
	GetByID(ctx context.Context, id int64) (*domain.Poi, error)
	GetByName(ctx context.Context, name string) (*domain.Poi, error)
	GetByLocation(ctx context.Context, latitude, longitude string) (*domain.Poi, error)

	// Save persists the poi and replaces its tag set.
	Save(ctx context.Context, poi *domain.Poi) error

	Delete(ctx context.Context, id int64) error
}

// TypeRepository defines the operations for type persistence.
type TypeRepository interface {
	List(ctx context.Context) ([]domain.Type, error)
	GetByID(ctx context.Context, id int64) (*domain.Type, error)
	GetByName(ctx context.Context, name string) (*domain.Type, error)
	Save(ctx context.Context, typ *domain.Type) error
	Delete(ctx context.Context, id int64) error
}

// TagRepository defines the operations for tag persistence.
type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	ListByPoi(ctx context.Context, poiID int64) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	Save(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) error
}

// RoleRepository defines the operations for role persistence.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Save(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the operations for user persistence. Lookups
// load the user's roles.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByName(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error

	// ReplaceRoles atomically reassigns the user's role set.
	ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error

	Delete(ctx context.Context, id int64) error
}

// Repositories bundles all repositories together.
// This makes it easy to pass around and inject dependencies.
type Repositories struct {
	Cities CityRepository
	Pois   PoiRepository
	Types  TypeRepository
	Tags   TagRepository
	Roles  RoleRepository
	Users  UserRepository
}
