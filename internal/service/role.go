package service

import (
	"context"
	"errors"

	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// RoleService handles role business operations.
type RoleService struct {
	roles     storage.RoleRepository
	publisher event.Publisher
}

func NewRoleService(roles storage.RoleRepository, publisher event.Publisher) *RoleService {
	return &RoleService{roles: roles, publisher: publisher}
}

func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("roles")
	}
	return roles, nil
}

func (s *RoleService) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("role", id)
		}
		return nil, domain.NotLoaded("role")
	}
	return role, nil
}

func (s *RoleService) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("role", name)
		}
		return nil, domain.NotLoaded("role")
	}
	return role, nil
}

func (s *RoleService) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if err := s.roles.Save(ctx, role); err != nil {
		return nil, classifyWriteError("role", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("role", role.ID))

	return role, nil
}

func (s *RoleService) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if _, err := s.roles.GetByID(ctx, role.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("role", role.ID)
		}
		return nil, domain.NotLoaded("role")
	}

	if other, err := s.roles.GetByName(ctx, role.Name); err == nil {
		if other.ID != role.ID {
			return nil, domain.FieldTaken("role", "name")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("role")
	}

	if err := s.roles.Save(ctx, role); err != nil {
		return nil, classifyWriteError("role", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("role", role.ID))

	return role, nil
}

// Delete removes a role and returns the removed record.
func (s *RoleService) Delete(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("role")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("role", id))

	return role, nil
}
