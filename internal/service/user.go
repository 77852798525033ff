package service

import (
	"context"
	"errors"

	"cityguide/internal/auth"
	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// UserService handles user business operations.
type UserService struct {
	users     storage.UserRepository
	roles     storage.RoleRepository
	publisher event.Publisher
}

func NewUserService(
	users storage.UserRepository,
	roles storage.RoleRepository,
	publisher event.Publisher,
) *UserService {
	return &UserService{users: users, roles: roles, publisher: publisher}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, domain.NotLoaded("users")
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("user", id)
		}
		return nil, domain.NotLoaded("user")
	}
	return user, nil
}

func (s *UserService) GetByName(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByName("user", username)
		}
		return nil, domain.NotLoaded("user")
	}
	return user, nil
}

// Create hashes the validated password, assigns the default USER role
// when it exists in storage, and persists the account. The plaintext
// never leaves this function.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, domain.NotSaved("user")
	}
	user.HashedPassword = hashed
	user.Password = ""

	if defaultRole, err := s.roles.GetByName(ctx, domain.RoleUser); err == nil {
		if !user.HasRole(domain.RoleUser) {
			user.Roles = append(user.Roles, *defaultRole)
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, classifyWriteError("user", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.CreatedEvent("user", user.ID))

	return user, nil
}

func (s *UserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("user", user.ID)
		}
		return nil, domain.NotLoaded("user")
	}

	if other, err := s.users.GetByName(ctx, user.Username); err == nil {
		if other.ID != user.ID {
			return nil, domain.FieldTaken("user", "username")
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotLoaded("user")
	}

	// The stored hash and role set survive updates that don't carry them.
	user.HashedPassword = current.HashedPassword
	if len(user.Roles) == 0 {
		user.Roles = current.Roles
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, classifyWriteError("user", "", "", err)
	}

	_ = s.publisher.Publish(ctx, domain.UpdatedEvent("user", user.ID))

	return user, nil
}

// UpdateRoles reassigns a user's role set after verifying that every
// referenced role exists in storage.
func (s *UserService) UpdateRoles(ctx context.Context, userID int64, roleIDs []int64) (*domain.User, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundByID("user", userID)
		}
		return nil, domain.NotLoaded("user")
	}

	for _, roleID := range roleIDs {
		if _, err := s.roles.GetByID(ctx, roleID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ReferenceMissing("role", roleID)
			}
			return nil, domain.NotLoaded("role")
		}
	}

	if err := s.users.ReplaceRoles(ctx, userID, roleIDs); err != nil {
		return nil, domain.NewError(domain.Internal, "user roles could not be saved")
	}

	_ = s.publisher.Publish(ctx, domain.RolesChangedEvent(userID))

	return s.GetByID(ctx, userID)
}

// Delete removes a user and returns the removed record.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, domain.NotDeleted("user")
	}

	_ = s.publisher.Publish(ctx, domain.DeletedEvent("user", id))

	return user, nil
}
