package validate

import "cityguide/internal/domain"

// UserInput is the raw user payload as deserialized by the transport
// layer. Password is only honored on creation; updates never touch it.
type UserInput struct {
	ID       *int32
	Username string
	Email    string
	Password *string
	Roles    *[]RefInput
}

// UserForCreation validates a user registration payload. The password
// is required and checked against the complexity contract.
func UserForCreation(in UserInput) (*domain.User, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "user id not required")
	}

	user := normalizeUser(in)
	if in.Password != nil {
		user.Password = *in.Password
	}

	rules := append(userRules(user),
		rule{"password", func() bool { return validPassword(user.Password) }, "password too weak"},
	)
	if err := run(rules); err != nil {
		return nil, err
	}

	roles, err := roleReferences(in.Roles)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return user, nil
}

// UserForUpdate validates a user update payload. The password field is
// skipped entirely; password changes go through their own flow.
func UserForUpdate(in UserInput) (*domain.User, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "user id required")
	}

	user := normalizeUser(in)
	user.ID = int64(*in.ID)

	rules := append([]rule{
		{"id", atLeast(user.ID, 1), "user id must be at least 1"},
	}, userRules(user)...)
	if err := run(rules); err != nil {
		return nil, err
	}

	roles, err := roleReferences(in.Roles)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return user, nil
}

// UserReference validates a nested user reference.
func UserReference(in RefInput) (*domain.User, error) {
	if err := run([]rule{
		{"id", atLeast(int64(in.ID), 1), "user id must be at least 1"},
	}); err != nil {
		return nil, err
	}
	return &domain.User{ID: int64(in.ID)}, nil
}

func roleReferences(refs *[]RefInput) ([]domain.Role, error) {
	roles := []domain.Role{}
	if refs == nil {
		return roles, nil
	}
	for _, ref := range *refs {
		role, err := RoleReference(ref)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func normalizeUser(in UserInput) *domain.User {
	return &domain.User{
		Username: trim(in.Username),
		Email:    trim(in.Email),
	}
}

// userRules is the user field rule table, in declaration order.
func userRules(u *domain.User) []rule {
	return []rule{
		{"username", minLength(u.Username, 1), "username too short"},
		{"username", maxLength(u.Username, 255), "username too long"},
		{"email", matches(u.Email, emailPattern), "email must be a valid email address"},
		{"email", maxLength(u.Email, 255), "email too long"},
	}
}
