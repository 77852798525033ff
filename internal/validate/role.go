package validate

import "cityguide/internal/domain"

// RoleInput is the raw role payload as deserialized by the transport
// layer.
type RoleInput struct {
	ID   *int32
	Name string
}

// RoleForCreation validates a role creation payload.
func RoleForCreation(in RoleInput) (*domain.Role, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "role id not required")
	}

	role := &domain.Role{Name: trim(in.Name)}
	if err := run(roleRules(role)); err != nil {
		return nil, err
	}
	return role, nil
}

// RoleForUpdate validates a role update payload.
func RoleForUpdate(in RoleInput) (*domain.Role, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "role id required")
	}

	role := &domain.Role{ID: int64(*in.ID), Name: trim(in.Name)}
	rules := append([]rule{
		{"id", atLeast(role.ID, 1), "role id must be at least 1"},
	}, roleRules(role)...)
	if err := run(rules); err != nil {
		return nil, err
	}
	return role, nil
}

// RoleReference validates a nested role reference.
func RoleReference(in RefInput) (*domain.Role, error) {
	if err := run([]rule{
		{"id", atLeast(int64(in.ID), 1), "role id must be at least 1"},
	}); err != nil {
		return nil, err
	}
	return &domain.Role{ID: int64(in.ID)}, nil
}

// roleRules is the role field rule table, in declaration order.
func roleRules(r *domain.Role) []rule {
	return []rule{
		{"name", minLength(r.Name, 1), "name too short"},
		{"name", maxLength(r.Name, 255), "name too long"},
	}
}
