package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Roles(ctx context.Context) ([]*roleResolver, error) {
	roles, err := r.roles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return roleResolvers(roles), nil
}

func (r *Resolver) Role(ctx context.Context, args struct{ ID int32 }) (*roleResolver, error) {
	role, err := r.roles.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &roleResolver{role: role}, nil
}

func (r *Resolver) RoleByName(ctx context.Context, args struct{ Name string }) (*roleResolver, error) {
	role, err := r.roles.GetByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &roleResolver{role: role}, nil
}

func (r *Resolver) CreateRole(ctx context.Context, args struct{ Input validate.RoleInput }) (*roleResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	role, err := validate.RoleForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	role, err = r.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	return &roleResolver{role: role}, nil
}

func (r *Resolver) UpdateRole(ctx context.Context, args struct{ Input validate.RoleInput }) (*roleResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	role, err := validate.RoleForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	role, err = r.roles.Update(ctx, role)
	if err != nil {
		return nil, err
	}
	return &roleResolver{role: role}, nil
}

func (r *Resolver) DeleteRole(ctx context.Context, args struct{ ID int32 }) (*roleResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	role, err := r.roles.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &roleResolver{role: role}, nil
}

func roleResolvers(roles []domain.Role) []*roleResolver {
	out := make([]*roleResolver, len(roles))
	for i := range roles {
		out[i] = &roleResolver{role: &roles[i]}
	}
	return out
}

type roleResolver struct {
	role *domain.Role
}

func (r *roleResolver) ID() int32 {
	return int32(r.role.ID)
}

func (r *roleResolver) Name() string {
	return r.role.Name
}
