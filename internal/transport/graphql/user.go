package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = &userResolver{r: r, user: &users[i]}
	}
	return out, nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID int32 }) (*userResolver, error) {
	user, err := r.users.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

func (r *Resolver) UserByName(ctx context.Context, args struct{ Username string }) (*userResolver, error) {
	user, err := r.users.GetByName(ctx, args.Username)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

// Me resolves the account behind the request's token.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	claims, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

// Register creates an account. It is the only unauthenticated write.
func (r *Resolver) Register(ctx context.Context, args struct{ Input validate.UserInput }) (*userResolver, error) {
	user, err := validate.UserForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	user, err = r.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

// UpdateUser lets a user edit their own account; super-admins can edit
// anyone's.
func (r *Resolver) UpdateUser(ctx context.Context, args struct{ Input validate.UserInput }) (*userResolver, error) {
	claims, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	user, err := validate.UserForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	if user.ID != claims.UserID && !claims.HasRole(domain.RoleSuperAdmin) {
		return nil, domain.NewError(domain.Forbidden, "insufficient permissions")
	}
	user, err = r.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID int32 }) (*userResolver, error) {
	claims, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if int64(args.ID) != claims.UserID && !claims.HasRole(domain.RoleSuperAdmin) {
		return nil, domain.NewError(domain.Forbidden, "insufficient permissions")
	}
	user, err := r.users.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

// UpdateUserRoles replaces a user's role set wholesale.
func (r *Resolver) UpdateUserRoles(ctx context.Context, args struct {
	UserID  int32
	RoleIDs []int32
}) (*userResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	roleIDs := make([]int64, len(args.RoleIDs))
	for i, id := range args.RoleIDs {
		roleIDs[i] = int64(id)
	}
	user, err := r.users.UpdateRoles(ctx, int64(args.UserID), roleIDs)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: user}, nil
}

type userResolver struct {
	r    *Resolver
	user *domain.User
}

func (u *userResolver) ID() int32 {
	return int32(u.user.ID)
}

func (u *userResolver) Username() string {
	return u.user.Username
}

func (u *userResolver) Email() string {
	return u.user.Email
}

func (u *userResolver) Roles() []*roleResolver {
	return roleResolvers(u.user.Roles)
}
