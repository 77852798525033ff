package graphql

import (
	"context"

	"cityguide/internal/service"
)

// Login exchanges credentials for a signed session token.
func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	result, err := r.auth.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{r: r, result: result}, nil
}

type authPayloadResolver struct {
	r      *Resolver
	result *service.LoginResult
}

func (a *authPayloadResolver) Token() string {
	return a.result.Token
}

func (a *authPayloadResolver) User() *userResolver {
	return &userResolver{r: a.r, user: a.result.User}
}
