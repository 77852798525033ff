package graphql

import (
	"context"
	"errors"

	"cityguide/internal/auth"
	"cityguide/internal/domain"
	"cityguide/internal/service"
)

// Resolver is the root resolver. It holds the services and fans every
// field out to them; it contains no business logic of its own.
type Resolver struct {
	cities *service.CityService
	pois   *service.PoiService
	types  *service.TypeService
	tags   *service.TagService
	roles  *service.RoleService
	users  *service.UserService
	auth   *service.AuthService
}

func NewResolver(
	cities *service.CityService,
	pois *service.PoiService,
	types *service.TypeService,
	tags *service.TagService,
	roles *service.RoleService,
	users *service.UserService,
	authSvc *service.AuthService,
) *Resolver {
	return &Resolver{
		cities: cities,
		pois:   pois,
		types:  types,
		tags:   tags,
		roles:  roles,
		users:  users,
		auth:   authSvc,
	}
}

// requireAuth returns the claims placed in context by the HTTP
// middleware, or an Unauthorized error when the request carried no
// valid token.
func requireAuth(ctx context.Context) (*auth.Claims, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, domain.NewError(domain.Unauthorized, "authentication required")
	}
	return claims, nil
}

// requireRole enforces a role on top of requireAuth.
func requireRole(ctx context.Context, role string) (*auth.Claims, error) {
	claims, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if !claims.HasRole(role) {
		return nil, domain.NewError(domain.Forbidden, "insufficient permissions")
	}
	return claims, nil
}

// isNotFound reports whether err is a not-found domain error, used by
// nullable relation fields to return null instead of failing the query.
func isNotFound(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && de.Kind == domain.NotFound
}
