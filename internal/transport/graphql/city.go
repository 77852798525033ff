package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Cities(ctx context.Context) ([]*cityResolver, error) {
	cities, err := r.cities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.cityResolvers(cities), nil
}

func (r *Resolver) City(ctx context.Context, args struct{ ID int32 }) (*cityResolver, error) {
	city, err := r.cities.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: r, city: city}, nil
}

func (r *Resolver) CityByName(ctx context.Context, args struct{ Name string }) (*cityResolver, error) {
	city, err := r.cities.GetByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: r, city: city}, nil
}

func (r *Resolver) CreateCity(ctx context.Context, args struct{ Input validate.CityInput }) (*cityResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	city, err := validate.CityForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	city, err = r.cities.Create(ctx, city)
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: r, city: city}, nil
}

func (r *Resolver) UpdateCity(ctx context.Context, args struct{ Input validate.CityInput }) (*cityResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	city, err := validate.CityForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	city, err = r.cities.Update(ctx, city)
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: r, city: city}, nil
}

func (r *Resolver) DeleteCity(ctx context.Context, args struct{ ID int32 }) (*cityResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	city, err := r.cities.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: r, city: city}, nil
}

func (r *Resolver) cityResolvers(cities []domain.City) []*cityResolver {
	out := make([]*cityResolver, len(cities))
	for i := range cities {
		out[i] = &cityResolver{r: r, city: &cities[i]}
	}
	return out
}

type cityResolver struct {
	r    *Resolver
	city *domain.City
}

func (c *cityResolver) ID() int32 {
	return int32(c.city.ID)
}

func (c *cityResolver) Name() string {
	return c.city.Name
}

func (c *cityResolver) Latitude() string {
	return c.city.Latitude
}

func (c *cityResolver) Longitude() string {
	return c.city.Longitude
}

func (c *cityResolver) Picture() *string {
	if c.city.Picture == "" {
		return nil
	}
	return &c.city.Picture
}

// User resolves the owning user lazily; storage rows only carry the
// user id.
func (c *cityResolver) User(ctx context.Context) (*userResolver, error) {
	if c.city.User == nil {
		return nil, nil
	}
	user, err := c.r.users.GetByID(ctx, c.city.User.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &userResolver{r: c.r, user: user}, nil
}

func (c *cityResolver) Pois(ctx context.Context) ([]*poiResolver, error) {
	pois, err := c.r.pois.GetByCity(ctx, c.city.ID)
	if err != nil {
		return nil, err
	}
	return c.r.poiResolvers(pois), nil
}
