package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Pois(ctx context.Context) ([]*poiResolver, error) {
	pois, err := r.pois.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.poiResolvers(pois), nil
}

func (r *Resolver) Poi(ctx context.Context, args struct{ ID int32 }) (*poiResolver, error) {
	poi, err := r.pois.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &poiResolver{r: r, poi: poi}, nil
}

func (r *Resolver) PoiByName(ctx context.Context, args struct{ Name string }) (*poiResolver, error) {
	poi, err := r.pois.GetByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &poiResolver{r: r, poi: poi}, nil
}

func (r *Resolver) CreatePoi(ctx context.Context, args struct{ Input validate.PoiInput }) (*poiResolver, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	poi, err := validate.PoiForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	poi, err = r.pois.Create(ctx, poi)
	if err != nil {
		return nil, err
	}
	return &poiResolver{r: r, poi: poi}, nil
}

func (r *Resolver) UpdatePoi(ctx context.Context, args struct{ Input validate.PoiInput }) (*poiResolver, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	poi, err := validate.PoiForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	poi, err = r.pois.Update(ctx, poi)
	if err != nil {
		return nil, err
	}
	return &poiResolver{r: r, poi: poi}, nil
}

func (r *Resolver) DeletePoi(ctx context.Context, args struct{ ID int32 }) (*poiResolver, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	poi, err := r.pois.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &poiResolver{r: r, poi: poi}, nil
}

func (r *Resolver) poiResolvers(pois []domain.Poi) []*poiResolver {
	out := make([]*poiResolver, len(pois))
	for i := range pois {
		out[i] = &poiResolver{r: r, poi: &pois[i]}
	}
	return out
}

type poiResolver struct {
	r   *Resolver
	poi *domain.Poi
}

func (p *poiResolver) ID() int32 {
	return int32(p.poi.ID)
}

func (p *poiResolver) Name() string {
	return p.poi.Name
}

func (p *poiResolver) Address() string {
	return p.poi.Address
}

func (p *poiResolver) Latitude() string {
	return p.poi.Latitude
}

func (p *poiResolver) Longitude() string {
	return p.poi.Longitude
}

func (p *poiResolver) Picture() *string {
	if p.poi.Picture == "" {
		return nil
	}
	return &p.poi.Picture
}

func (p *poiResolver) City(ctx context.Context) (*cityResolver, error) {
	city, err := p.r.cities.GetByID(ctx, p.poi.City.ID)
	if err != nil {
		return nil, err
	}
	return &cityResolver{r: p.r, city: city}, nil
}

func (p *poiResolver) Type(ctx context.Context) (*typeResolver, error) {
	typ, err := p.r.types.GetByID(ctx, p.poi.Type.ID)
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

func (p *poiResolver) Tags(ctx context.Context) ([]*tagResolver, error) {
	tags, err := p.r.tags.GetByPoi(ctx, p.poi.ID)
	if err != nil {
		return nil, err
	}
	return tagResolvers(tags), nil
}
