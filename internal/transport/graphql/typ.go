package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Types(ctx context.Context) ([]*typeResolver, error) {
	types, err := r.types.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*typeResolver, len(types))
	for i := range types {
		out[i] = &typeResolver{typ: &types[i]}
	}
	return out, nil
}

func (r *Resolver) Type(ctx context.Context, args struct{ ID int32 }) (*typeResolver, error) {
	typ, err := r.types.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

func (r *Resolver) TypeByName(ctx context.Context, args struct{ Name string }) (*typeResolver, error) {
	typ, err := r.types.GetByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

func (r *Resolver) CreateType(ctx context.Context, args struct{ Input validate.TypeInput }) (*typeResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	typ, err := validate.TypeForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	typ, err = r.types.Create(ctx, typ)
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

func (r *Resolver) UpdateType(ctx context.Context, args struct{ Input validate.TypeInput }) (*typeResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	typ, err := validate.TypeForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	typ, err = r.types.Update(ctx, typ)
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

func (r *Resolver) DeleteType(ctx context.Context, args struct{ ID int32 }) (*typeResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	typ, err := r.types.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &typeResolver{typ: typ}, nil
}

type typeResolver struct {
	typ *domain.Type
}

func (t *typeResolver) ID() int32 {
	return int32(t.typ.ID)
}

func (t *typeResolver) Name() string {
	return t.typ.Name
}

func (t *typeResolver) Logo() string {
	return t.typ.Logo
}

func (t *typeResolver) Color() string {
	return t.typ.Color
}
