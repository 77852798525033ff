package graphql

import (
	"context"

	"cityguide/internal/domain"
	"cityguide/internal/validate"
)

func (r *Resolver) Tags(ctx context.Context) ([]*tagResolver, error) {
	tags, err := r.tags.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return tagResolvers(tags), nil
}

func (r *Resolver) Tag(ctx context.Context, args struct{ ID int32 }) (*tagResolver, error) {
	tag, err := r.tags.GetByID(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &tagResolver{tag: tag}, nil
}

func (r *Resolver) TagByName(ctx context.Context, args struct{ Name string }) (*tagResolver, error) {
	tag, err := r.tags.GetByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &tagResolver{tag: tag}, nil
}

func (r *Resolver) CreateTag(ctx context.Context, args struct{ Input validate.TagInput }) (*tagResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	tag, err := validate.TagForCreation(args.Input)
	if err != nil {
		return nil, err
	}
	tag, err = r.tags.Create(ctx, tag)
	if err != nil {
		return nil, err
	}
	return &tagResolver{tag: tag}, nil
}

func (r *Resolver) UpdateTag(ctx context.Context, args struct{ Input validate.TagInput }) (*tagResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	tag, err := validate.TagForUpdate(args.Input)
	if err != nil {
		return nil, err
	}
	tag, err = r.tags.Update(ctx, tag)
	if err != nil {
		return nil, err
	}
	return &tagResolver{tag: tag}, nil
}

func (r *Resolver) DeleteTag(ctx context.Context, args struct{ ID int32 }) (*tagResolver, error) {
	if _, err := requireRole(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	tag, err := r.tags.Delete(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &tagResolver{tag: tag}, nil
}

func tagResolvers(tags []domain.Tag) []*tagResolver {
	out := make([]*tagResolver, len(tags))
	for i := range tags {
		out[i] = &tagResolver{tag: &tags[i]}
	}
	return out
}

type tagResolver struct {
	tag *domain.Tag
}

func (t *tagResolver) ID() int32 {
	return int32(t.tag.ID)
}

func (t *tagResolver) Name() string {
	return t.tag.Name
}

func (t *tagResolver) Icon() *string {
	if t.tag.Icon == "" {
		return nil
	}
	return &t.tag.Icon
}
