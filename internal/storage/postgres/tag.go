package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// TagRepository implements storage.TagRepository using PostgreSQL.
type TagRepository struct {
	pool *pgxpool.Pool
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, icon FROM tags ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectTags(rows)
}

func (r *TagRepository) ListByPoi(ctx context.Context, poiID int64) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.icon
		FROM tags t
		JOIN poi_tags pt ON pt.tag_id = t.id
		WHERE pt.poi_id = $1
		ORDER BY t.name`, poiID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectTags(rows)
}

func (r *TagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, icon FROM tags WHERE id = $1`, id)
	return scanTag(row)
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, icon FROM tags WHERE name = $1`, name)
	return scanTag(row)
}

func (r *TagRepository) Save(ctx context.Context, tag *domain.Tag) error {
	if tag.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO tags (name, icon)
			VALUES ($1, $2)
			RETURNING id`,
			tag.Name, nullable(tag.Icon),
		).Scan(&tag.ID)
		return mapError(err)
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE tags SET name = $2, icon = $3 WHERE id = $1`,
		tag.ID, tag.Name, nullable(tag.Icon),
	)
	return mapError(err)
}

func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanTag(row scannable) (*domain.Tag, error) {
	var tag domain.Tag
	var icon *string
	if err := row.Scan(&tag.ID, &tag.Name, &icon); err != nil {
		return nil, mapError(err)
	}
	if icon != nil {
		tag.Icon = *icon
	}
	return &tag, nil
}

func collectTags(rows pgx.Rows) ([]domain.Tag, error) {
	var tags []domain.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return tags, nil
}
