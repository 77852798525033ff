package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// TypeRepository implements storage.TypeRepository using PostgreSQL.
type TypeRepository struct {
	pool *pgxpool.Pool
}

// NewTypeRepository creates a new type repository.
func NewTypeRepository(pool *pgxpool.Pool) *TypeRepository {
	return &TypeRepository{pool: pool}
}

func (r *TypeRepository) List(ctx context.Context) ([]domain.Type, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, logo, color FROM types ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var types []domain.Type
	for rows.Next() {
		var typ domain.Type
		if err := rows.Scan(&typ.ID, &typ.Name, &typ.Logo, &typ.Color); err != nil {
			return nil, mapError(err)
		}
		types = append(types, typ)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return types, nil
}

func (r *TypeRepository) GetByID(ctx context.Context, id int64) (*domain.Type, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, logo, color FROM types WHERE id = $1`, id)
	return scanType(row)
}

func (r *TypeRepository) GetByName(ctx context.Context, name string) (*domain.Type, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, logo, color FROM types WHERE name = $1`, name)
	return scanType(row)
}

func (r *TypeRepository) Save(ctx context.Context, typ *domain.Type) error {
	if typ.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO types (name, logo, color)
			VALUES ($1, $2, $3)
			RETURNING id`,
			typ.Name, typ.Logo, typ.Color,
		).Scan(&typ.ID)
		return mapError(err)
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE types SET name = $2, logo = $3, color = $4 WHERE id = $1`,
		typ.ID, typ.Name, typ.Logo, typ.Color,
	)
	return mapError(err)
}

func (r *TypeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM types WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanType(row scannable) (*domain.Type, error) {
	var typ domain.Type
	if err := row.Scan(&typ.ID, &typ.Name, &typ.Logo, &typ.Color); err != nil {
		return nil, mapError(err)
	}
	return &typ, nil
}
