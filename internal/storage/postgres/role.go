package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// RoleRepository implements storage.RoleRepository using PostgreSQL.
type RoleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, mapError(err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name FROM roles WHERE id = $1`, id)
	return scanRole(row)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name FROM roles WHERE name = $1`, name)
	return scanRole(row)
}

func (r *RoleRepository) Save(ctx context.Context, role *domain.Role) error {
	if role.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO roles (name) VALUES ($1) RETURNING id`,
			role.Name,
		).Scan(&role.ID)
		return mapError(err)
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE roles SET name = $2 WHERE id = $1`,
		role.ID, role.Name,
	)
	return mapError(err)
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanRole(row scannable) (*domain.Role, error) {
	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return nil, mapError(err)
	}
	return &role, nil
}
