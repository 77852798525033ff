package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// UserRepository implements storage.UserRepository using PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, email, hashed_password FROM users ORDER BY username`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword); err != nil {
			return nil, mapError(err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	for i := range users {
		roles, err := r.userRoles(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Roles = roles
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, hashed_password FROM users WHERE id = $1`, id)
	return r.scanUserWithRoles(ctx, row)
}

func (r *UserRepository) GetByName(ctx context.Context, username string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, hashed_password FROM users WHERE username = $1`, username)
	return r.scanUserWithRoles(ctx, row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, hashed_password FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return r.scanUserWithRoles(ctx, row)
}

// Save persists the user and replaces the role set in one transaction.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	if user.ID == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO users (username, email, hashed_password)
			VALUES ($1, $2, $3)
			RETURNING id`,
			user.Username, user.Email, user.HashedPassword,
		).Scan(&user.ID)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE users SET username = $2, email = $3, hashed_password = $4
			WHERE id = $1`,
			user.ID, user.Username, user.Email, user.HashedPassword,
		)
	}
	if err != nil {
		return mapError(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, user.ID); err != nil {
		return mapError(err)
	}
	for _, role := range user.Roles {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`,
			user.ID, role.ID,
		); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit(ctx))
}

// ReplaceRoles atomically reassigns the user's role set.
func (r *UserRepository) ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return mapError(err)
	}
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`,
			userID, roleID,
		); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit(ctx))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepository) scanUserWithRoles(ctx context.Context, row scannable) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword); err != nil {
		return nil, mapError(err)
	}

	roles, err := r.userRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

func (r *UserRepository) userRoles(ctx context.Context, userID int64) ([]domain.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ro.id, ro.name
		FROM roles ro
		JOIN user_roles ur ON ur.role_id = ro.id
		WHERE ur.user_id = $1
		ORDER BY ro.name`, userID)
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
