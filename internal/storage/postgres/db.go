// Package postgres implements the storage interfaces using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // migrate postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // migrate file source
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
	"cityguide/internal/storage"
)

// DB wraps the PostgreSQL connection pool and provides access to repositories.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL database connection.
func New(ctx context.Context, connString string) (*DB, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes all connections in the pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying connection pool.
// Use this sparingly - prefer using repository methods.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Repositories returns all repositories backed by this database.
func (db *DB) Repositories() *storage.Repositories {
	return &storage.Repositories{
		Cities: NewCityRepository(db.pool),
		Pois:   NewPoiRepository(db.pool),
		Types:  NewTypeRepository(db.pool),
		Tags:   NewTagRepository(db.pool),
		Roles:  NewRoleRepository(db.pool),
		Users:  NewUserRepository(db.pool),
	}
}

// RunMigrations applies pending schema migrations from sourceURL
// (e.g. "file://./migrations") against databaseURL.
func RunMigrations(sourceURL, databaseURL string) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

// Error code constants for PostgreSQL
const (
	uniqueViolationCode = "23505"
	foreignKeyViolation = "23503"
)

// constraintColumns resolves a named constraint to the logical column
// carried into the domain error. The schema names every unique and
// foreign-key constraint so violations never need message scraping.
var constraintColumns = map[string]string{
	"uq_cities_name":     "name",
	"uq_cities_location": "location",
	"uq_cities_picture":  "picture",
	"uq_pois_name":       "name",
	"uq_pois_address":    "address",
	"uq_pois_location":   "location",
	"uq_pois_picture":    "picture",
	"uq_types_name":      "name",
	"uq_types_logo":      "logo",
	"uq_types_color":     "color",
	"uq_tags_name":       "name",
	"uq_roles_name":      "name",
	"uq_users_username":  "username",
	"uq_users_email":     "email",
	"fk_cities_user":     "user_id",
	"fk_pois_city":       "city_id",
	"fk_pois_type":       "type_id",
	"fk_poi_tags_poi":    "poi_id",
	"fk_poi_tags_tag":    "tag_id",
	"fk_user_roles_user": "user_id",
	"fk_user_roles_role": "role_id",
}

// violatedColumn resolves the column behind a constraint violation.
// The constraint name is authoritative; the driver detail string
// ("... Key (column)=(value) ...") is kept as a fallback for
// constraints created outside the migrations.
func violatedColumn(pgErr *pgconn.PgError) string {
	if col, ok := constraintColumns[pgErr.ConstraintName]; ok {
		return col
	}
	return columnFromDetail(pgErr.Detail)
}

// columnFromDetail extracts the column name between the "Key (" marker
// and the following ")=" in a driver detail string. Returns "" when
// the detail does not match that shape.
func columnFromDetail(detail string) string {
	const marker = "Key ("
	start := strings.Index(detail, marker)
	if start == -1 {
		return ""
	}
	rest := detail[start+len(marker):]
	end := strings.Index(rest, ")=")
	if end == -1 {
		return ""
	}
	return rest[:end]
}

// mapError converts PostgreSQL errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &domain.DuplicateError{Column: violatedColumn(pgErr)}
		case foreignKeyViolation:
			return &domain.ReferenceError{Column: violatedColumn(pgErr)}
		}
	}

	return err
}
