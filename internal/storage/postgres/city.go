package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// CityRepository implements storage.CityRepository using PostgreSQL.
type CityRepository struct {
	pool *pgxpool.Pool
}

// NewCityRepository creates a new city repository.
func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

const cityColumns = `id, name, latitude, longitude, picture, user_id`

func (r *CityRepository) List(ctx context.Context) ([]domain.City, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cityColumns+` FROM cities ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		cities = append(cities, *city)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return cities, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cityColumns+` FROM cities WHERE id = $1`, id)
	return scanCity(row)
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cityColumns+` FROM cities WHERE name = $1`, name)
	return scanCity(row)
}

func (r *CityRepository) GetByLocation(ctx context.Context, latitude, longitude string) (*domain.City, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cityColumns+` FROM cities WHERE latitude = $1 AND longitude = $2`,
		latitude, longitude)
	return scanCity(row)
}

func (r *CityRepository) Save(ctx context.Context, city *domain.City) error {
	var userID *int64
	if city.User != nil {
		userID = &city.User.ID
	}

	if city.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO cities (name, latitude, longitude, picture, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			city.Name, city.Latitude, city.Longitude, nullable(city.Picture), userID,
		).Scan(&city.ID)
		return mapError(err)
	}

	_, err := r.pool.Exec(ctx, cityUpdateSQL,
		city.ID, city.Name, city.Latitude, city.Longitude, nullable(city.Picture), userID,
	)
	return mapError(err)
}

// cityUpdateSQL rewrites every mutable column, ownership included; the
// service back-fills the current owner when an update names none.
const cityUpdateSQL = `
		UPDATE cities SET
			name = $2,
			latitude = $3,
			longitude = $4,
			picture = $5,
			user_id = $6
		WHERE id = $1`

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows
type scannable interface {
	Scan(dest ...any) error
}

func scanCity(row scannable) (*domain.City, error) {
	var city domain.City
	var picture *string
	var userID *int64

	err := row.Scan(
		&city.ID,
		&city.Name,
		&city.Latitude,
		&city.Longitude,
		&picture,
		&userID,
	)
	if err != nil {
		return nil, mapError(err)
	}

	if picture != nil {
		city.Picture = *picture
	}
	if userID != nil {
		city.User = &domain.User{ID: *userID}
	}

	return &city, nil
}

// nullable stores "" as NULL so optional unique columns don't collide
// on the empty string.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
