package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cityguide/internal/domain"
)

// PoiRepository implements storage.PoiRepository using PostgreSQL.
type PoiRepository struct {
	pool *pgxpool.Pool
}

// NewPoiRepository creates a new poi repository.
func NewPoiRepository(pool *pgxpool.Pool) *PoiRepository {
	return &PoiRepository{pool: pool}
}

const poiColumns = `id, name, address, latitude, longitude, picture, city_id, type_id`

func (r *PoiRepository) List(ctx context.Context) ([]domain.Poi, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+poiColumns+` FROM pois ORDER BY name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectPois(rows)
}

func (r *PoiRepository) ListByCity(ctx context.Context, cityID int64) ([]domain.Poi, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+poiColumns+` FROM pois WHERE city_id = $1 ORDER BY name`, cityID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectPois(rows)
}

func (r *PoiRepository) GetByID(ctx context.Context, id int64) (*domain.Poi, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+poiColumns+` FROM pois WHERE id = $1`, id)
	return scanPoi(row)
}

func (r *PoiRepository) GetByName(ctx context.Context, name string) (*domain.Poi, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+poiColumns+` FROM pois WHERE name = $1`, name)
	return scanPoi(row)
}

func (r *PoiRepository) GetByLocation(ctx context.Context, latitude, longitude string) (*domain.Poi, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+poiColumns+` FROM pois WHERE latitude = $1 AND longitude = $2`,
		latitude, longitude)
	return scanPoi(row)
}

// Save persists the poi and replaces its tag set in one transaction.
func (r *PoiRepository) Save(ctx context.Context, poi *domain.Poi) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	if poi.ID == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO pois (name, address, latitude, longitude, picture, city_id, type_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			poi.Name, poi.Address, poi.Latitude, poi.Longitude,
			nullable(poi.Picture), poi.City.ID, poi.Type.ID,
		).Scan(&poi.ID)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE pois SET
				name = $2,
				address = $3,
				latitude = $4,
				longitude = $5,
				picture = $6,
				city_id = $7,
				type_id = $8
			WHERE id = $1`,
			poi.ID, poi.Name, poi.Address, poi.Latitude, poi.Longitude,
			nullable(poi.Picture), poi.City.ID, poi.Type.ID,
		)
	}
	if err != nil {
		return mapError(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM poi_tags WHERE poi_id = $1`, poi.ID); err != nil {
		return mapError(err)
	}
	for _, tag := range poi.Tags {
		if _, err := tx.Exec(ctx, `
			INSERT INTO poi_tags (poi_id, tag_id) VALUES ($1, $2)`,
			poi.ID, tag.ID,
		); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit(ctx))
}

func (r *PoiRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM pois WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanPoi(row scannable) (*domain.Poi, error) {
	var poi domain.Poi
	var picture *string
	var cityID, typeID int64

	err := row.Scan(
		&poi.ID,
		&poi.Name,
		&poi.Address,
		&poi.Latitude,
		&poi.Longitude,
		&picture,
		&cityID,
		&typeID,
	)
	if err != nil {
		return nil, mapError(err)
	}

	if picture != nil {
		poi.Picture = *picture
	}
	poi.City = &domain.City{ID: cityID}
	poi.Type = &domain.Type{ID: typeID}

	return &poi, nil
}

func collectPois(rows pgx.Rows) ([]domain.Poi, error) {
	var pois []domain.Poi
	for rows.Next() {
		poi, err := scanPoi(rows)
		if err != nil {
			return nil, err
		}
		pois = append(pois, *poi)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return pois, nil
}
