package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

const cityColumns = `id, name, country_id, longitude, latitude, description, top_attractions, images, economics, time_zone, popularity_index`

type CityRepository struct {
	db *sqlx.DB
}

func NewCityRepo(db *sqlx.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	const query = `
		INSERT INTO city (name, country_id, longitude, latitude, description, top_attractions, images, economics, time_zone, popularity_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + cityColumns

	var created domain.City
	err := r.db.GetContext(ctx, &created, query,
		city.Name, city.CountryID, city.Longitude, city.Latitude,
		city.Description, city.TopAttractions, city.Images, city.Economics,
		city.TimeZone, city.PopularityIndex)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CityRepository) Update(ctx context.Context, id uuid.UUID, city *domain.City) (*domain.City, error) {
	const query = `
		UPDATE city
		SET name = $2,
		    country_id = $3,
		    longitude = $4,
		    latitude = $5,
		    description = $6,
		    top_attractions = $7,
		    images = $8,
		    economics = $9,
		    time_zone = $10,
		    popularity_index = $11
		WHERE id = $1
		RETURNING ` + cityColumns

	var updated domain.City
	err := r.db.GetContext(ctx, &updated, query, id,
		city.Name, city.CountryID, city.Longitude, city.Latitude,
		city.Description, city.TopAttractions, city.Images, city.Economics,
		city.TimeZone, city.PopularityIndex)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *CityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM city WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	const query = `
		SELECT c.id, c.name, c.country_id, c.longitude, c.latitude, c.description,
		       c.top_attractions, c.images, c.economics, c.time_zone, c.popularity_index,
		       co.name AS country_name
		FROM city c
		LEFT JOIN country co ON co.id = c.country_id
		WHERE c.id = $1
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) List(ctx context.Context, filter domain.CityListFilter, limit, offset int) ([]domain.City, error) {
	base := `
		SELECT c.id, c.name, c.country_id, c.longitude, c.latitude, c.description,
		       c.top_attractions, c.images, c.economics, c.time_zone, c.popularity_index,
		       co.name AS country_name
		FROM city c
		LEFT JOIN country co ON co.id = c.country_id
	`
	query, params := buildCityFilter(base, filter)
	query += ` ORDER BY c.popularity_index DESC, c.name ASC`
	query += paginationClause(&params, limit, offset)

	cities := make([]domain.City, 0)
	if err := r.db.SelectContext(ctx, &cities, query, params...); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) Count(ctx context.Context, filter domain.CityListFilter) (int, error) {
	query, params := buildCityFilter(`SELECT COUNT(*) FROM city c`, filter)
	var total int
	if err := r.db.GetContext(ctx, &total, query, params...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CityRepository) ListAll(ctx context.Context) ([]domain.City, error) {
	const query = `
		SELECT c.id, c.name, c.country_id, c.longitude, c.latitude, c.description,
		       c.top_attractions, c.images, c.economics, c.time_zone, c.popularity_index,
		       co.name AS country_name
		FROM city c
		LEFT JOIN country co ON co.id = c.country_id
		ORDER BY c.name ASC
	`
	cities := make([]domain.City, 0)
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, err
	}
	return cities, nil
}

func buildCityFilter(base string, filter domain.CityListFilter) (string, []any) {
	params := make([]any, 0, 2)
	query := base + ` WHERE 1=1`
	if pattern, ok := searchPattern(filter.Search); ok {
		params = append(params, pattern)
		query += ` AND c.name ILIKE ` + placeholder(len(params))
	}
	if filter.CountryID != nil {
		params = append(params, *filter.CountryID)
		query += ` AND c.country_id = ` + placeholder(len(params))
	}
	return query, params
}

var _ ports.CityRepository = (*CityRepository)(nil)
