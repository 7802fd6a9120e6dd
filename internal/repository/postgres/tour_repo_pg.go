package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

const tourColumns = `id, name, city_id, country_id, category, price, discount_price, duration, group_size, overview, highlights, images, itinerary, amenities, stats, is_featured, created_at, updated_at`

const tourJoinedColumns = `
	t.id, t.name, t.city_id, t.country_id, t.category, t.price, t.discount_price,
	t.duration, t.group_size, t.overview, t.highlights, t.images, t.itinerary,
	t.amenities, t.stats, t.is_featured, t.created_at, t.updated_at,
	ci.name AS city_name,
	co.name AS country_name
`

type TourRepository struct {
	db *sqlx.DB
}

func NewTourRepo(db *sqlx.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	const query = `
		INSERT INTO tour (name, city_id, country_id, category, price, discount_price, duration, group_size, overview, highlights, images, itinerary, amenities, stats, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + tourColumns

	var created domain.Tour
	err := r.db.GetContext(ctx, &created, query,
		tour.Name, tour.CityID, tour.CountryID, tour.Category, tour.Price,
		tour.DiscountPrice, tour.Duration, tour.GroupSize, tour.Overview,
		tour.Highlights, tour.Images, tour.Itinerary, tour.Amenities,
		tour.Stats, tour.IsFeatured)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *TourRepository) Update(ctx context.Context, id uuid.UUID, tour *domain.Tour) (*domain.Tour, error) {
	const query = `
		UPDATE tour
		SET name = $2,
		    city_id = $3,
		    country_id = $4,
		    category = $5,
		    price = $6,
		    discount_price = $7,
		    duration = $8,
		    group_size = $9,
		    overview = $10,
		    highlights = $11,
		    images = $12,
		    itinerary = $13,
		    amenities = $14,
		    stats = $15,
		    is_featured = $16,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tourColumns

	var updated domain.Tour
	err := r.db.GetContext(ctx, &updated, query, id,
		tour.Name, tour.CityID, tour.CountryID, tour.Category, tour.Price,
		tour.DiscountPrice, tour.Duration, tour.GroupSize, tour.Overview,
		tour.Highlights, tour.Images, tour.Itinerary, tour.Amenities,
		tour.Stats, tour.IsFeatured)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *TourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tour WHERE id = $1`, id)
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

func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	const query = `
		SELECT ` + tourJoinedColumns + `
		FROM tour t
		LEFT JOIN city ci ON ci.id = t.city_id
		LEFT JOIN country co ON co.id = t.country_id
		WHERE t.id = $1
	`
	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, id); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) List(ctx context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error) {
	base := `
		SELECT ` + tourJoinedColumns + `
		FROM tour t
		LEFT JOIN city ci ON ci.id = t.city_id
		LEFT JOIN country co ON co.id = t.country_id
	`
	query, params := buildTourFilter(base, filter)
	query += ` ORDER BY t.created_at DESC, t.id DESC`
	query += paginationClause(&params, limit, offset)

	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, query, params...); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *TourRepository) Count(ctx context.Context, filter domain.TourListFilter) (int, error) {
	query, params := buildTourFilter(`SELECT COUNT(*) FROM tour t`, filter)
	var total int
	if err := r.db.GetContext(ctx, &total, query, params...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TourRepository) ListAll(ctx context.Context) ([]domain.Tour, error) {
	const query = `
		SELECT ` + tourJoinedColumns + `
		FROM tour t
		LEFT JOIN city ci ON ci.id = t.city_id
		LEFT JOIN country co ON co.id = t.country_id
		ORDER BY t.created_at DESC, t.id DESC
	`
	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, err
	}
	return tours, nil
}

// tourRefsRow carries one tour plus the nullable slice of its joined country
// and city rows. A NULL ref id marks a dangling reference.
type tourRefsRow struct {
	domain.Tour
	RefCountryID   *uuid.UUID         `db:"ref_country_id"`
	RefCountryName *string            `db:"ref_country_name"`
	RefContinent   *string            `db:"ref_continent"`
	RefVisaPolicy  *domain.VisaPolicy `db:"ref_visa_policy"`
	RefCurrency    *string            `db:"ref_currency"`
	RefYieldTier   *domain.YieldTier  `db:"ref_yield_tier"`
	RefCityID      *uuid.UUID         `db:"ref_city_id"`
	RefCityName    *string            `db:"ref_city_name"`
}

func (r *TourRepository) ListWithRefs(ctx context.Context) ([]domain.TourWithRefs, error) {
	const query = `
		SELECT t.id, t.name, t.city_id, t.country_id, t.category, t.price, t.discount_price,
		       t.duration, t.group_size, t.overview, t.highlights, t.images, t.itinerary,
		       t.amenities, t.stats, t.is_featured, t.created_at, t.updated_at,
		       co.id AS ref_country_id,
		       co.name AS ref_country_name,
		       co.continent AS ref_continent,
		       co.visa_policy AS ref_visa_policy,
		       co.currency AS ref_currency,
		       co.market_yield_tier AS ref_yield_tier,
		       ci.id AS ref_city_id,
		       ci.name AS ref_city_name
		FROM tour t
		LEFT JOIN country co ON co.id = t.country_id
		LEFT JOIN city ci ON ci.id = t.city_id
		ORDER BY t.created_at ASC, t.id ASC
	`
	rows := make([]tourRefsRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	out := make([]domain.TourWithRefs, 0, len(rows))
	for _, row := range rows {
		item := domain.TourWithRefs{Tour: row.Tour}
		if row.RefCountryID != nil {
			item.Country = &domain.Country{
				ID:              *row.RefCountryID,
				Name:            derefString(row.RefCountryName),
				Continent:       derefString(row.RefContinent),
				VisaPolicy:      row.RefVisaPolicy,
				Currency:        derefString(row.RefCurrency),
				MarketYieldTier: row.RefYieldTier,
			}
		}
		if row.RefCityID != nil {
			item.City = &domain.City{
				ID:        *row.RefCityID,
				Name:      derefString(row.RefCityName),
				CountryID: row.Tour.CountryID,
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}

func buildTourFilter(base string, filter domain.TourListFilter) (string, []any) {
	params := make([]any, 0, 3)
	query := base + ` WHERE 1=1`
	if pattern, ok := searchPattern(filter.Search); ok {
		params = append(params, pattern)
		query += ` AND t.name ILIKE ` + placeholder(len(params))
	}
	if filter.CountryID != nil {
		params = append(params, *filter.CountryID)
		query += ` AND t.country_id = ` + placeholder(len(params))
	}
	if filter.CityID != nil {
		params = append(params, *filter.CityID)
		query += ` AND t.city_id = ` + placeholder(len(params))
	}
	return query, params
}

var _ ports.TourRepository = (*TourRepository)(nil)
