package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

const countryColumns = `id, name, continent, iso_code, market_yield_tier, annual_visitors, visa_policy, currency, background_image`

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepo(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	const query = `
		INSERT INTO country (name, continent, iso_code, market_yield_tier, annual_visitors, visa_policy, currency, background_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + countryColumns

	var created domain.Country
	err := r.db.GetContext(ctx, &created, query,
		country.Name, country.Continent, country.ISOCode,
		country.MarketYieldTier, country.AnnualVisitors, country.VisaPolicy,
		country.Currency, country.BackgroundImage)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CountryRepository) Update(ctx context.Context, id uuid.UUID, country *domain.Country) (*domain.Country, error) {
	const query = `
		UPDATE country
		SET name = $2,
		    continent = $3,
		    iso_code = $4,
		    market_yield_tier = $5,
		    annual_visitors = $6,
		    visa_policy = $7,
		    currency = $8,
		    background_image = $9
		WHERE id = $1
		RETURNING ` + countryColumns

	var updated domain.Country
	err := r.db.GetContext(ctx, &updated, query, id,
		country.Name, country.Continent, country.ISOCode,
		country.MarketYieldTier, country.AnnualVisitors, country.VisaPolicy,
		country.Currency, country.BackgroundImage)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the row without touching cities or tours that reference it.
// Orphaned references are tolerated at read time.
func (r *CountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM country WHERE id = $1`, id)
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

func (r *CountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country WHERE id = $1`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, id); err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) List(ctx context.Context, filter domain.CountryListFilter, limit, offset int) ([]domain.Country, error) {
	query, params := buildCountryFilter(`SELECT `+countryColumns+` FROM country`, filter)
	query += ` ORDER BY annual_visitors DESC NULLS LAST, name ASC`
	query += paginationClause(&params, limit, offset)

	countries := make([]domain.Country, 0)
	if err := r.db.SelectContext(ctx, &countries, query, params...); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) Count(ctx context.Context, filter domain.CountryListFilter) (int, error) {
	query, params := buildCountryFilter(`SELECT COUNT(*) FROM country`, filter)
	var total int
	if err := r.db.GetContext(ctx, &total, query, params...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CountryRepository) ListAll(ctx context.Context) ([]domain.Country, error) {
	const query = `SELECT ` + countryColumns + ` FROM country ORDER BY name ASC`
	countries := make([]domain.Country, 0)
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, err
	}
	return countries, nil
}

func buildCountryFilter(base string, filter domain.CountryListFilter) (string, []any) {
	params := make([]any, 0, 1)
	query := base + ` WHERE 1=1`
	if pattern, ok := searchPattern(filter.Search); ok {
		params = append(params, pattern)
		query += ` AND name ILIKE ` + placeholder(len(params))
	}
	return query, params
}

var _ ports.CountryRepository = (*CountryRepository)(nil)
