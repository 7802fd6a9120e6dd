package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

// PageLimits holds the per-entity default page sizes for the public listings.
type PageLimits struct {
	Countries int
	Cities    int
	Tours     int
}

// CatalogService serves the public storefront listings: filtered, paginated
// reads with their reference joins, wrapped in a {data, meta} envelope. The
// data and count queries share one filter value so the envelope total always
// describes the same predicate as the page.
type CatalogService struct {
	countries ports.CountryRepository
	cities    ports.CityRepository
	tours     ports.TourRepository
	limits    PageLimits
}

func NewCatalogService(countries ports.CountryRepository, cities ports.CityRepository, tours ports.TourRepository, limits PageLimits) *CatalogService {
	if limits.Countries <= 0 {
		limits.Countries = 10
	}
	if limits.Cities <= 0 {
		limits.Cities = 12
	}
	if limits.Tours <= 0 {
		limits.Tours = 10
	}
	return &CatalogService{countries: countries, cities: cities, tours: tours, limits: limits}
}

func (s *CatalogService) ListCountries(ctx context.Context, filter domain.CountryListFilter, page, limit int) (domain.Page[domain.Country], error) {
	page, limit, offset := normalizePage(page, limit, s.limits.Countries)
	data, err := s.countries.List(ctx, filter, limit, offset)
	if err != nil {
		return domain.Page[domain.Country]{}, err
	}
	total, err := s.countries.Count(ctx, filter)
	if err != nil {
		return domain.Page[domain.Country]{}, err
	}
	return domain.NewPage(data, total, page, limit), nil
}

func (s *CatalogService) GetCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	country, err := s.countries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return country, nil
}

func (s *CatalogService) ListCities(ctx context.Context, filter domain.CityListFilter, page, limit int) (domain.Page[domain.City], error) {
	page, limit, offset := normalizePage(page, limit, s.limits.Cities)
	data, err := s.cities.List(ctx, filter, limit, offset)
	if err != nil {
		return domain.Page[domain.City]{}, err
	}
	total, err := s.cities.Count(ctx, filter)
	if err != nil {
		return domain.Page[domain.City]{}, err
	}
	return domain.NewPage(data, total, page, limit), nil
}

func (s *CatalogService) GetCity(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	city, err := s.cities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return city, nil
}

func (s *CatalogService) ListTours(ctx context.Context, filter domain.TourListFilter, page, limit int) (domain.Page[domain.Tour], error) {
	page, limit, offset := normalizePage(page, limit, s.limits.Tours)
	data, err := s.tours.List(ctx, filter, limit, offset)
	if err != nil {
		return domain.Page[domain.Tour]{}, err
	}
	total, err := s.tours.Count(ctx, filter)
	if err != nil {
		return domain.Page[domain.Tour]{}, err
	}
	return domain.NewPage(data, total, page, limit), nil
}

func (s *CatalogService) GetTour(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return tour, nil
}

// normalizePage clamps malformed pagination input to defaults instead of
// failing: page below 1 becomes 1, limit below 1 becomes the entity default.
func normalizePage(page, limit, defaultLimit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}
