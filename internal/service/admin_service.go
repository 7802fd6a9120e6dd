package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

// AdminService is the CRUD facade behind the console: create with
// validation, list whole collections with their joins, merge-style
// update-by-id, hard delete-by-id. It holds no state between calls.
type AdminService struct {
	countries ports.CountryRepository
	cities    ports.CityRepository
	tours     ports.TourRepository
	users     ports.UserRepository
	bookings  ports.BookingRepository
	validate  *validator.Validate
}

func NewAdminService(countries ports.CountryRepository, cities ports.CityRepository, tours ports.TourRepository, users ports.UserRepository, bookings ports.BookingRepository) *AdminService {
	return &AdminService{
		countries: countries,
		cities:    cities,
		tours:     tours,
		users:     users,
		bookings:  bookings,
		validate:  validator.New(),
	}
}

// --- Countries ---

func (s *AdminService) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	applyCountryDefaults(country)
	if err := s.validate.Struct(country); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.countries.Create(ctx, country)
}

// UpdateCountry merges the submitted fields over the stored row; absent
// fields keep their current values.
func (s *AdminService) UpdateCountry(ctx context.Context, id uuid.UUID, fields domain.CountryFields) (*domain.Country, error) {
	country, err := s.countries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	fields.Apply(country)
	applyCountryDefaults(country)
	if err := s.validate.Struct(country); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	updated, err := s.countries.Update(ctx, id, country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *AdminService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	if err := s.countries.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCountryNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.countries.ListAll(ctx)
}

// --- Cities ---

func (s *AdminService) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	if err := s.validate.Struct(city); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.cities.Create(ctx, city)
}

func (s *AdminService) UpdateCity(ctx context.Context, id uuid.UUID, fields domain.CityFields) (*domain.City, error) {
	city, err := s.cities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	fields.Apply(city)
	if err := s.validate.Struct(city); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	updated, err := s.cities.Update(ctx, id, city)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *AdminService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if err := s.cities.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCityNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.cities.ListAll(ctx)
}

// --- Tours ---

func (s *AdminService) CreateTour(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	if err := s.validate.Struct(tour); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.checkTourCityConsistency(ctx, tour); err != nil {
		return nil, err
	}
	tour.Stats.Normalize()
	return s.tours.Create(ctx, tour)
}

// UpdateTour merges fields over the stored row, re-checks the city/country
// pairing, and keeps the submitted trending flag: the write-time derivation
// runs at create and seed, the update path is the admin's override toggle.
func (s *AdminService) UpdateTour(ctx context.Context, id uuid.UUID, fields domain.TourFields) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	fields.Apply(tour)
	if err := s.validate.Struct(tour); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.checkTourCityConsistency(ctx, tour); err != nil {
		return nil, err
	}
	if tour.Stats.Breakdown.Verified == 0 {
		tour.Stats.Breakdown.Verified = int(tour.Stats.Rating * 20)
	}
	updated, err := s.tours.Update(ctx, id, tour)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *AdminService) DeleteTour(ctx context.Context, id uuid.UUID) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTourNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) ListTours(ctx context.Context) ([]domain.Tour, error) {
	return s.tours.ListAll(ctx)
}

// checkTourCityConsistency rejects a tour whose city exists but belongs to a
// different country. A missing city is a validation failure too: writes may
// not introduce dangling references, only deletes may leave them behind.
func (s *AdminService) checkTourCityConsistency(ctx context.Context, tour *domain.Tour) error {
	city, err := s.cities.FindByID(ctx, tour.CityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: city %s does not exist", ErrValidation, tour.CityID)
		}
		return err
	}
	if city.CountryID != tour.CountryID {
		return ErrTourCityMismatch
	}
	return nil
}

// --- Users & bookings ---

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

func (s *AdminService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func applyCountryDefaults(country *domain.Country) {
	if strings.TrimSpace(country.Currency) == "" {
		country.Currency = "USD"
	}
}
