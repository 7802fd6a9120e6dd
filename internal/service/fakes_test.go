package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

// In-memory repository fakes shared by the service tests. Slices keep
// insertion order, ids are assigned on create, and a missing row surfaces as
// sql.ErrNoRows just like the postgres implementations.

type memoryCountryRepo struct {
	rows []domain.Country
}

func newMemoryCountryRepo() *memoryCountryRepo {
	return &memoryCountryRepo{}
}

func (r *memoryCountryRepo) Create(_ context.Context, country *domain.Country) (*domain.Country, error) {
	stored := *country
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryCountryRepo) Update(_ context.Context, id uuid.UUID, country *domain.Country) (*domain.Country, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			updated := *country
			updated.ID = id
			r.rows[i] = updated
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryCountryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *memoryCountryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Country, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryCountryRepo) filtered(filter domain.CountryListFilter) []domain.Country {
	out := make([]domain.Country, 0, len(r.rows))
	for _, row := range r.rows {
		if domain.NameMatches(row.Name, filter.Search) {
			out = append(out, row)
		}
	}
	return out
}

func (r *memoryCountryRepo) List(_ context.Context, filter domain.CountryListFilter, limit, offset int) ([]domain.Country, error) {
	return slicePage(r.filtered(filter), limit, offset), nil
}

func (r *memoryCountryRepo) Count(_ context.Context, filter domain.CountryListFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

func (r *memoryCountryRepo) ListAll(_ context.Context) ([]domain.Country, error) {
	return append([]domain.Country(nil), r.rows...), nil
}

type memoryCityRepo struct {
	rows []domain.City
}

func newMemoryCityRepo() *memoryCityRepo {
	return &memoryCityRepo{}
}

func (r *memoryCityRepo) Create(_ context.Context, city *domain.City) (*domain.City, error) {
	stored := *city
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryCityRepo) Update(_ context.Context, id uuid.UUID, city *domain.City) (*domain.City, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			updated := *city
			updated.ID = id
			r.rows[i] = updated
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryCityRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *memoryCityRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.City, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryCityRepo) filtered(filter domain.CityListFilter) []domain.City {
	out := make([]domain.City, 0, len(r.rows))
	for _, row := range r.rows {
		if !domain.NameMatches(row.Name, filter.Search) {
			continue
		}
		if filter.CountryID != nil && row.CountryID != *filter.CountryID {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r *memoryCityRepo) List(_ context.Context, filter domain.CityListFilter, limit, offset int) ([]domain.City, error) {
	return slicePage(r.filtered(filter), limit, offset), nil
}

func (r *memoryCityRepo) Count(_ context.Context, filter domain.CityListFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

func (r *memoryCityRepo) ListAll(_ context.Context) ([]domain.City, error) {
	return append([]domain.City(nil), r.rows...), nil
}

// memoryTourRepo resolves references against sibling fakes to mirror the
// LEFT JOIN behavior: a missing country or city yields a nil ref, not an
// error.
type memoryTourRepo struct {
	rows      []domain.Tour
	countries *memoryCountryRepo
	cities    *memoryCityRepo
}

func newMemoryTourRepo(countries *memoryCountryRepo, cities *memoryCityRepo) *memoryTourRepo {
	return &memoryTourRepo{countries: countries, cities: cities}
}

func (r *memoryTourRepo) Create(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	stored := *tour
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryTourRepo) Update(_ context.Context, id uuid.UUID, tour *domain.Tour) (*domain.Tour, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			updated := *tour
			updated.ID = id
			r.rows[i] = updated
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryTourRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *memoryTourRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Tour, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryTourRepo) filtered(filter domain.TourListFilter) []domain.Tour {
	out := make([]domain.Tour, 0, len(r.rows))
	for _, row := range r.rows {
		if !domain.NameMatches(row.Name, filter.Search) {
			continue
		}
		if filter.CountryID != nil && row.CountryID != *filter.CountryID {
			continue
		}
		if filter.CityID != nil && row.CityID != *filter.CityID {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r *memoryTourRepo) List(_ context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error) {
	return slicePage(r.filtered(filter), limit, offset), nil
}

func (r *memoryTourRepo) Count(_ context.Context, filter domain.TourListFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

func (r *memoryTourRepo) ListAll(_ context.Context) ([]domain.Tour, error) {
	return append([]domain.Tour(nil), r.rows...), nil
}

func (r *memoryTourRepo) ListWithRefs(ctx context.Context) ([]domain.TourWithRefs, error) {
	out := make([]domain.TourWithRefs, 0, len(r.rows))
	for _, row := range r.rows {
		item := domain.TourWithRefs{Tour: row}
		if country, err := r.countries.FindByID(ctx, row.CountryID); err == nil {
			item.Country = country
		}
		if city, err := r.cities.FindByID(ctx, row.CityID); err == nil {
			item.City = city
		}
		out = append(out, item)
	}
	return out, nil
}

type memoryUserRepo struct {
	rows []domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	stored := *user
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.rows {
		if r.rows[i].Email == email {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.rows))
	for _, row := range r.rows {
		row.PasswordHash = nil
		row.PasswordSalt = nil
		out = append(out, row)
	}
	return out, nil
}

type memoryBookingRepo struct {
	rows []domain.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{}
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	return append([]domain.Booking(nil), r.rows...), nil
}

type memoryRegionRepo struct {
	rows []domain.Region
}

func newMemoryRegionRepo() *memoryRegionRepo {
	return &memoryRegionRepo{}
}

func (r *memoryRegionRepo) Create(_ context.Context, region *domain.Region) (*domain.Region, error) {
	stored := *region
	stored.ID = uuid.New()
	r.rows = append(r.rows, stored)
	return &stored, nil
}

func (r *memoryRegionRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Region, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryRegionRepo) FindByName(_ context.Context, name string) (*domain.Region, error) {
	for i := range r.rows {
		if r.rows[i].Name == name {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryRegionRepo) ListAll(_ context.Context) ([]domain.Region, error) {
	return append([]domain.Region(nil), r.rows...), nil
}

func (r *memoryRegionRepo) ReplacePackages(_ context.Context, id uuid.UUID, packages domain.RegionPackages) (*domain.Region, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Packages = packages
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

type stubStatsRepo struct {
	users, bookings, tours, cities, countries int
}

func (r *stubStatsRepo) CountUsers(context.Context) (int, error)     { return r.users, nil }
func (r *stubStatsRepo) CountBookings(context.Context) (int, error)  { return r.bookings, nil }
func (r *stubStatsRepo) CountTours(context.Context) (int, error)     { return r.tours, nil }
func (r *stubStatsRepo) CountCities(context.Context) (int, error)    { return r.cities, nil }
func (r *stubStatsRepo) CountCountries(context.Context) (int, error) { return r.countries, nil }

func slicePage[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return append([]T(nil), rows[offset:end]...)
}
