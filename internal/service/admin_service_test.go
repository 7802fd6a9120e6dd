package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

type adminFixture struct {
	countries *memoryCountryRepo
	cities    *memoryCityRepo
	tours     *memoryTourRepo
	users     *memoryUserRepo
	bookings  *memoryBookingRepo
	svc       *AdminService
}

func newAdminFixture() *adminFixture {
	countries := newMemoryCountryRepo()
	cities := newMemoryCityRepo()
	tours := newMemoryTourRepo(countries, cities)
	users := newMemoryUserRepo()
	bookings := newMemoryBookingRepo()
	return &adminFixture{
		countries: countries,
		cities:    cities,
		tours:     tours,
		users:     users,
		bookings:  bookings,
		svc:       NewAdminService(countries, cities, tours, users, bookings),
	}
}

func (f *adminFixture) seedCountryAndCity(t *testing.T) (domain.Country, domain.City) {
	t.Helper()
	country, err := f.svc.CreateCountry(context.Background(), &domain.Country{
		Name: "Morocco", Continent: "Africa", ISOCode: "MA", Currency: "MAD",
	})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	city, err := f.svc.CreateCity(context.Background(), &domain.City{
		Name: "Marrakech", CountryID: country.ID, PopularityIndex: 80,
	})
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}
	return *country, *city
}

func validTour(country domain.Country, city domain.City) domain.Tour {
	return domain.Tour{
		Name:      "Medina and Souks",
		CityID:    city.ID,
		CountryID: country.ID,
		Category:  domain.TourCategoryCulture,
		Price:     75,
		Duration:  "4 Hours",
		GroupSize: "2-10 People",
		Overview:  "Guided walk through the old city.",
	}
}

func TestAdminServiceCreateCountryValidatesAndDefaults(t *testing.T) {
	f := newAdminFixture()

	if _, err := f.svc.CreateCountry(context.Background(), &domain.Country{Name: "Nowhere"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing continent, got %v", err)
	}

	created, err := f.svc.CreateCountry(context.Background(), &domain.Country{
		Name: "Ecuador", Continent: "South America", ISOCode: "EC",
	})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	if created.Currency != "USD" {
		t.Fatalf("expected USD currency default, got %q", created.Currency)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected id to be assigned")
	}
}

func TestAdminServiceCreateTourDerivesStats(t *testing.T) {
	f := newAdminFixture()
	country, city := f.seedCountryAndCity(t)

	tour := validTour(country, city)
	tour.Stats = domain.TourStats{Rating: 4.9, ReviewsCount: 200}

	created, err := f.svc.CreateTour(context.Background(), &tour)
	if err != nil {
		t.Fatalf("CreateTour: %v", err)
	}
	if !created.Stats.IsTrending {
		t.Fatalf("rating above threshold must set trending")
	}
	if created.Stats.Breakdown.Verified != 98 {
		t.Fatalf("expected verified 98, got %d", created.Stats.Breakdown.Verified)
	}

	flat := validTour(country, city)
	flat.Name = "Atlas Foothills"
	flat.Stats = domain.TourStats{Rating: 4.8, IsTrending: true}
	created, err = f.svc.CreateTour(context.Background(), &flat)
	if err != nil {
		t.Fatalf("CreateTour: %v", err)
	}
	if created.Stats.IsTrending {
		t.Fatalf("create must recompute trending: 4.8 is not above the threshold")
	}
}

func TestAdminServiceUpdateTourKeepsTrendingOverride(t *testing.T) {
	f := newAdminFixture()
	country, city := f.seedCountryAndCity(t)

	tour := validTour(country, city)
	tour.Stats = domain.TourStats{Rating: 4.2}
	created, err := f.svc.CreateTour(context.Background(), &tour)
	if err != nil {
		t.Fatalf("CreateTour: %v", err)
	}

	stats := domain.TourStats{Rating: 4.2, IsTrending: true}
	updated, err := f.svc.UpdateTour(context.Background(), created.ID, domain.TourFields{Stats: &stats})
	if err != nil {
		t.Fatalf("UpdateTour: %v", err)
	}
	if !updated.Stats.IsTrending {
		t.Fatalf("update must honor the submitted trending flag")
	}
	if updated.Stats.Breakdown.Verified != 84 {
		t.Fatalf("update must backfill verified from rating, got %d", updated.Stats.Breakdown.Verified)
	}
}

func TestAdminServiceUpdateTourMergesPartialFields(t *testing.T) {
	f := newAdminFixture()
	country, city := f.seedCountryAndCity(t)

	tour := validTour(country, city)
	tour.Stats = domain.TourStats{Rating: 4.9, ReviewsCount: 12}
	created, err := f.svc.CreateTour(context.Background(), &tour)
	if err != nil {
		t.Fatalf("CreateTour: %v", err)
	}

	newPrice := 99.0
	updated, err := f.svc.UpdateTour(context.Background(), created.ID, domain.TourFields{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateTour: %v", err)
	}
	if updated.Price != 99.0 {
		t.Fatalf("expected price 99, got %v", updated.Price)
	}
	if updated.Name != created.Name || updated.Overview != created.Overview {
		t.Fatalf("untouched fields must survive the merge")
	}
	if updated.Stats.Rating != 4.9 || !updated.Stats.IsTrending {
		t.Fatalf("stats must survive a merge that does not touch them: %+v", updated.Stats)
	}

	if _, err := f.svc.UpdateTour(context.Background(), uuid.New(), domain.TourFields{Price: &newPrice}); !errors.Is(err, ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestAdminServiceUpdateCountryMergesPartialFields(t *testing.T) {
	f := newAdminFixture()
	country, _ := f.seedCountryAndCity(t)

	visitors := int64(15_000_000)
	updated, err := f.svc.UpdateCountry(context.Background(), country.ID, domain.CountryFields{AnnualVisitors: &visitors})
	if err != nil {
		t.Fatalf("UpdateCountry: %v", err)
	}
	if updated.AnnualVisitors == nil || *updated.AnnualVisitors != visitors {
		t.Fatalf("expected visitors to be set, got %v", updated.AnnualVisitors)
	}
	if updated.Name != country.Name || updated.Currency != country.Currency {
		t.Fatalf("untouched fields must survive the merge")
	}

	blank := ""
	if _, err := f.svc.UpdateCountry(context.Background(), country.ID, domain.CountryFields{Name: &blank}); !errors.Is(err, ErrValidation) {
		t.Fatalf("merged record must still validate, got %v", err)
	}
}

func TestAdminServiceCreateTourRejectsMismatchedCity(t *testing.T) {
	f := newAdminFixture()
	country, _ := f.seedCountryAndCity(t)

	other, err := f.svc.CreateCountry(context.Background(), &domain.Country{
		Name: "Tunisia", Continent: "Africa", ISOCode: "TN", Currency: "TND",
	})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	tunis, err := f.svc.CreateCity(context.Background(), &domain.City{Name: "Tunis", CountryID: other.ID})
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	tour := validTour(country, *tunis)
	if _, err := f.svc.CreateTour(context.Background(), &tour); !errors.Is(err, ErrTourCityMismatch) {
		t.Fatalf("expected ErrTourCityMismatch, got %v", err)
	}

	ghost := validTour(country, domain.City{ID: uuid.New()})
	if _, err := f.svc.CreateTour(context.Background(), &ghost); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing city, got %v", err)
	}
}

func TestAdminServiceDeleteCountryLeavesToursDangling(t *testing.T) {
	f := newAdminFixture()
	country, city := f.seedCountryAndCity(t)

	tour := validTour(country, city)
	created, err := f.svc.CreateTour(context.Background(), &tour)
	if err != nil {
		t.Fatalf("CreateTour: %v", err)
	}

	if err := f.svc.DeleteCountry(context.Background(), country.ID); err != nil {
		t.Fatalf("DeleteCountry: %v", err)
	}

	tours, err := f.svc.ListTours(context.Background())
	if err != nil {
		t.Fatalf("ListTours: %v", err)
	}
	if len(tours) != 1 || tours[0].ID != created.ID {
		t.Fatalf("tour must survive the country delete")
	}

	refs, err := f.tours.ListWithRefs(context.Background())
	if err != nil {
		t.Fatalf("ListWithRefs: %v", err)
	}
	if refs[0].Country != nil {
		t.Fatalf("deleted country must resolve to nil ref")
	}
	if refs[0].City == nil {
		t.Fatalf("intact city ref must still resolve")
	}
}

func TestAdminServiceDeleteNotFound(t *testing.T) {
	f := newAdminFixture()

	if err := f.svc.DeleteCountry(context.Background(), uuid.New()); !errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
	if err := f.svc.DeleteCity(context.Background(), uuid.New()); !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
	if err := f.svc.DeleteTour(context.Background(), uuid.New()); !errors.Is(err, ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestAdminServiceListUsersOmitsPasswordMaterial(t *testing.T) {
	f := newAdminFixture()

	if _, err := f.users.Create(context.Background(), &domain.User{
		Name: "Dana", Email: "dana@example.com",
		PasswordHash: []byte("hash"), PasswordSalt: []byte("salt"),
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	users, err := f.svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].PasswordHash != nil || users[0].PasswordSalt != nil {
		t.Fatalf("password material must never leave the repository")
	}
}
