package main

import (
	"context"
	"log"

	"github.com/travia-app/travia-backend/internal/config"
	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/postgres"
	"github.com/travia-app/travia-backend/internal/service"
	"github.com/travia-app/travia-backend/internal/util"
)

// seedTour is the flat authoring shape: country and city by name, resolved
// to ids as rows are inserted.
type seedTour struct {
	country  string
	city     string
	name     string
	category domain.TourCategory
	price    float64
	duration string
	group    string
	overview string
	images   []string
	rating   float64
	reviews  int
}

type seedCountry struct {
	name      string
	continent string
	iso       string
	tier      domain.YieldTier
	visa      domain.VisaPolicy
	currency  string
	visitors  int64
}

type seedCity struct {
	country    string
	name       string
	timeZone   string
	popularity int
}

var countries = []seedCountry{
	{"France", "Europe", "FR", domain.YieldTierHigh, domain.VisaPolicySchengen, "EUR", 89_000_000},
	{"Italy", "Europe", "IT", domain.YieldTierHigh, domain.VisaPolicySchengen, "EUR", 65_000_000},
	{"Japan", "Asia", "JP", domain.YieldTierHigh, domain.VisaPolicyFree, "JPY", 32_000_000},
	{"Thailand", "Asia", "TH", domain.YieldTierMedium, domain.VisaPolicyOnArrival, "THB", 40_000_000},
	{"Egypt", "Africa", "EG", domain.YieldTierLow, domain.VisaPolicyEVisa, "EGP", 13_000_000},
	{"Brazil", "South America", "BR", domain.YieldTierMedium, domain.VisaPolicyFree, "BRL", 6_600_000},
}

var cities = []seedCity{
	{"France", "Paris", "Europe/Paris", 98},
	{"Italy", "Rome", "Europe/Rome", 95},
	{"Japan", "Tokyo", "Asia/Tokyo", 96},
	{"Japan", "Kyoto", "Asia/Tokyo", 88},
	{"Thailand", "Bangkok", "Asia/Bangkok", 90},
	{"Egypt", "Cairo", "Africa/Cairo", 82},
	{"Brazil", "Rio de Janeiro", "America/Sao_Paulo", 87},
}

var tours = []seedTour{
	{"France", "Paris", "Paris Icons Walk", domain.TourCategoryCulture, 249, "3 Days", "2-12 People", "The Louvre, Montmartre, and the Seine at golden hour.", []string{"https://images.travia.app/paris-icons.jpg"}, 4.9, 1284},
	{"Italy", "Rome", "Ancient Rome Uncovered", domain.TourCategoryHistory, 199, "2 Days", "2-15 People", "Colosseum underground, the Forum, and the Palatine Hill.", []string{"https://images.travia.app/rome-ancient.jpg"}, 4.7, 956},
	{"Japan", "Tokyo", "Tokyo After Dark", domain.TourCategoryFood, 159, "1 Day", "2-8 People", "Izakaya alleys of Shinjuku with a local chef.", []string{"https://images.travia.app/tokyo-night.jpg"}, 4.85, 642},
	{"Japan", "Kyoto", "Kyoto Temples and Tea", domain.TourCategoryCulture, 179, "2 Days", "2-10 People", "Fushimi Inari at dawn, a tea ceremony in Gion.", []string{"https://images.travia.app/kyoto-temples.jpg"}, 4.9, 873},
	{"Thailand", "Bangkok", "Bangkok Canal Adventure", domain.TourCategoryAdventure, 89, "1 Day", "4-16 People", "Longtail boats through Thonburi's khlongs and floating markets.", []string{"https://images.travia.app/bangkok-canals.jpg"}, 4.6, 511},
	{"Egypt", "Cairo", "Pyramids at Sunrise", domain.TourCategoryHistory, 129, "1 Day", "2-20 People", "Giza plateau before the crowds, then the Grand Egyptian Museum.", []string{"https://images.travia.app/giza-sunrise.jpg"}, 4.8, 1430},
	{"Brazil", "Rio de Janeiro", "Rio Peaks and Beaches", domain.TourCategoryNature, 139, "2 Days", "2-12 People", "Sugarloaf, Corcovado, and a day on Ipanema.", []string{"https://images.travia.app/rio-peaks.jpg"}, 4.75, 688},
}

func main() {
	cfg := config.Load()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	countryRepo := postgres.NewCountryRepo(db)
	cityRepo := postgres.NewCityRepo(db)
	tourRepo := postgres.NewTourRepo(db)
	userRepo := postgres.NewUserRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)

	admin := service.NewAdminService(countryRepo, cityRepo, tourRepo, userRepo, bookingRepo)

	countryIDs := make(map[string]domain.Country, len(countries))
	for _, c := range countries {
		tier := c.tier
		visa := c.visa
		visitors := c.visitors
		created, err := admin.CreateCountry(ctx, &domain.Country{
			Name:            c.name,
			Continent:       c.continent,
			ISOCode:         c.iso,
			MarketYieldTier: &tier,
			AnnualVisitors:  &visitors,
			VisaPolicy:      &visa,
			Currency:        c.currency,
		})
		if err != nil {
			log.Fatalf("seed country %s: %v", c.name, err)
		}
		countryIDs[c.name] = *created
		log.Printf("seeded country %s", created.Name)
	}

	cityIDs := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		country, ok := countryIDs[c.country]
		if !ok {
			log.Fatalf("seed city %s: unknown country %s", c.name, c.country)
		}
		tz := c.timeZone
		created, err := admin.CreateCity(ctx, &domain.City{
			Name:            c.name,
			CountryID:       country.ID,
			TimeZone:        &tz,
			PopularityIndex: c.popularity,
		})
		if err != nil {
			log.Fatalf("seed city %s: %v", c.name, err)
		}
		cityIDs[c.name] = *created
		log.Printf("seeded city %s", created.Name)
	}

	for _, t := range tours {
		country := countryIDs[t.country]
		city := cityIDs[t.city]
		created, err := admin.CreateTour(ctx, &domain.Tour{
			Name:      t.name,
			CityID:    city.ID,
			CountryID: country.ID,
			Category:  t.category,
			Price:     t.price,
			Duration:  t.duration,
			GroupSize: t.group,
			Overview:  t.overview,
			Images:    t.images,
			Stats: domain.TourStats{
				Rating:       t.rating,
				ReviewsCount: t.reviews,
			},
		})
		if err != nil {
			log.Fatalf("seed tour %s: %v", t.name, err)
		}
		log.Printf("seeded tour %s (trending=%v)", created.Name, created.Stats.IsTrending)
	}

	seedAdminUser(ctx, userRepo)

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, users *postgres.UserRepository) {
	const email = "admin@travia.app"
	if _, err := users.FindByEmail(ctx, email); err == nil {
		log.Printf("admin user %s already exists", email)
		return
	}
	hash, salt, err := util.DerivePassword("change-me-now")
	if err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	if _, err := users.Create(ctx, &domain.User{
		Name:         "Travia Admin",
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		IsAdmin:      true,
	}); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	log.Printf("seeded admin user %s", email)
}
