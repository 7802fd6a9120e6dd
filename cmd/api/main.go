package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/travia-app/travia-backend/internal/config"
	"github.com/travia-app/travia-backend/internal/logging"
	"github.com/travia-app/travia-backend/internal/repository/postgres"
	"github.com/travia-app/travia-backend/internal/service"
	transport "github.com/travia-app/travia-backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash mirror disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("invalid SESSION_TTL %q: %v", cfg.SessionTTL, err)
	}

	countryRepo := postgres.NewCountryRepo(db)
	cityRepo := postgres.NewCityRepo(db)
	tourRepo := postgres.NewTourRepo(db)
	userRepo := postgres.NewUserRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	regionRepo := postgres.NewRegionRepo(db)

	catalogSvc := service.NewCatalogService(countryRepo, cityRepo, tourRepo, service.PageLimits{
		Countries: cfg.CountryPageSize,
		Cities:    cfg.CityPageSize,
		Tours:     cfg.TourPageSize,
	})
	treeSvc := service.NewDestinationTreeService(tourRepo)
	adminSvc := service.NewAdminService(countryRepo, cityRepo, tourRepo, userRepo, bookingRepo)
	statsSvc := service.NewStatsService(statsRepo)
	regionSvc := service.NewRegionService(regionRepo)
	bookingSvc := service.NewBookingService(bookingRepo, tourRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, sessionTTL)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterDestinations(e, catalogSvc, treeSvc)
	transport.RegisterAdmin(e, authSvc, adminSvc, statsSvc, regionSvc)
	transport.RegisterAuth(e, authSvc)
	transport.RegisterBookings(e, bookingSvc)

	log.Printf("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
