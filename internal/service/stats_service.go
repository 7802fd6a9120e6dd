package service

import (
	"context"

	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type DashboardStats struct {
	Users     int `json:"users"`
	Bookings  int `json:"bookings"`
	Tours     int `json:"tours"`
	Cities    int `json:"cities"`
	Countries int `json:"countries"`
}

// StatsService rolls up collection counts for the admin dashboard. Each
// count is an independent query; no joins are involved.
type StatsService struct {
	stats ports.StatsRepository
}

func NewStatsService(stats ports.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var (
		out DashboardStats
		err error
	)
	if out.Users, err = s.stats.CountUsers(ctx); err != nil {
		return nil, err
	}
	if out.Bookings, err = s.stats.CountBookings(ctx); err != nil {
		return nil, err
	}
	if out.Tours, err = s.stats.CountTours(ctx); err != nil {
		return nil, err
	}
	if out.Cities, err = s.stats.CountCities(ctx); err != nil {
		return nil, err
	}
	if out.Countries, err = s.stats.CountCountries(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}
