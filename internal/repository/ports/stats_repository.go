package ports

import "context"

// StatsRepository counts whole collections for the admin dashboard.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountBookings(ctx context.Context) (int, error)
	CountTours(ctx context.Context) (int, error)
	CountCities(ctx context.Context) (int, error)
	CountCountries(ctx context.Context) (int, error)
}
