package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepo(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.countTable(ctx, "user_account")
}

func (r *StatsRepository) CountBookings(ctx context.Context) (int, error) {
	return r.countTable(ctx, "booking")
}

func (r *StatsRepository) CountTours(ctx context.Context) (int, error) {
	return r.countTable(ctx, "tour")
}

func (r *StatsRepository) CountCities(ctx context.Context) (int, error) {
	return r.countTable(ctx, "city")
}

func (r *StatsRepository) CountCountries(ctx context.Context) (int, error) {
	return r.countTable(ctx, "country")
}

func (r *StatsRepository) countTable(ctx context.Context, table string) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM `+table); err != nil {
		return 0, err
	}
	return total, nil
}

var _ ports.StatsRepository = (*StatsRepository)(nil)
