package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO booking (tour_id, full_name, email, phone, travelers, travel_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, tour_id, full_name, email, phone, travelers, travel_at, created_at
	`
	var created domain.Booking
	err := r.db.GetContext(ctx, &created, query,
		booking.TourID, booking.FullName, booking.Email, booking.Phone,
		booking.Travelers, booking.TravelAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	const query = `
		SELECT b.id, b.tour_id, b.full_name, b.email, b.phone, b.travelers, b.travel_at, b.created_at,
		       t.name AS tour_name
		FROM booking b
		LEFT JOIN tour t ON t.id = b.tour_id
		ORDER BY b.created_at DESC
	`
	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
