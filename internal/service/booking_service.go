package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

type BookingService struct {
	bookings ports.BookingRepository
	tours    ports.TourRepository
	validate *validator.Validate
}

func NewBookingService(bookings ports.BookingRepository, tours ports.TourRepository) *BookingService {
	return &BookingService{bookings: bookings, tours: tours, validate: validator.New()}
}

func (s *BookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := s.validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.tours.FindByID(ctx, booking.TourID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return s.bookings.Create(ctx, booking)
}
