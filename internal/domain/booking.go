package domain

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TourID    uuid.UUID `db:"tour_id" json:"tourId" validate:"required"`
	FullName  string    `db:"full_name" json:"fullName" validate:"required"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Travelers int       `db:"travelers" json:"travelers" validate:"min=1"`
	TravelAt  time.Time `db:"travel_at" json:"travelAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// Joined tour name on admin listings.
	TourName *string `db:"tour_name" json:"tourName,omitempty"`
}
