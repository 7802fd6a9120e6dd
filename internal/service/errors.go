package service

import "errors"

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrTourNotFound    = errors.New("tour not found")
	ErrRegionNotFound  = errors.New("region not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrValidation   = errors.New("validation failed")
	ErrRegionExists = errors.New("region already exists")
	// ErrTourCityMismatch marks a tour whose city belongs to a different
	// country than the one the tour names.
	ErrTourCityMismatch = errors.New("tour city does not belong to tour country")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
