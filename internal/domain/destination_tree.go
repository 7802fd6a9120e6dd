package domain

import "github.com/google/uuid"

// TourCard is the card shape inside the legacy continent tree. The field
// names are load-bearing for the storefront pages: "name" carries the country
// name used as a subtitle, while "city" carries the tour name used as the
// main title.
type TourCard struct {
	ID           uuid.UUID  `json:"_id"`
	Name         string     `json:"name"`
	City         string     `json:"city"`
	RealCityName string     `json:"realCityName"`
	Price        string     `json:"price"`
	Image        string     `json:"image"`
	Desc         string     `json:"desc"`
	Rating       float64    `json:"rating"`
	Reviews      int        `json:"reviews"`
	Duration     string     `json:"duration"`
	GroupSize    string     `json:"groupSize"`
	Visa         VisaPolicy `json:"visa,omitempty"`
	Currency     string     `json:"currency"`
	IsTrending   bool       `json:"isTrending"`
	YieldTier    YieldTier  `json:"yieldTier,omitempty"`
}

// ContinentBucket groups tour cards under one continent name. The "countries"
// key is historical; it holds tour cards.
type ContinentBucket struct {
	Name      string     `json:"name"`
	Countries []TourCard `json:"countries"`
}
