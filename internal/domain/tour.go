package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TourCategory string

const (
	TourCategoryAdventure  TourCategory = "Adventure"
	TourCategoryRelaxation TourCategory = "Relaxation"
	TourCategoryHistory    TourCategory = "History"
	TourCategoryCulture    TourCategory = "Culture"
	TourCategoryFood       TourCategory = "Food"
	TourCategoryNature     TourCategory = "Nature"
)

// TrendingRatingThreshold is the canonical cutoff: a tour is trending when
// its rating strictly exceeds this value. Applied at write time (create,
// update, seed) so list and detail views never disagree.
const TrendingRatingThreshold = 4.8

type ItineraryDay struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Itinerary is stored as a single jsonb column; day order is preserved.
type Itinerary []ItineraryDay

func (i Itinerary) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal(Itinerary{})
	}
	return json.Marshal(i)
}

func (i *Itinerary) Scan(value any) error {
	if value == nil {
		*i = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("itinerary must be []byte")
	}
	return json.Unmarshal(bytes, i)
}

type StatsBreakdown struct {
	Verified     int `json:"verified,omitempty"`
	Volume       int `json:"volume,omitempty"`
	NLPSentiment int `json:"nlpSentiment,omitempty"`
}

// TourStats is stored as a single jsonb column.
type TourStats struct {
	Rating       float64        `json:"rating" validate:"min=0,max=5"`
	ReviewsCount int            `json:"reviewsCount"`
	Breakdown    StatsBreakdown `json:"breakdown"`
	IsTrending   bool           `json:"isTrending"`
}

func (s TourStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *TourStats) Scan(value any) error {
	if value == nil {
		*s = TourStats{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("tour stats must be []byte")
	}
	return json.Unmarshal(bytes, s)
}

// Normalize recomputes the derived stats fields from the stored rating.
// Verified mirrors the rating on a 0-100 scale.
func (s *TourStats) Normalize() {
	s.IsTrending = s.Rating > TrendingRatingThreshold
	s.Breakdown.Verified = int(s.Rating * 20)
}

type Tour struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name" validate:"required"`
	CityID        uuid.UUID      `db:"city_id" json:"cityId" validate:"required"`
	CountryID     uuid.UUID      `db:"country_id" json:"countryId" validate:"required"`
	Category      TourCategory   `db:"category" json:"category" validate:"required,oneof=Adventure Relaxation History Culture Food Nature"`
	Price         float64        `db:"price" json:"price" validate:"min=0"`
	DiscountPrice *float64       `db:"discount_price" json:"discountPrice,omitempty" validate:"omitempty,min=0"`
	Duration      string         `db:"duration" json:"duration" validate:"required"`
	GroupSize     string         `db:"group_size" json:"groupSize" validate:"required"`
	Overview      string         `db:"overview" json:"overview" validate:"required"`
	Highlights    pq.StringArray `db:"highlights" json:"highlights,omitempty"`
	Images        pq.StringArray `db:"images" json:"images,omitempty"`
	Itinerary     Itinerary      `db:"itinerary" json:"itinerary,omitempty"`
	Amenities     pq.StringArray `db:"amenities" json:"amenities,omitempty"`
	Stats         TourStats      `db:"stats" json:"stats"`
	IsFeatured    bool           `db:"is_featured" json:"isFeatured"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`

	// Joined reference names, present on listings that resolve them.
	CityName    *string `db:"city_name" json:"cityName,omitempty"`
	CountryName *string `db:"country_name" json:"countryName,omitempty"`
}

// TourFields carries a partial update. Nil fields are left untouched.
type TourFields struct {
	Name          *string       `json:"name,omitempty"`
	CityID        *uuid.UUID    `json:"cityId,omitempty"`
	CountryID     *uuid.UUID    `json:"countryId,omitempty"`
	Category      *TourCategory `json:"category,omitempty"`
	Price         *float64      `json:"price,omitempty"`
	DiscountPrice *float64      `json:"discountPrice,omitempty"`
	Duration      *string       `json:"duration,omitempty"`
	GroupSize     *string       `json:"groupSize,omitempty"`
	Overview      *string       `json:"overview,omitempty"`
	Highlights    *[]string     `json:"highlights,omitempty"`
	Images        *[]string     `json:"images,omitempty"`
	Itinerary     *Itinerary    `json:"itinerary,omitempty"`
	Amenities     *[]string     `json:"amenities,omitempty"`
	Stats         *TourStats    `json:"stats,omitempty"`
	IsFeatured    *bool         `json:"isFeatured,omitempty"`
}

func (f TourFields) Apply(tour *Tour) {
	if f.Name != nil {
		tour.Name = *f.Name
	}
	if f.CityID != nil {
		tour.CityID = *f.CityID
	}
	if f.CountryID != nil {
		tour.CountryID = *f.CountryID
	}
	if f.Category != nil {
		tour.Category = *f.Category
	}
	if f.Price != nil {
		tour.Price = *f.Price
	}
	if f.DiscountPrice != nil {
		tour.DiscountPrice = f.DiscountPrice
	}
	if f.Duration != nil {
		tour.Duration = *f.Duration
	}
	if f.GroupSize != nil {
		tour.GroupSize = *f.GroupSize
	}
	if f.Overview != nil {
		tour.Overview = *f.Overview
	}
	if f.Highlights != nil {
		tour.Highlights = append([]string(nil), (*f.Highlights)...)
	}
	if f.Images != nil {
		tour.Images = append([]string(nil), (*f.Images)...)
	}
	if f.Itinerary != nil {
		tour.Itinerary = append(Itinerary(nil), (*f.Itinerary)...)
	}
	if f.Amenities != nil {
		tour.Amenities = append([]string(nil), (*f.Amenities)...)
	}
	if f.Stats != nil {
		tour.Stats = *f.Stats
	}
	if f.IsFeatured != nil {
		tour.IsFeatured = *f.IsFeatured
	}
}

// TourListFilter narrows the public tour listing. Sorting is fixed:
// newest first.
type TourListFilter struct {
	Search    string
	CountryID *uuid.UUID
	CityID    *uuid.UUID
}

// TourWithRefs is a tour row with both references resolved, as fetched for
// the continent-tree translation. A nil Country or City means the reference
// no longer points at an existing record.
type TourWithRefs struct {
	Tour    Tour
	Country *Country
	City    *City
}
