package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CurrencyStrength string

const (
	CurrencyWeak   CurrencyStrength = "Weak"
	CurrencyStable CurrencyStrength = "Stable"
	CurrencyStrong CurrencyStrength = "Strong"
)

// CityEconomics is stored as a single jsonb column.
type CityEconomics struct {
	MinDailyBudget    float64          `json:"minDailyBudget,omitempty"`
	AccommodationCost float64          `json:"accommodationCost,omitempty"`
	MealIndex         float64          `json:"mealIndex,omitempty"`
	TransitCost       float64          `json:"transitCost,omitempty"`
	CurrencyStrength  CurrencyStrength `json:"currencyStrength,omitempty"`
}

func (e CityEconomics) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *CityEconomics) Scan(value any) error {
	if value == nil {
		*e = CityEconomics{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("city economics must be []byte")
	}
	return json.Unmarshal(bytes, e)
}

type City struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Name            string         `db:"name" json:"name" validate:"required"`
	CountryID       uuid.UUID      `db:"country_id" json:"countryId" validate:"required"`
	Longitude       *float64       `db:"longitude" json:"longitude,omitempty"`
	Latitude        *float64       `db:"latitude" json:"latitude,omitempty"`
	Description     *string        `db:"description" json:"description,omitempty"`
	TopAttractions  pq.StringArray `db:"top_attractions" json:"topAttractions,omitempty"`
	Images          pq.StringArray `db:"images" json:"images,omitempty"`
	Economics       CityEconomics  `db:"economics" json:"economics"`
	TimeZone        *string        `db:"time_zone" json:"timeZone,omitempty"`
	PopularityIndex int            `db:"popularity_index" json:"popularityIndex" validate:"min=0,max=100"`

	// Joined country name, present on listings that resolve the reference.
	CountryName *string `db:"country_name" json:"countryName,omitempty"`
}

// CityFields carries a partial update. Nil fields are left untouched.
type CityFields struct {
	Name            *string        `json:"name,omitempty"`
	CountryID       *uuid.UUID     `json:"countryId,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Description     *string        `json:"description,omitempty"`
	TopAttractions  *[]string      `json:"topAttractions,omitempty"`
	Images          *[]string      `json:"images,omitempty"`
	Economics       *CityEconomics `json:"economics,omitempty"`
	TimeZone        *string        `json:"timeZone,omitempty"`
	PopularityIndex *int           `json:"popularityIndex,omitempty"`
}

func (f CityFields) Apply(city *City) {
	if f.Name != nil {
		city.Name = *f.Name
	}
	if f.CountryID != nil {
		city.CountryID = *f.CountryID
	}
	if f.Longitude != nil {
		city.Longitude = f.Longitude
	}
	if f.Latitude != nil {
		city.Latitude = f.Latitude
	}
	if f.Description != nil {
		city.Description = f.Description
	}
	if f.TopAttractions != nil {
		city.TopAttractions = append([]string(nil), (*f.TopAttractions)...)
	}
	if f.Images != nil {
		city.Images = append([]string(nil), (*f.Images)...)
	}
	if f.Economics != nil {
		city.Economics = *f.Economics
	}
	if f.TimeZone != nil {
		city.TimeZone = f.TimeZone
	}
	if f.PopularityIndex != nil {
		city.PopularityIndex = *f.PopularityIndex
	}
}

// CityListFilter narrows the public city listing. Sorting is fixed:
// popularity index, highest first.
type CityListFilter struct {
	Search    string
	CountryID *uuid.UUID
}
