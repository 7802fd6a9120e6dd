package domain

import (
	"github.com/google/uuid"
)

type YieldTier string

const (
	YieldTierLow    YieldTier = "Low"
	YieldTierMedium YieldTier = "Medium"
	YieldTierHigh   YieldTier = "High"
)

type VisaPolicy string

const (
	VisaPolicyFree      VisaPolicy = "Visa Free"
	VisaPolicyEVisa     VisaPolicy = "E-Visa"
	VisaPolicyRequired  VisaPolicy = "Visa Required"
	VisaPolicySchengen  VisaPolicy = "Schengen"
	VisaPolicyOnArrival VisaPolicy = "Visa On Arrival"
)

type Country struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	Name            string      `db:"name" json:"name" validate:"required"`
	Continent       string      `db:"continent" json:"continent" validate:"required"`
	ISOCode         string      `db:"iso_code" json:"isoCode" validate:"required"`
	MarketYieldTier *YieldTier  `db:"market_yield_tier" json:"marketYieldTier,omitempty" validate:"omitempty,oneof=Low Medium High"`
	AnnualVisitors  *int64      `db:"annual_visitors" json:"annualVisitors,omitempty" validate:"omitempty,min=0"`
	VisaPolicy      *VisaPolicy `db:"visa_policy" json:"visaPolicy,omitempty" validate:"omitempty,oneof='Visa Free' 'E-Visa' 'Visa Required' 'Schengen' 'Visa On Arrival'"`
	Currency        string      `db:"currency" json:"currency"`
	BackgroundImage *string     `db:"background_image" json:"backgroundImage,omitempty"`
}

// CountryFields carries a partial update. Nil fields are left untouched;
// clearing an optional column back to NULL is not supported through this
// path.
type CountryFields struct {
	Name            *string     `json:"name,omitempty"`
	Continent       *string     `json:"continent,omitempty"`
	ISOCode         *string     `json:"isoCode,omitempty"`
	MarketYieldTier *YieldTier  `json:"marketYieldTier,omitempty"`
	AnnualVisitors  *int64      `json:"annualVisitors,omitempty"`
	VisaPolicy      *VisaPolicy `json:"visaPolicy,omitempty"`
	Currency        *string     `json:"currency,omitempty"`
	BackgroundImage *string     `json:"backgroundImage,omitempty"`
}

func (f CountryFields) Apply(country *Country) {
	if f.Name != nil {
		country.Name = *f.Name
	}
	if f.Continent != nil {
		country.Continent = *f.Continent
	}
	if f.ISOCode != nil {
		country.ISOCode = *f.ISOCode
	}
	if f.MarketYieldTier != nil {
		country.MarketYieldTier = f.MarketYieldTier
	}
	if f.AnnualVisitors != nil {
		country.AnnualVisitors = f.AnnualVisitors
	}
	if f.VisaPolicy != nil {
		country.VisaPolicy = f.VisaPolicy
	}
	if f.Currency != nil {
		country.Currency = *f.Currency
	}
	if f.BackgroundImage != nil {
		country.BackgroundImage = f.BackgroundImage
	}
}

// CountryListFilter narrows the public country listing. Sorting is fixed:
// annual visitors, highest first.
type CountryListFilter struct {
	Search string
}
