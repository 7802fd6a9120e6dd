package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// RegionPackage is a sub-document inside a region's package array, the shape
// the pre-relational catalog stored nesting in directly.
type RegionPackage struct {
	ID            uuid.UUID `json:"_id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Price         string    `json:"price"`
	Image         string    `json:"image,omitempty"`
	Desc          string    `json:"desc,omitempty"`
	LongDesc      string    `json:"longDesc,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	Reviews       int       `json:"reviews,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	GroupSize     string    `json:"groupSize,omitempty"`
	PlacesToVisit []string  `json:"placesToVisit,omitempty"`
}

// RegionPackages is stored as a single jsonb column; sibling order is
// significant and must survive every mutation.
type RegionPackages []RegionPackage

func (p RegionPackages) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(RegionPackages{})
	}
	return json.Marshal(p)
}

func (p *RegionPackages) Scan(value any) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("region packages must be []byte")
	}
	return json.Unmarshal(bytes, p)
}

// Region is the legacy nested variant of the catalog: one document per
// continent holding its packages inline.
type Region struct {
	ID       uuid.UUID      `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	Packages RegionPackages `db:"packages" json:"countries"`
}

// RegionPackageFields carries a partial update to a nested package. Nil
// fields are left untouched.
type RegionPackageFields struct {
	Name          *string   `json:"name,omitempty"`
	City          *string   `json:"city,omitempty"`
	Price         *string   `json:"price,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Desc          *string   `json:"desc,omitempty"`
	LongDesc      *string   `json:"longDesc,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
	Duration      *string   `json:"duration,omitempty"`
	GroupSize     *string   `json:"groupSize,omitempty"`
	PlacesToVisit *[]string `json:"placesToVisit,omitempty"`
}

// Apply merges the set fields into pkg, leaving everything else alone.
func (f RegionPackageFields) Apply(pkg *RegionPackage) {
	if f.Name != nil {
		pkg.Name = *f.Name
	}
	if f.City != nil {
		pkg.City = *f.City
	}
	if f.Price != nil {
		pkg.Price = *f.Price
	}
	if f.Image != nil {
		pkg.Image = *f.Image
	}
	if f.Desc != nil {
		pkg.Desc = *f.Desc
	}
	if f.LongDesc != nil {
		pkg.LongDesc = *f.LongDesc
	}
	if f.Rating != nil {
		pkg.Rating = *f.Rating
	}
	if f.Reviews != nil {
		pkg.Reviews = *f.Reviews
	}
	if f.Duration != nil {
		pkg.Duration = *f.Duration
	}
	if f.GroupSize != nil {
		pkg.GroupSize = *f.GroupSize
	}
	if f.PlacesToVisit != nil {
		pkg.PlacesToVisit = append([]string(nil), (*f.PlacesToVisit)...)
	}
}
