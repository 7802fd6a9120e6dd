package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

// RegionService manages the legacy nested catalog: one document per
// continent with its packages inline. Package mutations read the whole
// region, rewrite the array, and write it back; concurrent edits to the same
// region race and the later write wins.
type RegionService struct {
	regions ports.RegionRepository
}

func NewRegionService(regions ports.RegionRepository) *RegionService {
	return &RegionService{regions: regions}
}

func (s *RegionService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return s.regions.ListAll(ctx)
}

func (s *RegionService) CreateRegion(ctx context.Context, name string) (*domain.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: region name required", ErrValidation)
	}
	if _, err := s.regions.FindByName(ctx, name); err == nil {
		return nil, ErrRegionExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return s.regions.Create(ctx, &domain.Region{Name: name, Packages: domain.RegionPackages{}})
}

func (s *RegionService) AddPackage(ctx context.Context, regionID uuid.UUID, pkg domain.RegionPackage) (*domain.Region, error) {
	region, err := s.getRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(pkg.Name) == "" {
		return nil, fmt.Errorf("%w: package name required", ErrValidation)
	}
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	packages := append(append(domain.RegionPackages{}, region.Packages...), pkg)
	return s.regions.ReplacePackages(ctx, region.ID, packages)
}

// UpdatePackage merges fields into the package with the given id, leaving
// every sibling untouched and in place.
func (s *RegionService) UpdatePackage(ctx context.Context, regionID, packageID uuid.UUID, fields domain.RegionPackageFields) (*domain.Region, error) {
	region, err := s.getRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}

	packages := append(domain.RegionPackages{}, region.Packages...)
	found := false
	for i := range packages {
		if packages[i].ID == packageID {
			fields.Apply(&packages[i])
			found = true
			break
		}
	}
	if !found {
		return nil, ErrPackageNotFound
	}
	return s.regions.ReplacePackages(ctx, region.ID, packages)
}

// DeletePackage filters the package out of the region's array. Deleting an
// id that is not present is not an error; the region must exist.
func (s *RegionService) DeletePackage(ctx context.Context, regionID, packageID uuid.UUID) (*domain.Region, error) {
	region, err := s.getRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}

	packages := make(domain.RegionPackages, 0, len(region.Packages))
	for _, pkg := range region.Packages {
		if pkg.ID == packageID {
			continue
		}
		packages = append(packages, pkg)
	}
	return s.regions.ReplacePackages(ctx, region.ID, packages)
}

func (s *RegionService) getRegion(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	region, err := s.regions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}
	return region, nil
}
