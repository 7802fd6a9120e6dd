package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/travia-app/travia-backend/internal/domain"
)

func seedRegion(t *testing.T, svc *RegionService, name string, packages ...string) *domain.Region {
	t.Helper()
	region, err := svc.CreateRegion(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateRegion: %v", err)
	}
	for _, pkgName := range packages {
		region, err = svc.AddPackage(context.Background(), region.ID, domain.RegionPackage{
			Name:  pkgName,
			City:  pkgName + " City",
			Price: "$99",
		})
		if err != nil {
			t.Fatalf("AddPackage %s: %v", pkgName, err)
		}
	}
	return region
}

func TestRegionServiceCreateRejectsDuplicateName(t *testing.T) {
	svc := NewRegionService(newMemoryRegionRepo())

	if _, err := svc.CreateRegion(context.Background(), "Europe"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateRegion(context.Background(), "Europe"); !errors.Is(err, ErrRegionExists) {
		t.Fatalf("expected ErrRegionExists, got %v", err)
	}
	if _, err := svc.CreateRegion(context.Background(), "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestRegionServiceAddPackageAssignsID(t *testing.T) {
	svc := NewRegionService(newMemoryRegionRepo())
	region := seedRegion(t, svc, "Asia")

	updated, err := svc.AddPackage(context.Background(), region.ID, domain.RegionPackage{Name: "Bali Escape", City: "Denpasar", Price: "$450"})
	if err != nil {
		t.Fatalf("AddPackage: %v", err)
	}
	if len(updated.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(updated.Packages))
	}
	if updated.Packages[0].ID == uuid.Nil {
		t.Fatalf("expected package id to be assigned")
	}

	if _, err := svc.AddPackage(context.Background(), region.ID, domain.RegionPackage{Name: "  "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank package name, got %v", err)
	}
	if _, err := svc.AddPackage(context.Background(), uuid.New(), domain.RegionPackage{Name: "x"}); !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
}

func TestRegionServiceUpdatePackagePreservesSiblingOrder(t *testing.T) {
	svc := NewRegionService(newMemoryRegionRepo())
	region := seedRegion(t, svc, "Europe", "Alpha", "Beta", "Gamma")

	target := region.Packages[1]
	newPrice := "$1200"
	newRating := 4.9

	updated, err := svc.UpdatePackage(context.Background(), region.ID, target.ID, domain.RegionPackageFields{
		Price:  &newPrice,
		Rating: &newRating,
	})
	if err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}

	if len(updated.Packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(updated.Packages))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		if updated.Packages[i].Name != want {
			t.Fatalf("sibling order broken: slot %d is %q, want %q", i, updated.Packages[i].Name, want)
		}
	}
	if updated.Packages[1].Price != "$1200" || updated.Packages[1].Rating != 4.9 {
		t.Fatalf("fields not merged: %+v", updated.Packages[1])
	}
	if updated.Packages[1].City != "Beta City" {
		t.Fatalf("unset fields must stay untouched, got city %q", updated.Packages[1].City)
	}
	if updated.Packages[0].Price != "$99" || updated.Packages[2].Price != "$99" {
		t.Fatalf("siblings must stay untouched")
	}
}

func TestRegionServiceUpdatePackageUnknownID(t *testing.T) {
	svc := NewRegionService(newMemoryRegionRepo())
	region := seedRegion(t, svc, "Africa", "Safari")

	name := "Renamed"
	if _, err := svc.UpdatePackage(context.Background(), region.ID, uuid.New(), domain.RegionPackageFields{Name: &name}); !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestRegionServiceDeletePackage(t *testing.T) {
	svc := NewRegionService(newMemoryRegionRepo())
	region := seedRegion(t, svc, "Oceania", "Reef", "Outback", "Fjord")

	updated, err := svc.DeletePackage(context.Background(), region.ID, region.Packages[1].ID)
	if err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
	if len(updated.Packages) != 2 {
		t.Fatalf("expected 2 packages after delete, got %d", len(updated.Packages))
	}
	if updated.Packages[0].Name != "Reef" || updated.Packages[1].Name != "Fjord" {
		t.Fatalf("remaining packages out of order: %+v", updated.Packages)
	}

	// deleting an absent package id is a no-op, not an error
	again, err := svc.DeletePackage(context.Background(), region.ID, uuid.New())
	if err != nil {
		t.Fatalf("DeletePackage of absent id: %v", err)
	}
	if len(again.Packages) != 2 {
		t.Fatalf("no-op delete must leave packages alone, got %d", len(again.Packages))
	}

	if _, err := svc.DeletePackage(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound for unknown region, got %v", err)
	}
}
