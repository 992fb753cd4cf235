// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"vitrine/internal/models"
	"vitrine/internal/storage"
)

func testProductStore(t *testing.T) *ProductStore {
	t.Helper()
	col, err := storage.NewCollection(t.TempDir(), "products")
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	return NewProductStore(col)
}

func TestProductCreate_AssignsIDs(t *testing.T) {
	s := testProductStore(t)

	first, err := s.Create(models.Product{Title: "Pump", Description: "D"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first product id = %d, want 1", first.ID)
	}

	second, err := s.Create(models.Product{Title: "Valve", Description: "D"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second product id = %d, want 2", second.ID)
	}
}

func TestProductDelete_MissingIDLeavesCollectionUnchanged(t *testing.T) {
	s := testProductStore(t)
	if _, err := s.Create(models.Product{Title: "Pump", Description: "D"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Delete missing id: err = %v, want ErrNotFound", err)
	}
	if got := len(s.List()); got != 1 {
		t.Errorf("List() length after failed delete = %d, want 1", got)
	}
}

func TestProductUpdate(t *testing.T) {
	s := testProductStore(t)
	created, err := s.Create(models.Product{Title: "Pump", Description: "D", Rating: 4.5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := s.Update(created.ID, models.Product{
		Title: "Pump Mk2", Description: "D2", Rating: 4.8,
		Brands: []string{"Acme"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed id: got %d, want %d", updated.ID, created.ID)
	}
	if updated.Title != "Pump Mk2" || updated.Rating != 4.8 {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := s.Update(999, models.Product{Title: "X", Description: "Y"}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update missing id: err = %v, want ErrNotFound", err)
	}
}
