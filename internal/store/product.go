// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sync"

	"vitrine/internal/models"
	"vitrine/internal/storage"
)

// ProductStore handles all product catalog collection operations.
type ProductStore struct {
	mu  sync.Mutex
	col *storage.Collection
}

// NewProductStore creates a new ProductStore backed by the given collection.
func NewProductStore(col *storage.Collection) *ProductStore {
	return &ProductStore{col: col}
}

// List returns the full catalog in stored order.
func (s *ProductStore) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID retrieves a product by id. Returns models.ErrNotFound on a miss.
func (s *ProductStore) FindByID(id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create appends a new product and persists the collection. The id is
// always assigned here; any client-supplied id is discarded.
func (s *ProductStore) Create(product models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()

	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	product.ID = nextID(ids)
	if product.Brands == nil {
		product.Brands = []string{}
	}

	products = append(products, product)
	if err := s.col.Save(products); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// Update replaces the stored product with the provided record, keeping
// the original id. Returns models.ErrNotFound without writing when the
// id does not exist.
func (s *ProductStore) Update(id int, product models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()
	for i, p := range products {
		if p.ID == id {
			product.ID = id
			products[i] = product
			if err := s.col.Save(products); err != nil {
				return nil, fmt.Errorf("update product: %w", err)
			}
			return &product, nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes a product by id. Returns models.ErrNotFound without
// writing when the id does not exist.
func (s *ProductStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()
	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := s.col.Save(products); err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			return nil
		}
	}
	return models.ErrNotFound
}

// load reads the full collection. Callers must hold s.mu.
func (s *ProductStore) load() []models.Product {
	products := []models.Product{}
	s.col.Load(&products)
	return products
}
