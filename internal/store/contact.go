// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sync"
	"time"

	"vitrine/internal/models"
	"vitrine/internal/storage"
)

// ContactStore handles all contact submission collection operations.
type ContactStore struct {
	mu  sync.Mutex
	col *storage.Collection
}

// NewContactStore creates a new ContactStore backed by the given collection.
func NewContactStore(col *storage.Collection) *ContactStore {
	return &ContactStore{col: col}
}

// List returns every contact submission in stored order.
func (s *ContactStore) List() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID retrieves a submission by id. Returns models.ErrNotFound on a miss.
func (s *ContactStore) FindByID(id int) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.load() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create appends a new submission and persists the collection. The id and
// timestamp are assigned here and new submissions start unread.
func (s *ContactStore) Create(contact models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.load()

	ids := make([]int, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	contact.ID = nextID(ids)
	contact.Date = time.Now().Format(time.RFC3339)
	contact.Read = false

	contacts = append(contacts, contact)
	if err := s.col.Save(contacts); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &contact, nil
}

// MarkRead sets the read flag on a submission. The transition is one-way
// and idempotent: marking an already-read submission succeeds unchanged.
func (s *ContactStore) MarkRead(id int) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.load()
	for i, c := range contacts {
		if c.ID == id {
			contacts[i].Read = true
			if err := s.col.Save(contacts); err != nil {
				return nil, fmt.Errorf("mark contact read: %w", err)
			}
			return &contacts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes a submission by id. Returns models.ErrNotFound without
// writing when the id does not exist.
func (s *ContactStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.load()
	for i, c := range contacts {
		if c.ID == id {
			contacts = append(contacts[:i], contacts[i+1:]...)
			if err := s.col.Save(contacts); err != nil {
				return fmt.Errorf("delete contact: %w", err)
			}
			return nil
		}
	}
	return models.ErrNotFound
}

// load reads the full collection. Callers must hold s.mu.
func (s *ContactStore) load() []models.Contact {
	contacts := []models.Contact{}
	s.col.Load(&contacts)
	return contacts
}
