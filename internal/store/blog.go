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

// BlogStore handles all blog post collection operations.
type BlogStore struct {
	mu  sync.Mutex
	col *storage.Collection
}

// NewBlogStore creates a new BlogStore backed by the given collection.
func NewBlogStore(col *storage.Collection) *BlogStore {
	return &BlogStore{col: col}
}

// List returns every blog post, drafts included, in stored order.
func (s *BlogStore) List() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ListPublished returns only the posts visible on the public site.
func (s *BlogStore) ListPublished() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	var published []models.BlogPost
	for _, p := range s.load() {
		if p.Published {
			published = append(published, p)
		}
	}
	return published
}

// FindByID retrieves a post by id. Returns models.ErrNotFound on a miss.
func (s *BlogStore) FindByID(id int) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

// FindPublishedByID retrieves a post by id, treating drafts as absent.
// Used by the public read routes so unpublished posts never leak.
func (s *BlogStore) FindPublishedByID(id int) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id && p.Published {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create appends a new post and persists the collection. The id is always
// assigned here; any client-supplied id is discarded. Views and likes
// start at zero and new posts start as drafts.
func (s *BlogStore) Create(post models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()

	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	post.ID = nextID(ids)
	post.Views = 0
	post.Likes = 0
	post.Published = false
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	posts = append(posts, post)
	if err := s.col.Save(posts); err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &post, nil
}

// Update replaces the stored post with the provided record, keeping the
// original id. Returns models.ErrNotFound without writing when the id
// does not exist.
func (s *BlogStore) Update(id int, post models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	for i, p := range posts {
		if p.ID == id {
			post.ID = id
			posts[i] = post
			if err := s.col.Save(posts); err != nil {
				return nil, fmt.Errorf("update blog post: %w", err)
			}
			return &post, nil
		}
	}
	return nil, models.ErrNotFound
}

// TogglePublished flips the draft/published state of a post. Both
// directions are allowed; toggling twice restores the original state.
func (s *BlogStore) TogglePublished(id int) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	for i, p := range posts {
		if p.ID == id {
			posts[i].Published = !posts[i].Published
			if err := s.col.Save(posts); err != nil {
				return nil, fmt.Errorf("toggle blog publish: %w", err)
			}
			return &posts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes a post by id. Returns models.ErrNotFound without
// writing when the id does not exist.
func (s *BlogStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	for i, p := range posts {
		if p.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			if err := s.col.Save(posts); err != nil {
				return fmt.Errorf("delete blog post: %w", err)
			}
			return nil
		}
	}
	return models.ErrNotFound
}

// load reads the full collection. Callers must hold s.mu.
func (s *BlogStore) load() []models.BlogPost {
	posts := []models.BlogPost{}
	s.col.Load(&posts)
	return posts
}
