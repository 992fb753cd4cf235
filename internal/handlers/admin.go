// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/models"
	"vitrine/internal/store"
)

// Admin groups the token-gated CRUD handlers for all three collections.
type Admin struct {
	blogs    *store.BlogStore
	products *store.ProductStore
	contacts *store.ContactStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(blogs *store.BlogStore, products *store.ProductStore, contacts *store.ContactStore) *Admin {
	return &Admin{blogs: blogs, products: products, contacts: contacts}
}

// idParam parses the {id} route parameter. A non-numeric id is treated
// the same as an id that does not exist.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// --- Blogs ---

// BlogsList returns every blog post, drafts included.
func (a *Admin) BlogsList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.blogs.List())
}

// BlogCreate validates and stores a new blog post.
func (a *Admin) BlogCreate(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validBlog(post) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	created, err := a.blogs.Create(post)
	if err != nil {
		slog.Error("blog create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save blog post")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// BlogUpdate replaces a blog post with the submitted record.
func (a *Admin) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	var post models.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validBlog(post) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	updated, err := a.blogs.Update(id, post)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("blog update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save blog post")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// BlogTogglePublish flips a post between draft and published.
func (a *Admin) BlogTogglePublish(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	updated, err := a.blogs.TogglePublished(id)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("blog publish toggle failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save blog post")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// BlogDelete removes a blog post.
func (a *Admin) BlogDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	err := a.blogs.Delete(id)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("blog delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- Products ---

// ProductsList returns the full catalog.
func (a *Admin) ProductsList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.products.List())
}

// ProductCreate validates and stores a new product.
func (a *Admin) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validProduct(product) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	created, err := a.products.Create(product)
	if err != nil {
		slog.Error("product create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ProductUpdate replaces a product with the submitted record.
func (a *Admin) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validProduct(product) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	updated, err := a.products.Update(id, product)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("product update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// ProductDelete removes a product.
func (a *Admin) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	err := a.products.Delete(id)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("product delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// --- Contacts ---

// ContactsList returns every contact submission, read and unread.
func (a *Admin) ContactsList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.contacts.List())
}

// ContactMarkRead flags a submission as read. Idempotent.
func (a *Admin) ContactMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	updated, err := a.contacts.MarkRead(id)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("contact mark read failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update contact")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// ContactDelete removes a submission.
func (a *Admin) ContactDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	err := a.contacts.Delete(id)
	if errors.Is(err, models.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("contact delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
