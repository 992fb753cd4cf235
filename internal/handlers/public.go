// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"vitrine/internal/mailer"
	"vitrine/internal/models"
	"vitrine/internal/store"
)

// maxApplicationSize caps the career form upload, resume included (10 MB).
const maxApplicationSize = 10 << 20

// Public groups the unauthenticated handlers consumed by the marketing
// site: published blog reads, the product catalog, the contact form, and
// the career application form.
type Public struct {
	blogs    *store.BlogStore
	products *store.ProductStore
	contacts *store.ContactStore
	mail     *mailer.Mailer // nil when SMTP is not configured
}

// NewPublic creates a new Public handler group. mail may be nil.
func NewPublic(blogs *store.BlogStore, products *store.ProductStore, contacts *store.ContactStore, mail *mailer.Mailer) *Public {
	return &Public{blogs: blogs, products: products, contacts: contacts, mail: mail}
}

// BlogsList returns published posts only. Drafts never leave the admin API.
func (p *Public) BlogsList(w http.ResponseWriter, r *http.Request) {
	posts := p.blogs.ListPublished()
	if posts == nil {
		posts = []models.BlogPost{}
	}
	respondJSON(w, http.StatusOK, posts)
}

// BlogByID returns one published post, treating drafts as absent.
func (p *Public) BlogByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	post, err := p.blogs.FindPublishedByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// ProductsList returns the full catalog; products have no draft state.
func (p *Public) ProductsList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, p.products.List())
}

// ProductByID returns one product.
func (p *Public) ProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	product, err := p.products.FindByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// ContactCreate stores a public contact-form submission. The server
// assigns the timestamp and the unread state.
func (p *Public) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := decodeJSON(r, &contact); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validContact(contact) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	created, err := p.contacts.Create(contact)
	if err != nil {
		slog.Error("contact create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// SendApplication accepts the multipart career form and forwards it by
// email. The resume file is never written to disk; it passes through to
// the mail attachment.
func (p *Public) SendApplication(w http.ResponseWriter, r *http.Request) {
	if p.mail == nil {
		respondError(w, http.StatusServiceUnavailable, "Email delivery is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxApplicationSize)
	if err := r.ParseMultipartForm(maxApplicationSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	app := mailer.Application{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Position:    r.FormValue("position"),
		CoverLetter: r.FormValue("coverLetter"),
	}
	if anyBlank(app.Name, app.Email) {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		app.Resume = data
		app.ResumeName = filepath.Base(header.Filename)
	}

	if err := p.mail.SendApplication(app); err != nil {
		slog.Error("application email failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to send application")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
