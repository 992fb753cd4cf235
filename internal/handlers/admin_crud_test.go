// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers_test

import (
	"net/http"
	"testing"

	"vitrine/internal/models"
)

// --- Blogs ---

func TestBlogCreate_EmptyCollection(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/blogs", env.Token, map[string]string{
		"title": "T", "excerpt": "E", "content": "C",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create blog: got status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	post := decode[models.BlogPost](t, rec)
	if post.ID != 1 {
		t.Errorf("created post id = %d, want 1", post.ID)
	}
	if post.Published {
		t.Error("created post is published, want draft")
	}
	if post.Views != 0 {
		t.Errorf("created post views = %d, want 0", post.Views)
	}

	list := env.do(t, http.MethodGet, "/api/admin/blogs", env.Token, nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list blogs: got status %d, want %d", list.Code, http.StatusOK)
	}
	posts := decode[[]models.BlogPost](t, list)
	if len(posts) != 1 {
		t.Errorf("blog list length = %d, want 1", len(posts))
	}
}

func TestBlogCreate_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/blogs", env.Token, map[string]string{
		"title": "only a title",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create blog without content: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestBlogPublishToggle_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	created := decode[models.BlogPost](t, env.do(t, http.MethodPost, "/api/admin/blogs", env.Token, map[string]string{
		"title": "T", "excerpt": "E", "content": "C",
	}))

	first := env.do(t, http.MethodPut, "/api/admin/blogs/1/publish", env.Token, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first toggle: got status %d, want %d", first.Code, http.StatusOK)
	}
	if post := decode[models.BlogPost](t, first); !post.Published {
		t.Error("first toggle left post unpublished")
	}

	second := env.do(t, http.MethodPut, "/api/admin/blogs/1/publish", env.Token, nil)
	if post := decode[models.BlogPost](t, second); post.Published != created.Published {
		t.Error("double toggle did not restore the original state")
	}
}

func TestBlogUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/admin/blogs/42", env.Token, map[string]string{
		"title": "T", "excerpt": "E", "content": "C",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("update missing blog: got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBlogDelete_ThenGone(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/admin/blogs", env.Token, map[string]string{
		"title": "T", "excerpt": "E", "content": "C",
	})

	del := env.do(t, http.MethodDelete, "/api/admin/blogs/1", env.Token, nil)
	if del.Code != http.StatusOK {
		t.Fatalf("delete blog: got status %d, want %d", del.Code, http.StatusOK)
	}

	posts := decode[[]models.BlogPost](t, env.do(t, http.MethodGet, "/api/admin/blogs", env.Token, nil))
	if len(posts) != 0 {
		t.Errorf("blog list length after delete = %d, want 0", len(posts))
	}
}

// --- Products ---

func TestProductCRUD(t *testing.T) {
	env := newTestEnv(t)

	created := env.do(t, http.MethodPost, "/api/admin/products", env.Token, map[string]any{
		"title":       "Pump",
		"description": "Industrial pump",
		"category":    "Pumps",
		"rating":      4.5,
		"brands":      []string{"Acme"},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create product: got status %d, want %d: %s", created.Code, http.StatusCreated, created.Body)
	}
	product := decode[models.Product](t, created)
	if product.ID != 1 {
		t.Errorf("created product id = %d, want 1", product.ID)
	}

	updated := env.do(t, http.MethodPut, "/api/admin/products/1", env.Token, map[string]any{
		"title":       "Pump Mk2",
		"description": "Industrial pump, revised",
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("update product: got status %d, want %d", updated.Code, http.StatusOK)
	}
	if p := decode[models.Product](t, updated); p.Title != "Pump Mk2" {
		t.Errorf("updated title = %q, want %q", p.Title, "Pump Mk2")
	}

	del := env.do(t, http.MethodDelete, "/api/admin/products/1", env.Token, nil)
	if del.Code != http.StatusOK {
		t.Fatalf("delete product: got status %d, want %d", del.Code, http.StatusOK)
	}
}

func TestProductDelete_NonexistentLeavesCollectionUnchanged(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/admin/products", env.Token, map[string]string{
		"title": "Pump", "description": "D",
	})

	rec := env.do(t, http.MethodDelete, "/api/admin/products/999", env.Token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete product 999: got status %d, want %d", rec.Code, http.StatusNotFound)
	}

	products := decode[[]models.Product](t, env.do(t, http.MethodGet, "/api/admin/products", env.Token, nil))
	if len(products) != 1 {
		t.Errorf("product list length = %d, want 1", len(products))
	}
}

func TestProductCreate_MissingDescription(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/products", env.Token, map[string]string{
		"title": "Nameless",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create product without description: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// --- Contacts ---

func TestContactSubmitAndAdminFlow(t *testing.T) {
	env := newTestEnv(t)

	// Public submission needs no token.
	rec := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "A", "email": "a@b.com", "message": "hi",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("public contact submit: got status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	contact := decode[models.Contact](t, rec)
	if contact.Read {
		t.Error("stored contact is marked read, want unread")
	}
	if contact.Date == "" {
		t.Error("stored contact has no server-assigned date")
	}

	// Admin sees one unread submission.
	contacts := decode[[]models.Contact](t, env.do(t, http.MethodGet, "/api/admin/contacts", env.Token, nil))
	if len(contacts) != 1 || contacts[0].Read {
		t.Fatalf("admin contact list = %+v, want one unread entry", contacts)
	}

	// Mark read twice; the second call must succeed unchanged.
	for i := 0; i < 2; i++ {
		marked := env.do(t, http.MethodPut, "/api/admin/contacts/1/read", env.Token, nil)
		if marked.Code != http.StatusOK {
			t.Fatalf("mark read (call %d): got status %d, want %d", i+1, marked.Code, http.StatusOK)
		}
		if c := decode[models.Contact](t, marked); !c.Read {
			t.Errorf("mark read (call %d): contact still unread", i+1)
		}
	}

	del := env.do(t, http.MethodDelete, "/api/admin/contacts/1", env.Token, nil)
	if del.Code != http.StatusOK {
		t.Fatalf("delete contact: got status %d, want %d", del.Code, http.StatusOK)
	}
}

func TestContactSubmit_MissingMessage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "A", "email": "a@b.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("contact without message: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// --- Auth gating ---

func TestAdminRoutes_RejectMissingOrBogusToken(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/blogs"},
		{http.MethodPost, "/api/admin/blogs"},
		{http.MethodGet, "/api/admin/products"},
		{http.MethodGet, "/api/admin/contacts"},
		{http.MethodDelete, "/api/admin/contacts/1"},
	}
	for _, p := range paths {
		for _, token := range []string{"", "bogus-token"} {
			rec := env.do(t, p.method, p.path, token, nil)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("%s %s with token %q: got status %d, want %d", p.method, p.path, token, rec.Code, http.StatusUnauthorized)
			}
		}
	}
}

func TestPublicReads_NeedNoToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/blogs", "/api/products"} {
		rec := env.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: got status %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}
