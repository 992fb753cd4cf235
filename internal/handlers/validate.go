// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"

	"vitrine/internal/models"
)

// errMissingFields is the single validation message for absent required
// fields. It deliberately names no field so responses stay uniform.
const errMissingFields = "Missing required fields"

// validBlog reports whether the post carries every required field.
func validBlog(b models.BlogPost) bool {
	return !anyBlank(b.Title, b.Excerpt, b.Content)
}

// validProduct reports whether the product carries every required field.
func validProduct(p models.Product) bool {
	return !anyBlank(p.Title, p.Description)
}

// validContact reports whether the submission carries every required field.
func validContact(c models.Contact) bool {
	return !anyBlank(c.Name, c.Email, c.Message)
}

// anyBlank reports whether any value is empty after trimming whitespace.
func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
