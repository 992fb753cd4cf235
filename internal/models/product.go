// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Product represents one catalog entry. Products have no draft state;
// every stored product is visible on the public site.
type Product struct {
	ID                  int      `json:"id"`
	Category            string   `json:"category"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Brands              []string `json:"brands"`
	Rating              float64  `json:"rating"`
	Image               string   `json:"image"`
	Specifications      []string `json:"specifications,omitempty"`
	Features            []string `json:"features,omitempty"`
	Applications        []string `json:"applications,omitempty"`
}
