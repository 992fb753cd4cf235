// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Contact represents a message submitted through the public contact form.
// Phone and company are optional. The timestamp is assigned server-side
// at creation; the only mutation after that is the one-way read flag.
type Contact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
