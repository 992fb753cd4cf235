// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "errors"

// ErrNotFound is returned by store lookups when no record has the
// requested id.
var ErrNotFound = errors.New("record not found")
