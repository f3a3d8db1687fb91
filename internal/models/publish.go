// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PublishState is the one-to-one publish record of a site. SnapshotJSON
// is a fully denormalized copy of the site's content tree written at
// publish time; once written it is self-contained and the public
// serving path never joins back to the live page/section tables. It is
// overwritten wholesale on every publish, never partially updated.
type PublishState struct {
	SiteID       uuid.UUID  `json:"site_id"`
	IsPublished  bool       `json:"is_published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	SnapshotJSON string     `json:"-"`
}
