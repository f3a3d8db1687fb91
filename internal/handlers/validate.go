// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"smartsite/internal/themes"
)

// Validation limits for site and page fields.
const (
	maxSiteNameLen  = 120
	maxPageTitleLen = 200
	maxEmailLen     = 254
)

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// siteGoals are the accepted values for the site creation wizard.
var siteGoals = map[string]bool{
	"business":  true,
	"portfolio": true,
	"personal":  true,
	"event":     true,
	"other":     true,
}

// validateSiteName checks the site name and returns the first error found.
func validateSiteName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Site name is required."
	}
	if utf8.RuneCountInString(name) > maxSiteNameLen {
		return "Site name is too long (max 120 characters)."
	}
	return ""
}

// validatePageTitle checks a page title.
func validatePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Page title is required."
	}
	if utf8.RuneCountInString(title) > maxPageTitleLen {
		return "Page title is too long (max 200 characters)."
	}
	return ""
}

// validateEmail checks an optional contact email.
func validateEmail(email string) string {
	if email == "" {
		return ""
	}
	if len(email) > maxEmailLen || !emailRe.MatchString(email) {
		return "Contact email is not a valid address."
	}
	return ""
}

// validateGoal checks the site goal enum. Empty is allowed.
func validateGoal(goal string) string {
	if goal == "" || siteGoals[goal] {
		return ""
	}
	return "Unknown site goal."
}

// validateThemeFamily checks a theme family against the preset catalog.
// Empty is allowed; callers decide the default.
func validateThemeFamily(family string) string {
	if family == "" {
		return ""
	}
	if themes.Find(family).ID != family {
		return "Unknown theme family."
	}
	return ""
}

// validateOverride checks every color field of a theme override. Fonts
// and radius are free-form strings; colors must be hex.
func validateOverride(o *themes.Override) string {
	if o == nil {
		return ""
	}
	colors := map[string]*string{
		"primary":    o.Primary,
		"secondary":  o.Secondary,
		"accent":     o.Accent,
		"background": o.Background,
		"text":       o.Text,
		"muted":      o.Muted,
	}
	for field, v := range colors {
		if v != nil && !hexColorRe.MatchString(*v) {
			return "Color " + field + " must be a hex value like #1a2b3c."
		}
	}
	if o.ButtonStyle != nil {
		switch themes.ButtonStyle(*o.ButtonStyle) {
		case themes.ButtonRounded, themes.ButtonPill, themes.ButtonSquare:
		default:
			return "Unknown button style."
		}
	}
	return ""
}
