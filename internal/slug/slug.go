// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for site and page
// titles, plus the suffix-counter candidates used by the uniqueness
// retry loop in the stores.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Rosie's Bakery!" → "rosies-bakery"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Candidate returns the nth uniqueness candidate for a base slug: the
// base itself for n < 2, otherwise the base with a counter suffix
// ("home", "home-2", "home-3", ...).
func Candidate(base string, n int) string {
	if base == "" {
		base = "page"
	}
	if n < 2 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
