package slug

import "testing"

// TestGenerate exercises the slug generator across typical titles,
// punctuation, and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Hello World", want: "hello-world"},
		{name: "title with year", input: "Opening in 2026", want: "opening-in-2026"},
		{name: "apostrophes stripped", input: "Rosie's Bakery", want: "rosies-bakery"},
		{name: "punctuation marks", input: "Contact us — today!", want: "contact-us-today"},
		{name: "ampersand dropped", input: "Fish & Chips", want: "fish-chips"},
		{name: "leading and trailing spaces", input: "  padded title  ", want: "padded-title"},
		{name: "consecutive separators collapse", input: "a -- b --- c", want: "a-b-c"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty string", input: "", want: ""},
		{name: "already a slug", input: "already-a-slug", want: "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCandidate verifies the suffix-counter sequence used by the slug
// uniqueness retry loop.
func TestCandidate(t *testing.T) {
	if got := Candidate("home", 0); got != "home" {
		t.Errorf("Candidate(home, 0) = %q", got)
	}
	if got := Candidate("home", 1); got != "home" {
		t.Errorf("Candidate(home, 1) = %q", got)
	}
	if got := Candidate("home", 2); got != "home-2" {
		t.Errorf("Candidate(home, 2) = %q", got)
	}
	if got := Candidate("home", 7); got != "home-7" {
		t.Errorf("Candidate(home, 7) = %q", got)
	}
	if got := Candidate("", 1); got != "page" {
		t.Errorf("Candidate(\"\", 1) = %q, want fallback", got)
	}
}
