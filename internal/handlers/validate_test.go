package handlers

import (
	"strings"
	"testing"

	"smartsite/internal/themes"
)

func TestValidateSiteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "Corner Bakery", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("x", 121), wantErr: true},
		{name: "at limit", input: strings.Repeat("x", 120), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateSiteName(tt.input)
			if (got != "") != tt.wantErr {
				t.Errorf("validateSiteName(%q) = %q, wantErr=%v", tt.input, got, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "", wantErr: false}, // optional
		{input: "hi@example.com", wantErr: false},
		{input: "not-an-email", wantErr: true},
		{input: "two@@example.com", wantErr: true},
		{input: "missing@tld", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := validateEmail(tt.input)
			if (got != "") != tt.wantErr {
				t.Errorf("validateEmail(%q) = %q, wantErr=%v", tt.input, got, tt.wantErr)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	for _, goal := range []string{"", "business", "portfolio", "personal", "event", "other"} {
		if msg := validateGoal(goal); msg != "" {
			t.Errorf("validateGoal(%q) = %q, want accepted", goal, msg)
		}
	}
	if msg := validateGoal("moonshot"); msg == "" {
		t.Error("unknown goal should be rejected")
	}
}

func TestValidateThemeFamily(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "", wantErr: false}, // optional, caller picks the default
		{input: "lumen", wantErr: false},
		{input: "terra", wantErr: false},
		{input: "vaporwave", wantErr: true},
		{input: "LUMEN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := validateThemeFamily(tt.input)
			if (got != "") != tt.wantErr {
				t.Errorf("validateThemeFamily(%q) = %q, wantErr=%v", tt.input, got, tt.wantErr)
			}
		})
	}
}

func TestValidateOverride(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		o       *themes.Override
		wantErr bool
	}{
		{name: "nil", o: nil, wantErr: false},
		{name: "empty", o: &themes.Override{}, wantErr: false},
		{name: "valid colors", o: &themes.Override{Primary: strPtr("#1a2b3c"), Accent: strPtr("#fff")}, wantErr: false},
		{name: "named color", o: &themes.Override{Primary: strPtr("red")}, wantErr: true},
		{name: "missing hash", o: &themes.Override{Background: strPtr("aabbcc")}, wantErr: true},
		{name: "valid button style", o: &themes.Override{ButtonStyle: strPtr("pill")}, wantErr: false},
		{name: "bad button style", o: &themes.Override{ButtonStyle: strPtr("neon")}, wantErr: true},
		{name: "fonts are free-form", o: &themes.Override{HeadingFont: strPtr("Fraunces")}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateOverride(tt.o)
			if (got != "") != tt.wantErr {
				t.Errorf("validateOverride() = %q, wantErr=%v", got, tt.wantErr)
			}
		})
	}
}
