package starter

import (
	"encoding/json"
	"strings"
	"testing"

	"smartsite/internal/blocks"
	"smartsite/internal/models"
)

// TestGenerateUnionAndCanonicalOrder: the section set is the union of
// mandatory + selected + preset defaults, laid out in canonical order.
// slate's defaults are hero, about, services, footer.
func TestGenerateUnionAndCanonicalOrder(t *testing.T) {
	got := Generate("Acme", "slate", []models.SectionType{models.SectionGallery})

	want := []models.SectionType{
		models.SectionHero,
		models.SectionAbout,
		models.SectionServices,
		models.SectionGallery,
		models.SectionFooter,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sections, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Type != w {
			t.Errorf("section[%d] = %q, want %q", i, got[i].Type, w)
		}
		if got[i].SortOrder != i {
			t.Errorf("section[%d] order = %d, want %d", i, got[i].SortOrder, i)
		}
	}
}

// TestGenerateDropsUnknownTypes: selected types outside the canonical
// list are dropped silently.
func TestGenerateDropsUnknownTypes(t *testing.T) {
	got := Generate("Acme", "mono", []models.SectionType{"podcast", "webring"})

	for _, s := range got {
		if s.Type == "podcast" || s.Type == "webring" {
			t.Errorf("unknown type %q was generated", s.Type)
		}
	}
}

// TestGenerateMandatoryAlwaysPresent: hero and footer appear even with
// an empty selection and regardless of preset defaults.
func TestGenerateMandatoryAlwaysPresent(t *testing.T) {
	got := Generate("Acme", "does-not-exist", nil)

	if len(got) == 0 {
		t.Fatal("no sections generated")
	}
	if got[0].Type != models.SectionHero {
		t.Errorf("first section = %q, want hero", got[0].Type)
	}
	if got[len(got)-1].Type != models.SectionFooter {
		t.Errorf("last section = %q, want footer", got[len(got)-1].Type)
	}
}

// TestGenerateHeroInterpolatesSiteName: the hero payload carries the
// site name in its placeholder title.
func TestGenerateHeroInterpolatesSiteName(t *testing.T) {
	got := Generate("Rosie's Bakery", "slate", nil)

	var hero map[string]string
	if err := json.Unmarshal([]byte(got[0].DataJSON), &hero); err != nil {
		t.Fatalf("hero payload: %v", err)
	}
	if !strings.Contains(hero["title"], "Rosie's Bakery") {
		t.Errorf("hero title = %q, want it to contain the site name", hero["title"])
	}
}

// TestGenerateFlagshipCopyOverride: the flagship preset replaces hero
// and about copy with its own, all other presets use the generic text.
func TestGenerateFlagshipCopyOverride(t *testing.T) {
	flagship := Generate("Acme", "lumen", nil)
	generic := Generate("Acme", "slate", nil)

	if flagship[0].DataJSON == generic[0].DataJSON {
		t.Error("flagship hero copy should differ from the generic default")
	}

	var hero map[string]string
	if err := json.Unmarshal([]byte(flagship[0].DataJSON), &hero); err != nil {
		t.Fatalf("flagship hero payload: %v", err)
	}
	if !strings.Contains(hero["title"], "Acme") {
		t.Errorf("flagship hero title = %q, still interpolates the site name", hero["title"])
	}
}

// TestDefaultDataMigratesCleanly: every generated payload parses and
// the block migration can synthesize a view from it without error.
func TestDefaultDataMigratesCleanly(t *testing.T) {
	for _, spec := range Generate("Acme", "terra", []models.SectionType{
		models.SectionGallery, models.SectionTestimonials,
	}) {
		doc, err := blocks.Decode(spec.DataJSON)
		if err != nil {
			t.Errorf("%s payload does not parse: %v", spec.Type, err)
		}
		if doc.Migrated() {
			t.Errorf("%s starter payload should use the legacy shape", spec.Type)
		}
	}
}

// TestDefaultDataUnknownType falls back to an empty object.
func TestDefaultDataUnknownType(t *testing.T) {
	if got := DefaultData("mystery", "Acme", "slate"); got != "{}" {
		t.Errorf("unknown type payload = %q, want {}", got)
	}
}
