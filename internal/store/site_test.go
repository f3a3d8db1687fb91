package store

import (
	"testing"

	"smartsite/internal/models"
	"smartsite/internal/themes"
	"smartsite/internal/token"
)

func TestSiteCreateAndFind(t *testing.T) {
	db := testDB(t)
	sites := NewSiteStore(db)

	site := createTestSite(t, db, "Test Pottery Studio")

	if site.Slug != "test-pottery-studio" {
		t.Errorf("expected slug 'test-pottery-studio', got %q", site.Slug)
	}
	if site.ThemeFamily != "slate" {
		t.Errorf("expected theme family 'slate', got %q", site.ThemeFamily)
	}

	found, err := sites.FindByID(site.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.Name != site.Name {
		t.Errorf("FindByID returned wrong site: %+v", found)
	}

	bySlug, err := sites.FindBySlug(site.Slug)
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if bySlug == nil || bySlug.ID != site.ID {
		t.Errorf("FindBySlug returned wrong site: %+v", bySlug)
	}
}

func TestSiteSlugDeduplication(t *testing.T) {
	db := testDB(t)

	first := createTestSite(t, db, "Duplicate Name Cafe")
	second := createTestSite(t, db, "Duplicate Name Cafe")

	if first.Slug == second.Slug {
		t.Errorf("expected distinct slugs, both got %q", first.Slug)
	}
	if second.Slug != "duplicate-name-cafe-2" {
		t.Errorf("expected suffix slug 'duplicate-name-cafe-2', got %q", second.Slug)
	}
}

func TestSiteFindMissing(t *testing.T) {
	db := testDB(t)
	sites := NewSiteStore(db)

	found, err := sites.FindBySlug("no-such-site-slug")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for missing site, got %+v", found)
	}
}

func TestSiteUpdateThemeKeepsOverride(t *testing.T) {
	db := testDB(t)
	sites := NewSiteStore(db)

	site := createTestSite(t, db, "Theme Switcher")

	primary := "#123456"
	override := &themes.Override{Primary: &primary}
	if err := sites.UpdateTheme(site.ID, "bloom", override); err != nil {
		t.Fatalf("update theme: %v", err)
	}

	// Switching the family again without touching the override must
	// leave the customization in place.
	if err := sites.UpdateTheme(site.ID, "mono", override); err != nil {
		t.Fatalf("update theme again: %v", err)
	}

	found, err := sites.FindByID(site.ID)
	if err != nil {
		t.Fatalf("reload site: %v", err)
	}
	if found.ThemeFamily != "mono" {
		t.Errorf("expected family 'mono', got %q", found.ThemeFamily)
	}
	if found.ThemeOverride == nil || found.ThemeOverride.Primary == nil {
		t.Fatal("expected override to survive family switch")
	}
	if *found.ThemeOverride.Primary != primary {
		t.Errorf("expected primary %q, got %q", primary, *found.ThemeOverride.Primary)
	}

	resolved := found.ResolvedTheme()
	if resolved.Colors.Primary != primary {
		t.Errorf("resolved palette should use override primary, got %q", resolved.Colors.Primary)
	}
	if resolved.Name != "Customized" {
		t.Errorf("expected resolved name 'Customized', got %q", resolved.Name)
	}
}

func TestSiteCreateInitializesPublishState(t *testing.T) {
	db := testDB(t)
	publish := NewPublishStore(db)

	site := createTestSite(t, db, "Fresh Unpublished Site")

	// A brand-new site has a publish row but no public snapshot.
	state, err := publish.FindPublished(site.ID)
	if err != nil {
		t.Fatalf("find published: %v", err)
	}
	if state != nil {
		t.Errorf("new site should not be published, got %+v", state)
	}

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM publish_states WHERE site_id = $1)`, site.ID).Scan(&exists); err != nil {
		t.Fatalf("check publish row: %v", err)
	}
	if !exists {
		t.Error("expected publish_states row to be created with the site")
	}
}

func TestSiteTokenRoundtrip(t *testing.T) {
	db := testDB(t)
	sites := NewSiteStore(db)

	plain, hash, err := token.Mint()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	site, err := sites.Create(&models.Site{
		Name:        "Token Holder",
		Goal:        "portfolio",
		ThemeFamily: "lumen",
		TokenHash:   hash,
	})
	if err != nil {
		t.Fatalf("create site: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM sites WHERE id = $1", site.ID) })

	found, err := sites.FindByID(site.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !token.Verify(found.TokenHash, plain) {
		t.Error("stored hash should verify the minted plaintext")
	}
	if token.Verify(found.TokenHash, "wrong-token") {
		t.Error("stored hash should reject a wrong token")
	}
}
