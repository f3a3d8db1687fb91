package store

import (
	"errors"
	"testing"

	"smartsite/internal/models"
	"smartsite/internal/ordering"
)

func TestPageCreateAppendsOrder(t *testing.T) {
	db := testDB(t)
	pages := NewPageStore(db)

	site := createTestSite(t, db, "Ordered Pages Site")

	home := createTestPage(t, db, site.ID, "Home")
	about := createTestPage(t, db, site.ID, "About")
	contact := createTestPage(t, db, site.ID, "Contact")

	if home.SortOrder != 0 || about.SortOrder != 1 || contact.SortOrder != 2 {
		t.Errorf("expected orders 0,1,2 got %d,%d,%d",
			home.SortOrder, about.SortOrder, contact.SortOrder)
	}

	list, err := pages.ListBySite(site.ID)
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(list))
	}
	if list[0].Title != "Home" || list[2].Title != "Contact" {
		t.Errorf("pages not listed in sort order: %v", []string{list[0].Title, list[1].Title, list[2].Title})
	}
}

func TestPageSlugDeduplicationWithinSite(t *testing.T) {
	db := testDB(t)

	site := createTestSite(t, db, "Page Slug Site")
	other := createTestSite(t, db, "Other Slug Site")

	first := createTestPage(t, db, site.ID, "Services")
	second := createTestPage(t, db, site.ID, "Services")
	elsewhere := createTestPage(t, db, other.ID, "Services")

	if first.Slug != "services" {
		t.Errorf("expected slug 'services', got %q", first.Slug)
	}
	if second.Slug != "services-2" {
		t.Errorf("expected slug 'services-2', got %q", second.Slug)
	}
	// Slugs are only unique per site.
	if elsewhere.Slug != "services" {
		t.Errorf("expected slug 'services' on other site, got %q", elsewhere.Slug)
	}
}

func TestPageReorderTransaction(t *testing.T) {
	db := testDB(t)
	pages := NewPageStore(db)

	site := createTestSite(t, db, "Reorder Site")
	a := createTestPage(t, db, site.ID, "Alpha")
	b := createTestPage(t, db, site.ID, "Beta")
	c := createTestPage(t, db, site.ID, "Gamma")

	entries := []ordering.Entry{
		{ID: a.ID.String(), Order: a.SortOrder},
		{ID: b.ID.String(), Order: b.SortOrder},
		{ID: c.ID.String(), Order: c.SortOrder},
	}
	changes, err := ordering.Move(entries, c.ID.String(), ordering.Up)
	if err != nil {
		t.Fatalf("compute move: %v", err)
	}
	if err := pages.UpdateOrders(site.ID, changes); err != nil {
		t.Fatalf("apply reorder: %v", err)
	}

	list, err := pages.ListBySite(site.ID)
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	got := []string{list[0].Title, list[1].Title, list[2].Title}
	want := []string{"Alpha", "Gamma", "Beta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestPageSetHomeIsExclusive(t *testing.T) {
	db := testDB(t)
	pages := NewPageStore(db)

	site := createTestSite(t, db, "Home Flag Site")
	a := createTestPage(t, db, site.ID, "First")
	b := createTestPage(t, db, site.ID, "Second")

	if err := pages.SetHome(site.ID, a.ID); err != nil {
		t.Fatalf("set home a: %v", err)
	}
	if err := pages.SetHome(site.ID, b.ID); err != nil {
		t.Fatalf("set home b: %v", err)
	}

	list, err := pages.ListBySite(site.ID)
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	homes := 0
	for _, p := range list {
		if p.IsHome {
			homes++
			if p.ID != b.ID {
				t.Errorf("wrong page marked home: %s", p.Title)
			}
		}
	}
	if homes != 1 {
		t.Errorf("expected exactly one home page, got %d", homes)
	}
}

func TestPageDeleteLastRejected(t *testing.T) {
	db := testDB(t)
	pages := NewPageStore(db)

	site := createTestSite(t, db, "Single Page Site")
	only := createTestPage(t, db, site.ID, "Lonely")

	err := pages.Delete(only.ID, site.ID)
	if !errors.Is(err, ErrLastPage) {
		t.Fatalf("expected ErrLastPage, got %v", err)
	}

	// Page must still exist after the rejected delete.
	found, err := pages.FindByID(only.ID)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if found == nil {
		t.Fatal("page should survive a rejected delete")
	}
}

func TestSectionCreateAndReorder(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	site := createTestSite(t, db, "Section Site")
	page := createTestPage(t, db, site.ID, "Landing")

	hero, err := sections.Create(page.ID, models.SectionHero, `{"title":"Hi"}`)
	if err != nil {
		t.Fatalf("create hero: %v", err)
	}
	about, err := sections.Create(page.ID, models.SectionAbout, `{}`)
	if err != nil {
		t.Fatalf("create about: %v", err)
	}
	if hero.SortOrder != 0 || about.SortOrder != 1 {
		t.Errorf("expected orders 0,1 got %d,%d", hero.SortOrder, about.SortOrder)
	}

	entries := []ordering.Entry{
		{ID: hero.ID.String(), Order: hero.SortOrder},
		{ID: about.ID.String(), Order: about.SortOrder},
	}
	changes, err := ordering.DragTo(entries, about.ID.String(), hero.ID.String())
	if err != nil {
		t.Fatalf("compute drag: %v", err)
	}
	if err := sections.UpdateOrders(page.ID, changes); err != nil {
		t.Fatalf("apply reorder: %v", err)
	}

	list, err := sections.ListByPage(page.ID)
	if err != nil {
		t.Fatalf("list sections: %v", err)
	}
	if len(list) != 2 || list[0].Type != models.SectionAbout {
		t.Errorf("expected about first after drag, got %+v", list)
	}
}

func TestSectionUpdateDataWholesale(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	site := createTestSite(t, db, "Payload Site")
	page := createTestPage(t, db, site.ID, "Landing")

	sec, err := sections.Create(page.ID, models.SectionText, `{"text":"before"}`)
	if err != nil {
		t.Fatalf("create section: %v", err)
	}

	if err := sections.UpdateData(sec.ID, `{"blocks":[{"id":"b1","type":"text","order":0,"content":"after"}]}`); err != nil {
		t.Fatalf("update data: %v", err)
	}

	found, err := sections.FindByID(sec.ID)
	if err != nil {
		t.Fatalf("find section: %v", err)
	}
	if found == nil {
		t.Fatal("section missing after update")
	}
	if found.DataJSON == `{"text":"before"}` {
		t.Error("payload should have been replaced wholesale")
	}
}
