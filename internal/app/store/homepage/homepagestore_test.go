package homepage

import (
	"testing"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_GetOrCreateDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc, err := store.GetOrCreateDefault(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefault() error = %v", err)
	}
	if doc.Hero.Heading == "" {
		t.Error("GetOrCreateDefault() hero heading empty, want default content")
	}

	// A second call returns the same document, not a new one.
	again, err := store.GetOrCreateDefault(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefault() second error = %v", err)
	}
	if again.ID != doc.ID {
		t.Errorf("GetOrCreateDefault() materialized twice: %s vs %s", doc.ID.Hex(), again.ID.Hex())
	}
}

func TestStore_Create_SingletonConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Homepage{
		Hero: models.HeroSection{Heading: "First"},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, models.Homepage{
		Hero: models.HeroSection{Heading: "Second"},
	})
	if !apperr.IsKind(err, apperr.Conflict) {
		t.Errorf("Create() second error = %v, want Conflict", err)
	}
}

func TestStore_PatchHero_MergesOnlyProvidedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	base, err := store.GetOrCreateDefault(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefault() error = %v", err)
	}

	heading := "Patched Heading"
	doc, err := store.PatchHero(ctx, HeroPatch{Heading: &heading})
	if err != nil {
		t.Fatalf("PatchHero() error = %v", err)
	}
	if doc.Hero.Heading != heading {
		t.Errorf("PatchHero() heading = %q, want %q", doc.Hero.Heading, heading)
	}
	if doc.Hero.Subheading != base.Hero.Subheading {
		t.Errorf("PatchHero() subheading changed: %q, want %q", doc.Hero.Subheading, base.Hero.Subheading)
	}
}

func TestStore_PatchHero_MaterializesDefaultFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Patching an empty collection creates the default, then applies.
	heading := "Fresh"
	doc, err := store.PatchHero(ctx, HeroPatch{Heading: &heading})
	if err != nil {
		t.Fatalf("PatchHero() error = %v", err)
	}
	if doc.Hero.Heading != "Fresh" {
		t.Errorf("PatchHero() heading = %q, want Fresh", doc.Hero.Heading)
	}
	if doc.ContactCTA.Heading == "" {
		t.Error("PatchHero() should have materialized default contact CTA content")
	}
}

func TestStore_ServiceEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetOrCreateDefault(ctx); err != nil {
		t.Fatalf("GetOrCreateDefault() error = %v", err)
	}

	// No id: a new entry with a server-generated id is appended.
	doc, err := store.UpsertService(ctx, models.HomepageService{Title: "Roofing", Description: "Roofs"})
	if err != nil {
		t.Fatalf("UpsertService() error = %v", err)
	}
	var created models.HomepageService
	found := false
	for _, svc := range doc.Services {
		if svc.Title == "Roofing" {
			created = svc
			found = true
		}
	}
	if !found {
		t.Fatal("UpsertService() did not append the entry")
	}
	if created.ID == "" {
		t.Fatal("UpsertService() appended entry has no server-generated id")
	}

	// Matching id: replaced in place, no growth.
	before := len(doc.Services)
	doc, err = store.UpsertService(ctx, models.HomepageService{
		ID: created.ID, Title: "Roofing & Gutters", Description: "Updated",
	})
	if err != nil {
		t.Fatalf("UpsertService(update) error = %v", err)
	}
	if len(doc.Services) != before {
		t.Errorf("UpsertService(update) grew list to %d, want %d", len(doc.Services), before)
	}
	for _, svc := range doc.Services {
		if svc.ID == created.ID && svc.Title != "Roofing & Gutters" {
			t.Errorf("UpsertService(update) title = %q, want updated", svc.Title)
		}
	}

	// Delete removes it; deleting again reports no match.
	doc, err = store.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteService() error = %v", err)
	}
	for _, svc := range doc.Services {
		if svc.ID == created.ID {
			t.Error("DeleteService() left the entry in place")
		}
	}
	if _, err := store.DeleteService(ctx, created.ID); err != mongo.ErrNoDocuments {
		t.Errorf("DeleteService(again) error = %v, want mongo.ErrNoDocuments", err)
	}
}
