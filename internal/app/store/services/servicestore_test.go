package services_test

import (
	"regexp"
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/services"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestStore_Create_Slug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := services.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, services.CreateInput{
		Title:       "Kitchen & Bathroom Remodeling!",
		Description: "Full remodels",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !slugRe.MatchString(svc.Slug) {
		t.Errorf("Create() slug = %q, want lowercase alphanumerics and single hyphens", svc.Slug)
	}
	if svc.Slug != "kitchen-bathroom-remodeling" {
		t.Errorf("Create() slug = %q, want %q", svc.Slug, "kitchen-bathroom-remodeling")
	}
	if !svc.Active {
		t.Error("Create() new service should be active")
	}

	// Same title again gets a suffixed slug, not a duplicate.
	second, err := store.Create(ctx, services.CreateInput{
		Title:       "Kitchen & Bathroom Remodeling!",
		Description: "Another",
	})
	if err != nil {
		t.Fatalf("Create() second error = %v", err)
	}
	if second.Slug == svc.Slug {
		t.Errorf("Create() second slug = %q, want distinct from first", second.Slug)
	}
	if !slugRe.MatchString(second.Slug) {
		t.Errorf("Create() second slug = %q, not a valid slug", second.Slug)
	}
}

func TestStore_GetPublic_IDAndSlugResolveSameDoc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := services.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, services.CreateInput{Title: "Roofing", Description: "Roofs"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byID, err := store.GetPublic(ctx, svc.ID.Hex())
	if err != nil {
		t.Fatalf("GetPublic(id) error = %v", err)
	}
	bySlug, err := store.GetPublic(ctx, svc.Slug)
	if err != nil {
		t.Fatalf("GetPublic(slug) error = %v", err)
	}
	if byID.ID != bySlug.ID {
		t.Errorf("GetPublic() id lookup and slug lookup resolved different documents: %s vs %s",
			byID.ID.Hex(), bySlug.ID.Hex())
	}
}

func TestStore_Visibility(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := services.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	visible, err := store.Create(ctx, services.CreateInput{Title: "Visible", Description: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	hidden, err := store.Create(ctx, services.CreateInput{Title: "Hidden", Description: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.ToggleActive(ctx, hidden.ID); err != nil {
		t.Fatalf("ToggleActive() error = %v", err)
	}

	public, err := store.ListPublic(ctx)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(public) != 1 || public[0].ID != visible.ID {
		t.Errorf("ListPublic() = %d docs, want only the visible one", len(public))
	}

	all, err := store.ListAdmin(ctx)
	if err != nil {
		t.Fatalf("ListAdmin() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListAdmin() = %d docs, want 2", len(all))
	}

	// Hidden doc is invisible publicly, by id and by slug alike.
	if _, err := store.GetPublic(ctx, hidden.ID.Hex()); err != mongo.ErrNoDocuments {
		t.Errorf("GetPublic(hidden id) error = %v, want mongo.ErrNoDocuments", err)
	}
	if _, err := store.GetPublic(ctx, hidden.Slug); err != mongo.ErrNoDocuments {
		t.Errorf("GetPublic(hidden slug) error = %v, want mongo.ErrNoDocuments", err)
	}
	if _, err := store.GetAdmin(ctx, hidden.ID.Hex()); err != nil {
		t.Errorf("GetAdmin(hidden) error = %v, want nil", err)
	}
}

func TestStore_Update_TitleRederivesSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := services.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, services.CreateInput{Title: "Old Title", Description: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	title := "Completely New Title"
	updated, err := store.Update(ctx, svc.ID, services.UpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Slug != "completely-new-title" {
		t.Errorf("Update() slug = %q, want %q", updated.Slug, "completely-new-title")
	}

	// The old slug no longer resolves.
	if _, err := store.GetPublic(ctx, "old-title"); err != mongo.ErrNoDocuments {
		t.Errorf("GetPublic(old slug) error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_Create_OrderDefaultsToEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := services.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, services.CreateInput{Title: "First", Description: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Order != 0 {
		t.Errorf("Create() first order = %d, want 0", first.Order)
	}

	second, err := store.Create(ctx, services.CreateInput{Title: "Second", Description: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.Order != first.Order+1 {
		t.Errorf("Create() second order = %d, want %d", second.Order, first.Order+1)
	}
}
