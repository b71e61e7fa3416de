package blogs_test

import (
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/blogs"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_GetPublic_IncrementsViews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	blog, err := store.Create(ctx, blogs.CreateInput{
		Title:    "Concrete Curing Basics",
		Excerpt:  "How concrete cures",
		Content:  "body",
		Category: "guides",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if blog.Views != 0 {
		t.Errorf("Create() views = %d, want 0", blog.Views)
	}

	// Each successful public fetch adds exactly one view.
	got, err := store.GetPublic(ctx, blog.Slug)
	if err != nil {
		t.Fatalf("GetPublic() error = %v", err)
	}
	if got.Views != 1 {
		t.Errorf("GetPublic() views = %d, want 1", got.Views)
	}

	got, err = store.GetPublic(ctx, blog.ID.Hex())
	if err != nil {
		t.Fatalf("GetPublic() error = %v", err)
	}
	if got.Views != 2 {
		t.Errorf("GetPublic() views = %d, want 2", got.Views)
	}

	// Admin reads never touch the counter.
	got, err = store.GetAdmin(ctx, blog.ID.Hex())
	if err != nil {
		t.Fatalf("GetAdmin() error = %v", err)
	}
	if got.Views != 2 {
		t.Errorf("GetAdmin() views = %d, want 2 (no increment)", got.Views)
	}
}

func TestStore_GetPublic_UnpublishedDoesNotIncrement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	blog, err := store.Create(ctx, blogs.CreateInput{Title: "Draft Post", Content: "body", Category: "news"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.TogglePublished(ctx, blog.ID); err != nil {
		t.Fatalf("TogglePublished() error = %v", err)
	}

	if _, err := store.GetPublic(ctx, blog.Slug); err != mongo.ErrNoDocuments {
		t.Fatalf("GetPublic(unpublished) error = %v, want mongo.ErrNoDocuments", err)
	}

	got, err := store.GetAdmin(ctx, blog.ID.Hex())
	if err != nil {
		t.Fatalf("GetAdmin() error = %v", err)
	}
	if got.Views != 0 {
		t.Errorf("views = %d after failed public lookup, want 0", got.Views)
	}
}

func TestStore_TogglePublished_Roundtrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	blog, err := store.Create(ctx, blogs.CreateInput{Title: "Toggle Me", Content: "body", Category: "news"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	off, err := store.TogglePublished(ctx, blog.ID)
	if err != nil {
		t.Fatalf("TogglePublished() error = %v", err)
	}
	if off.Published {
		t.Error("TogglePublished() first call: published = true, want false")
	}

	on, err := store.TogglePublished(ctx, blog.ID)
	if err != nil {
		t.Fatalf("TogglePublished() error = %v", err)
	}
	if !on.Published {
		t.Error("TogglePublished() second call: published = false, want true")
	}
}

func TestStore_ListPublic_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	titles := []string{"One", "Two", "Three", "Four", "Five"}
	for _, title := range titles {
		if _, err := store.Create(ctx, blogs.CreateInput{Title: title, Content: "body", Category: "news"}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
	}

	page1, total, err := store.ListPublic(ctx, "", 2, 1)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if total != 5 {
		t.Errorf("ListPublic() total = %d, want 5", total)
	}
	if len(page1) != 2 {
		t.Fatalf("ListPublic() page 1 = %d docs, want 2", len(page1))
	}

	page3, _, err := store.ListPublic(ctx, "", 2, 3)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("ListPublic() page 3 = %d docs, want 1", len(page3))
	}

	// Category filter narrows the total.
	if _, err := store.Create(ctx, blogs.CreateInput{Title: "Guide", Content: "body", Category: "guides"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, guidesTotal, err := store.ListPublic(ctx, "guides", 10, 1)
	if err != nil {
		t.Fatalf("ListPublic(guides) error = %v", err)
	}
	if guidesTotal != 1 {
		t.Errorf("ListPublic(guides) total = %d, want 1", guidesTotal)
	}
}

func TestStore_Related(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	anchor, err := store.Create(ctx, blogs.CreateInput{Title: "Anchor", Content: "body", Category: "guides"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, title := range []string{"Sibling A", "Sibling B"} {
		if _, err := store.Create(ctx, blogs.CreateInput{Title: title, Content: "body", Category: "guides"}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
	}
	if _, err := store.Create(ctx, blogs.CreateInput{Title: "Other", Content: "body", Category: "news"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	related, err := store.Related(ctx, anchor.ID, anchor.Category, 3)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("Related() = %d docs, want 2", len(related))
	}
	for _, doc := range related {
		if doc.ID == anchor.ID {
			t.Error("Related() included the anchor post itself")
		}
		if doc.Category != "guides" {
			t.Errorf("Related() included category %q, want guides", doc.Category)
		}
	}
}
