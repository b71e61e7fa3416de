package aboutpage

import (
	"testing"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_SingletonConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.About{
		Story: models.StorySection{Heading: "First"},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, models.About{
		Story: models.StorySection{Heading: "Second"},
	})
	if !apperr.IsKind(err, apperr.Conflict) {
		t.Errorf("Create() second error = %v, want Conflict", err)
	}
}

func TestStore_PatchStory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	base, err := store.GetOrCreateDefault(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefault() error = %v", err)
	}

	body := "New story body"
	doc, err := store.PatchStory(ctx, StoryPatch{Body: &body})
	if err != nil {
		t.Fatalf("PatchStory() error = %v", err)
	}
	if doc.Story.Body != body {
		t.Errorf("PatchStory() body = %q, want %q", doc.Story.Body, body)
	}
	if doc.Story.Heading != base.Story.Heading {
		t.Errorf("PatchStory() heading changed: %q, want %q", doc.Story.Heading, base.Story.Heading)
	}
}

func TestStore_TeamMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc, err := store.UpsertTeamMember(ctx, models.TeamMember{Name: "Ana", Position: "Engineer"})
	if err != nil {
		t.Fatalf("UpsertTeamMember() error = %v", err)
	}
	if len(doc.Team) != 1 {
		t.Fatalf("UpsertTeamMember() team = %d entries, want 1", len(doc.Team))
	}
	id := doc.Team[0].ID
	if id == "" {
		t.Fatal("UpsertTeamMember() entry has no server-generated id")
	}

	doc, err = store.UpsertTeamMember(ctx, models.TeamMember{ID: id, Name: "Ana", Position: "Lead Engineer"})
	if err != nil {
		t.Fatalf("UpsertTeamMember(update) error = %v", err)
	}
	if len(doc.Team) != 1 {
		t.Fatalf("UpsertTeamMember(update) team = %d entries, want 1", len(doc.Team))
	}
	if doc.Team[0].Position != "Lead Engineer" {
		t.Errorf("UpsertTeamMember(update) position = %q, want updated", doc.Team[0].Position)
	}

	doc, err = store.DeleteTeamMember(ctx, id)
	if err != nil {
		t.Fatalf("DeleteTeamMember() error = %v", err)
	}
	if len(doc.Team) != 0 {
		t.Errorf("DeleteTeamMember() team = %d entries, want 0", len(doc.Team))
	}
	if _, err := store.DeleteTeamMember(ctx, id); err != mongo.ErrNoDocuments {
		t.Errorf("DeleteTeamMember(again) error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_Stats_ByIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.AddStat(ctx, models.Stat{Label: "Projects", Value: "120+"}); err != nil {
		t.Fatalf("AddStat() error = %v", err)
	}
	doc, err := store.AddStat(ctx, models.Stat{Label: "Years", Value: "20"})
	if err != nil {
		t.Fatalf("AddStat() error = %v", err)
	}
	if len(doc.Stats) != 2 {
		t.Fatalf("AddStat() stats = %d, want 2", len(doc.Stats))
	}

	doc, err = store.UpdateStat(ctx, 1, models.Stat{Label: "Years", Value: "21"})
	if err != nil {
		t.Fatalf("UpdateStat() error = %v", err)
	}
	if doc.Stats[1].Value != "21" {
		t.Errorf("UpdateStat() value = %q, want 21", doc.Stats[1].Value)
	}
	if doc.Stats[0].Value != "120+" {
		t.Errorf("UpdateStat() touched index 0: %q, want 120+", doc.Stats[0].Value)
	}

	// Out-of-range addressing is a not-found, not a silent no-op.
	if _, err := store.UpdateStat(ctx, 5, models.Stat{Label: "X", Value: "Y"}); err != mongo.ErrNoDocuments {
		t.Errorf("UpdateStat(5) error = %v, want mongo.ErrNoDocuments", err)
	}

	doc, err = store.DeleteStat(ctx, 0)
	if err != nil {
		t.Fatalf("DeleteStat() error = %v", err)
	}
	if len(doc.Stats) != 1 {
		t.Fatalf("DeleteStat() stats = %d, want 1", len(doc.Stats))
	}
	if doc.Stats[0].Label != "Years" {
		t.Errorf("DeleteStat() remaining = %q, want Years", doc.Stats[0].Label)
	}
	if _, err := store.DeleteStat(ctx, 3); err != mongo.ErrNoDocuments {
		t.Errorf("DeleteStat(3) error = %v, want mongo.ErrNoDocuments", err)
	}
}
