package faqs_test

import (
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/store/faqs"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_AppendsToEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := faqs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, faqs.CreateInput{Question: "Q1", Answer: "A1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := store.Create(ctx, faqs.CreateInput{Question: "Q2", Answer: "A2"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.Order <= first.Order {
		t.Errorf("Create() second order = %d, want > %d", second.Order, first.Order)
	}

	// Explicit order wins over the append default.
	explicit := 42
	third, err := store.Create(ctx, faqs.CreateInput{Question: "Q3", Answer: "A3", Order: &explicit})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if third.Order != 42 {
		t.Errorf("Create() explicit order = %d, want 42", third.Order)
	}
}

func TestStore_Reorder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := faqs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	var ids []primitive.ObjectID
	for _, q := range []string{"Q1", "Q2", "Q3"} {
		faq, err := store.Create(ctx, faqs.CreateInput{Question: q, Answer: "A"})
		if err != nil {
			t.Fatalf("Create(%s) error = %v", q, err)
		}
		ids = append(ids, faq.ID)
	}

	// Reverse the display order.
	failed, err := store.Reorder(ctx, []content.OrderPair{
		{ID: ids[0], Order: 2},
		{ID: ids[1], Order: 1},
		{ID: ids[2], Order: 0},
	})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if failed != 0 {
		t.Fatalf("Reorder() failed = %d, want 0", failed)
	}

	docs, err := store.ListPublic(ctx)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("ListPublic() = %d docs, want 3", len(docs))
	}
	want := []string{"Q3", "Q2", "Q1"}
	for i, doc := range docs {
		if doc.Question != want[i] {
			t.Errorf("ListPublic()[%d] = %q, want %q", i, doc.Question, want[i])
		}
	}
}

func TestStore_Reorder_PartialFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := faqs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	faq, err := store.Create(ctx, faqs.CreateInput{Question: "Q1", Answer: "A1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// One real id, one unknown. The unknown pair fails; the real one is
	// still applied.
	failed, err := store.Reorder(ctx, []content.OrderPair{
		{ID: faq.ID, Order: 7},
		{ID: primitive.NewObjectID(), Order: 1},
	})
	if failed != 1 {
		t.Errorf("Reorder() failed = %d, want 1", failed)
	}
	if err == nil {
		t.Error("Reorder() error = nil, want first failure")
	}

	got, err := store.GetAdmin(ctx, faq.ID.Hex())
	if err != nil {
		t.Fatalf("GetAdmin() error = %v", err)
	}
	if got.Order != 7 {
		t.Errorf("order = %d after partial reorder, want 7", got.Order)
	}
}

func TestStore_ToggleActive_Roundtrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := faqs.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	faq, err := store.Create(ctx, faqs.CreateInput{Question: "Q", Answer: "A"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	off, err := store.ToggleActive(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ToggleActive() error = %v", err)
	}
	if off.Active {
		t.Error("ToggleActive() first call: active = true, want false")
	}

	public, err := store.ListPublic(ctx)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(public) != 0 {
		t.Errorf("ListPublic() = %d docs with FAQ toggled off, want 0", len(public))
	}

	on, err := store.ToggleActive(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ToggleActive() error = %v", err)
	}
	if !on.Active {
		t.Error("ToggleActive() second call: active = false, want true")
	}
}
