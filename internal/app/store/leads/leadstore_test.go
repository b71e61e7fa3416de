package leads_test

import (
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/leads"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/buildright/buildright-api/internal/testutil"
)

func TestStore_CreateContact_StartsNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leads.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	contact, err := store.CreateContact(ctx, leads.ContactInput{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Phone:   "555-0100",
		Message: "Please call me",
	})
	if err != nil {
		t.Fatalf("CreateContact() error = %v", err)
	}
	if contact.Status != models.ContactStatusNew {
		t.Errorf("CreateContact() status = %q, want %q", contact.Status, models.ContactStatusNew)
	}
}

func TestStore_ListContacts_StatusFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leads.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.CreateContact(ctx, leads.ContactInput{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("CreateContact() error = %v", err)
	}
	if _, err := store.CreateContact(ctx, leads.ContactInput{Name: "B", Email: "b@example.com"}); err != nil {
		t.Fatalf("CreateContact() error = %v", err)
	}
	if _, err := store.UpdateContactStatus(ctx, a.ID, models.ContactStatusRead); err != nil {
		t.Fatalf("UpdateContactStatus() error = %v", err)
	}

	read, err := store.ListContacts(ctx, models.ContactStatusRead)
	if err != nil {
		t.Fatalf("ListContacts(read) error = %v", err)
	}
	if len(read) != 1 || read[0].ID != a.ID {
		t.Errorf("ListContacts(read) = %d docs, want only the read one", len(read))
	}

	all, err := store.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListContacts() = %d docs, want 2", len(all))
	}

	// An unknown filter value is rejected, not treated as match-nothing.
	if _, err := store.ListContacts(ctx, "archived"); !apperr.IsKind(err, apperr.BadRequest) {
		t.Errorf("ListContacts(archived) error = %v, want BadRequest", err)
	}
}

func TestStore_UpdateQuoteStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leads.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	quote, err := store.CreateQuote(ctx, leads.QuoteInput{
		Name:        "Casey",
		Email:       "casey@example.com",
		ServiceType: "roofing",
		Description: "New roof",
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}
	if quote.Status != models.QuoteStatusNew {
		t.Fatalf("CreateQuote() status = %q, want %q", quote.Status, models.QuoteStatusNew)
	}

	updated, err := store.UpdateQuoteStatus(ctx, quote.ID, models.QuoteStatusContacted)
	if err != nil {
		t.Fatalf("UpdateQuoteStatus() error = %v", err)
	}
	if updated.Status != models.QuoteStatusContacted {
		t.Errorf("UpdateQuoteStatus() status = %q, want contacted", updated.Status)
	}

	// A value outside the enum is rejected and the document is unchanged.
	if _, err := store.UpdateQuoteStatus(ctx, quote.ID, "archived"); !apperr.IsKind(err, apperr.BadRequest) {
		t.Fatalf("UpdateQuoteStatus(archived) error = %v, want BadRequest", err)
	}
	got, err := store.GetQuote(ctx, quote.ID.Hex())
	if err != nil {
		t.Fatalf("GetQuote() error = %v", err)
	}
	if got.Status != models.QuoteStatusContacted {
		t.Errorf("status = %q after rejected update, want contacted", got.Status)
	}
}

func TestStore_ListQuotes_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leads.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := store.CreateQuote(ctx, leads.QuoteInput{Name: name, Email: "x@example.com"}); err != nil {
			t.Fatalf("CreateQuote(%s) error = %v", name, err)
		}
	}

	quotes, err := store.ListQuotes(ctx, "")
	if err != nil {
		t.Fatalf("ListQuotes() error = %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("ListQuotes() = %d docs, want 3", len(quotes))
	}
	for i := 1; i < len(quotes); i++ {
		if quotes[i].CreatedAt.After(quotes[i-1].CreatedAt) {
			t.Errorf("ListQuotes() not newest first at index %d", i)
		}
	}
}
