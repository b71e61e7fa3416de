// internal/app/store/leads/leadstore.go
package leads

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the contacts and quotes collections. Both are
// inbound leads: the public creates them, administrators read them and
// move them through their status enum.
type Store struct {
	contacts *content.Repository[models.Contact]
	quotes   *content.Repository[models.Quote]
}

// New creates a new lead store.
func New(db *mongo.Database) *Store {
	return &Store{
		contacts: content.New[models.Contact](db, content.Config{
			Collection: "contacts",
			SortField:  "created_at",
			SortDesc:   true,
		}),
		quotes: content.New[models.Quote](db, content.Config{
			Collection: "quotes",
			SortField:  "created_at",
			SortDesc:   true,
		}),
	}
}

// EnsureIndexes creates necessary indexes for both collections.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := s.contacts.Collection().Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}
	_, err := s.quotes.Collection().Indexes().CreateMany(ctx, indexes)
	return err
}

// ContactInput contains the public contact form fields.
type ContactInput struct {
	Name        string
	Phone       string
	Email       string
	ServiceType string
	Message     string
}

// CreateContact stores a new contact submission with status "new".
func (s *Store) CreateContact(ctx context.Context, input ContactInput) (*models.Contact, error) {
	now := time.Now().UTC()
	contact := models.Contact{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		ServiceType: input.ServiceType,
		Message:     input.Message,
		Status:      models.ContactStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.contacts.Insert(ctx, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts returns contact leads newest first, optionally filtered by
// status. An unknown status filter is rejected rather than silently
// matching nothing.
func (s *Store) ListContacts(ctx context.Context, status string) ([]models.Contact, error) {
	extra := bson.M{}
	if status != "" {
		if !models.IsValidContactStatus(status) {
			return nil, apperr.Newf(apperr.BadRequest, "invalid status %q", status)
		}
		extra["status"] = status
	}
	return s.contacts.ListAdmin(ctx, extra)
}

// GetContact resolves a contact lead by id.
func (s *Store) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	return s.contacts.GetAdmin(ctx, id)
}

// UpdateContactStatus moves a contact lead to a new status.
func (s *Store) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, apperr.Newf(apperr.BadRequest, "invalid status %q", status)
	}
	return s.contacts.UpdateByID(ctx, id, bson.M{"status": status})
}

// DeleteContact removes a contact lead.
func (s *Store) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return s.contacts.DeleteByID(ctx, id)
}

// QuoteInput contains the public quote-request form fields.
type QuoteInput struct {
	Name        string
	Phone       string
	Email       string
	ServiceType string
	Description string
	Address     string
}

// CreateQuote stores a new quote request with status "new".
func (s *Store) CreateQuote(ctx context.Context, input QuoteInput) (*models.Quote, error) {
	now := time.Now().UTC()
	quote := models.Quote{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		ServiceType: input.ServiceType,
		Description: input.Description,
		Address:     input.Address,
		Status:      models.QuoteStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.quotes.Insert(ctx, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// ListQuotes returns quote requests newest first, optionally filtered by
// status.
func (s *Store) ListQuotes(ctx context.Context, status string) ([]models.Quote, error) {
	extra := bson.M{}
	if status != "" {
		if !models.IsValidQuoteStatus(status) {
			return nil, apperr.Newf(apperr.BadRequest, "invalid status %q", status)
		}
		extra["status"] = status
	}
	return s.quotes.ListAdmin(ctx, extra)
}

// GetQuote resolves a quote request by id.
func (s *Store) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	return s.quotes.GetAdmin(ctx, id)
}

// UpdateQuoteStatus moves a quote request to a new status.
func (s *Store) UpdateQuoteStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Quote, error) {
	if !models.IsValidQuoteStatus(status) {
		return nil, apperr.Newf(apperr.BadRequest, "invalid status %q", status)
	}
	return s.quotes.UpdateByID(ctx, id, bson.M{"status": status})
}

// DeleteQuote removes a quote request.
func (s *Store) DeleteQuote(ctx context.Context, id primitive.ObjectID) error {
	return s.quotes.DeleteByID(ctx, id)
}
