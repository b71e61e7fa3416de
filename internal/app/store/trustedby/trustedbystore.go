// internal/app/store/trustedby/trustedbystore.go
package trustedby

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the trusted_by collection of client logos.
type Store struct {
	repo *content.Repository[models.TrustedBy]
}

// New creates a new trusted-by store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.TrustedBy](db, content.Config{
		Collection:  "trusted_by",
		OrderField:  "order",
		ActiveField: "active",
	})}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}
	_, err := s.repo.Collection().Indexes().CreateMany(ctx, indexes)
	return err
}

// ListPublic returns active entries in display order.
func (s *Store) ListPublic(ctx context.Context) ([]models.TrustedBy, error) {
	return s.repo.ListPublic(ctx, nil)
}

// ListAdmin returns every entry.
func (s *Store) ListAdmin(ctx context.Context) ([]models.TrustedBy, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetAdmin resolves an entry by id.
func (s *Store) GetAdmin(ctx context.Context, id string) (*models.TrustedBy, error) {
	return s.repo.GetAdmin(ctx, id)
}

// CreateInput contains the input for creating a trusted-by entry.
type CreateInput struct {
	Name  string
	Logo  string
	Order *int
}

// Create creates a new entry, appended to the end of the list by default.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.TrustedBy, error) {
	order := 0
	var err error
	if input.Order != nil {
		order = *input.Order
	} else if order, err = s.repo.NextOrder(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := models.TrustedBy{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Logo:      input.Logo,
		Order:     order,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateInput contains the input for updating a trusted-by entry.
type UpdateInput struct {
	Name   *string
	Logo   *string
	Order  *int
	Active *bool
}

// Update applies a partial update.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.TrustedBy, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Logo != nil {
		set["logo"] = *input.Logo
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the entry.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// ToggleActive flips visibility and returns the updated entry.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.TrustedBy, error) {
	return s.repo.Toggle(ctx, id)
}

// Reorder applies a batch of order assignments.
func (s *Store) Reorder(ctx context.Context, pairs []content.OrderPair) (int, error) {
	return s.repo.Reorder(ctx, pairs)
}
