// internal/app/store/faqs/faqstore.go
package faqs

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the faqs collection.
type Store struct {
	repo *content.Repository[models.FAQ]
}

// New creates a new FAQ store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.FAQ](db, content.Config{
		Collection:  "faqs",
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

// ListPublic returns active FAQs in display order.
func (s *Store) ListPublic(ctx context.Context) ([]models.FAQ, error) {
	return s.repo.ListPublic(ctx, nil)
}

// ListAdmin returns every FAQ.
func (s *Store) ListAdmin(ctx context.Context) ([]models.FAQ, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetAdmin resolves a FAQ by id.
func (s *Store) GetAdmin(ctx context.Context, id string) (*models.FAQ, error) {
	return s.repo.GetAdmin(ctx, id)
}

// CreateInput contains the input for creating a FAQ.
type CreateInput struct {
	Question string
	Answer   string
	Order    *int
}

// Create creates a new FAQ, appended to the end of the list by default.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.FAQ, error) {
	order := 0
	var err error
	if input.Order != nil {
		order = *input.Order
	} else if order, err = s.repo.NextOrder(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	faq := models.FAQ{
		ID:        primitive.NewObjectID(),
		Question:  input.Question,
		Answer:    input.Answer,
		Order:     order,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// UpdateInput contains the input for updating a FAQ.
type UpdateInput struct {
	Question *string
	Answer   *string
	Order    *int
	Active   *bool
}

// Update applies a partial update.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.FAQ, error) {
	set := bson.M{}
	if input.Question != nil {
		set["question"] = *input.Question
	}
	if input.Answer != nil {
		set["answer"] = *input.Answer
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the FAQ.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// ToggleActive flips visibility and returns the updated FAQ.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error) {
	return s.repo.Toggle(ctx, id)
}

// Reorder applies a batch of order assignments.
func (s *Store) Reorder(ctx context.Context, pairs []content.OrderPair) (int, error) {
	return s.repo.Reorder(ctx, pairs)
}
