// internal/app/store/testimonials/testimonialstore.go
package testimonials

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the testimonials collection.
type Store struct {
	repo *content.Repository[models.Testimonial]
}

// New creates a new testimonial store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.Testimonial](db, content.Config{
		Collection:  "testimonials",
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

// ListPublic returns active testimonials in display order.
func (s *Store) ListPublic(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.ListPublic(ctx, nil)
}

// ListAdmin returns every testimonial.
func (s *Store) ListAdmin(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetAdmin resolves a testimonial by id.
func (s *Store) GetAdmin(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.repo.GetAdmin(ctx, id)
}

// CreateInput contains the input for creating a testimonial.
type CreateInput struct {
	Name        string
	Position    string
	Company     string
	Testimonial string
	Rating      int
	Order       *int
}

// Create creates a new testimonial, appended to the end of the list by
// default.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Testimonial, error) {
	order := 0
	var err error
	if input.Order != nil {
		order = *input.Order
	} else if order, err = s.repo.NextOrder(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := models.Testimonial{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Position:    input.Position,
		Company:     input.Company,
		Testimonial: input.Testimonial,
		Rating:      input.Rating,
		Order:       order,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateInput contains the input for updating a testimonial.
type UpdateInput struct {
	Name        *string
	Position    *string
	Company     *string
	Testimonial *string
	Rating      *int
	Order       *int
	Active      *bool
}

// Update applies a partial update.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.Testimonial, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Position != nil {
		set["position"] = *input.Position
	}
	if input.Company != nil {
		set["company"] = *input.Company
	}
	if input.Testimonial != nil {
		set["testimonial"] = *input.Testimonial
	}
	if input.Rating != nil {
		set["rating"] = *input.Rating
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the testimonial.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// ToggleActive flips visibility and returns the updated testimonial.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	return s.repo.Toggle(ctx, id)
}

// Reorder applies a batch of order assignments.
func (s *Store) Reorder(ctx context.Context, pairs []content.OrderPair) (int, error) {
	return s.repo.Reorder(ctx, pairs)
}
