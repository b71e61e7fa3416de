// internal/app/store/services/servicestore.go
package services

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/system/slugify"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the services collection.
type Store struct {
	repo *content.Repository[models.Service]
}

// New creates a new service store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.Service](db, content.Config{
		Collection:  "services",
		OrderField:  "order",
		ActiveField: "active",
		SlugField:   "slug",
	})}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_services_slug"),
		},
		{Keys: bson.D{{Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}
	_, err := s.repo.Collection().Indexes().CreateMany(ctx, indexes)
	return err
}

// ListPublic returns active services in display order.
func (s *Store) ListPublic(ctx context.Context) ([]models.Service, error) {
	return s.repo.ListPublic(ctx, nil)
}

// ListAdmin returns every service, active or not.
func (s *Store) ListAdmin(ctx context.Context) ([]models.Service, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetPublic resolves an active service by id or slug.
func (s *Store) GetPublic(ctx context.Context, idOrSlug string) (*models.Service, error) {
	return s.repo.GetPublic(ctx, idOrSlug)
}

// GetAdmin resolves a service by id or slug regardless of visibility.
func (s *Store) GetAdmin(ctx context.Context, idOrSlug string) (*models.Service, error) {
	return s.repo.GetAdmin(ctx, idOrSlug)
}

// CreateInput contains the input for creating a service.
type CreateInput struct {
	Title       string
	Description string
	Image       models.Image
	Order       *int
	SubServices []models.SubService
}

// Create creates a new service. The slug is derived from the title and
// suffixed until unique; order defaults to the end of the list.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Service, error) {
	slug, err := slugify.Unique(ctx, input.Title, func(ctx context.Context, slug string) (bool, error) {
		return s.repo.SlugExists(ctx, slug, nil)
	})
	if err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else if order, err = s.repo.NextOrder(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	svc := models.Service{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Image:       input.Image,
		Order:       order,
		Active:      true,
		SubServices: input.SubServices,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateInput contains the input for updating a service. Nil fields are
// left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Image       *models.Image
	Order       *int
	Active      *bool
	SubServices *[]models.SubService
}

// Update applies a partial update. A title change re-derives the slug.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.Service, error) {
	set := bson.M{}
	if input.Title != nil {
		slug, err := slugify.Unique(ctx, *input.Title, func(ctx context.Context, slug string) (bool, error) {
			return s.repo.SlugExists(ctx, slug, &id)
		})
		if err != nil {
			return nil, err
		}
		set["title"] = *input.Title
		set["slug"] = slug
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	if input.SubServices != nil {
		set["sub_services"] = *input.SubServices
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the service document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// ToggleActive flips visibility and returns the updated service.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	return s.repo.Toggle(ctx, id)
}

// Reorder applies a batch of order assignments; see content.Repository.Reorder.
func (s *Store) Reorder(ctx context.Context, pairs []content.OrderPair) (int, error) {
	return s.repo.Reorder(ctx, pairs)
}
