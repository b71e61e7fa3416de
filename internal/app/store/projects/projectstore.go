// internal/app/store/projects/projectstore.go
package projects

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the projects collection.
type Store struct {
	repo *content.Repository[models.Project]
}

// New creates a new project store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.Project](db, content.Config{
		Collection:  "projects",
		ActiveField: "active",
		SortField:   "created_at",
		SortDesc:    true,
	})}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := s.repo.Collection().Indexes().CreateMany(ctx, indexes)
	return err
}

// ListPublic returns active projects, optionally filtered by category,
// newest first.
func (s *Store) ListPublic(ctx context.Context, category string) ([]models.Project, error) {
	extra := bson.M{}
	if category != "" {
		extra["category"] = category
	}
	return s.repo.ListPublic(ctx, extra)
}

// ListAdmin returns every project regardless of visibility.
func (s *Store) ListAdmin(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetPublic resolves an active project by id.
func (s *Store) GetPublic(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetPublic(ctx, id)
}

// GetAdmin resolves a project by id regardless of visibility.
func (s *Store) GetAdmin(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetAdmin(ctx, id)
}

// CreateInput contains the input for creating a project.
type CreateInput struct {
	Title       string
	Category    string
	Location    string
	Year        string
	Client      string
	Description string
	Image       models.Image
	Gallery     []models.Image
}

// Create creates a new project.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Project, error) {
	now := time.Now().UTC()
	project := models.Project{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Category:    input.Category,
		Location:    input.Location,
		Year:        input.Year,
		Client:      input.Client,
		Description: input.Description,
		Image:       input.Image,
		Gallery:     input.Gallery,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateInput contains the input for updating a project. Nil fields are
// left unchanged. Gallery, when present, replaces the list wholesale.
type UpdateInput struct {
	Title       *string
	Category    *string
	Location    *string
	Year        *string
	Client      *string
	Description *string
	Image       *models.Image
	Gallery     *[]models.Image
	Active      *bool
}

// Update applies a partial update.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.Project, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Year != nil {
		set["year"] = *input.Year
	}
	if input.Client != nil {
		set["client"] = *input.Client
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Gallery != nil {
		set["gallery"] = *input.Gallery
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the project document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// ToggleActive flips visibility and returns the updated project.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return s.repo.Toggle(ctx, id)
}

// Categories returns the distinct categories across active projects.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.repo.Collection().Distinct(ctx, "category", bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
