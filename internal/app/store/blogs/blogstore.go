// internal/app/store/blogs/blogstore.go
package blogs

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

// Store provides access to the blogs collection.
type Store struct {
	repo *content.Repository[models.Blog]
}

// New creates a new blog store.
func New(db *mongo.Database) *Store {
	return &Store{repo: content.New[models.Blog](db, content.Config{
		Collection:  "blogs",
		ActiveField: "published",
		SlugField:   "slug",
		SortField:   "created_at",
		SortDesc:    true,
	})}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_blogs_slug"),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	_, err := s.repo.Collection().Indexes().CreateMany(ctx, indexes)
	return err
}

// ListPublic returns one page of published posts, optionally filtered by
// category, newest first, plus the total match count.
func (s *Store) ListPublic(ctx context.Context, category string, limit, page int64) ([]models.Blog, int64, error) {
	extra := bson.M{}
	if category != "" {
		extra["category"] = category
	}
	return s.repo.ListPage(ctx, extra, true, limit, page)
}

// ListAdmin returns every post, published or not.
func (s *Store) ListAdmin(ctx context.Context) ([]models.Blog, error) {
	return s.repo.ListAdmin(ctx, nil)
}

// GetPublic resolves a published post by id or slug and increments its
// view counter by exactly one, atomically, before returning the updated
// document. A missing or unpublished post increments nothing.
func (s *Store) GetPublic(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	filter := s.repo.IDOrSlugFilter(idOrSlug)
	filter["published"] = true

	var blog models.Blog
	err := s.repo.Collection().FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetAdmin resolves a post by id or slug regardless of publication state,
// without touching the view counter.
func (s *Store) GetAdmin(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	return s.repo.GetAdmin(ctx, idOrSlug)
}

// Related returns up to limit other published posts in the same category,
// newest first.
func (s *Store) Related(ctx context.Context, id primitive.ObjectID, category string, limit int64) ([]models.Blog, error) {
	cursor, err := s.repo.Collection().Find(ctx,
		bson.M{
			"published": true,
			"category":  category,
			"_id":       bson.M{"$ne": id},
		},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	related := []models.Blog{}
	if err := cursor.All(ctx, &related); err != nil {
		return nil, err
	}
	return related, nil
}

// CreateInput contains the input for creating a blog post.
type CreateInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Author   string
	Image    models.Image
}

// Create creates a new post. The slug derives from the title; new posts
// start published with zero views.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Blog, error) {
	slug, err := slugify.Unique(ctx, input.Title, func(ctx context.Context, slug string) (bool, error) {
		return s.repo.SlugExists(ctx, slug, nil)
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := models.Blog{
		ID:        primitive.NewObjectID(),
		Title:     input.Title,
		Slug:      slug,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Category:  input.Category,
		Author:    input.Author,
		Image:     input.Image,
		Published: true,
		Views:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateInput contains the input for updating a post. Nil fields are left
// unchanged; Views is never client-writable.
type UpdateInput struct {
	Title     *string
	Excerpt   *string
	Content   *string
	Category  *string
	Author    *string
	Image     *models.Image
	Published *bool
}

// Update applies a partial update. A title change re-derives the slug.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.Blog, error) {
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
	if input.Excerpt != nil {
		set["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Published != nil {
		set["published"] = *input.Published
	}
	return s.repo.UpdateByID(ctx, id, set)
}

// Delete removes the post document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteByID(ctx, id)
}

// TogglePublished flips publication state and returns the updated post.
func (s *Store) TogglePublished(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.repo.Toggle(ctx, id)
}
