// Package content implements the generic content-repository pattern shared
// by every collection-backed content type.
//
// Each concrete store (services, projects, blogs, faqs, testimonials,
// trusted-by, leads) composes a Repository with a Config describing the
// collection's shape: whether it has an explicit order field, a visibility
// flag, and slug lookups. Public reads apply the visibility predicate
// implicitly; admin reads never do.
package content

import (
	"context"
	"sync"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/storeutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config describes a content collection's behavior.
type Config struct {
	Collection  string // mongo collection name
	OrderField  string // explicit order field ("order"), empty if unordered
	ActiveField string // visibility flag ("active", "published"), empty if always visible
	SlugField   string // slug field ("slug"), empty if lookups are id-only
	SortField   string // fallback sort when OrderField is empty; default "created_at"
	SortDesc    bool   // fallback sort direction
}

// Repository provides uniform CRUD, list/filter, soft-activation and
// reorder behavior over one collection, decoding into T.
type Repository[T any] struct {
	c   *mongo.Collection
	cfg Config
}

// New creates a repository for the configured collection.
func New[T any](db *mongo.Database, cfg Config) *Repository[T] {
	if cfg.SortField == "" {
		cfg.SortField = "created_at"
	}
	return &Repository[T]{c: db.Collection(cfg.Collection), cfg: cfg}
}

// Collection exposes the underlying collection for type-specific operations
// that the generic surface does not cover.
func (r *Repository[T]) Collection() *mongo.Collection { return r.c }

// sortOrder returns the collection's natural ordering: explicit order field
// ascending with creation-time tiebreak, or the fallback sort.
func (r *Repository[T]) sortOrder() bson.D {
	if r.cfg.OrderField != "" {
		return bson.D{{Key: r.cfg.OrderField, Value: 1}, {Key: "created_at", Value: 1}}
	}
	dir := 1
	if r.cfg.SortDesc {
		dir = -1
	}
	return bson.D{{Key: r.cfg.SortField, Value: dir}}
}

// publicFilter merges the implicit visibility predicate into extra.
func (r *Repository[T]) publicFilter(extra bson.M) bson.M {
	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	if r.cfg.ActiveField != "" {
		filter[r.cfg.ActiveField] = true
	}
	return filter
}

// IDOrSlugFilter resolves an identifier to a lookup filter: a valid
// ObjectID hex matches _id, anything else matches the slug field when the
// type has one. A non-hex identifier on a slug-less type matches nothing.
func (r *Repository[T]) IDOrSlugFilter(idOrSlug string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		return bson.M{"_id": oid}
	}
	if r.cfg.SlugField != "" {
		return bson.M{r.cfg.SlugField: idOrSlug}
	}
	return bson.M{"_id": nil}
}

// ListPublic returns visible documents matching extra, in natural order.
// An empty result is not an error.
func (r *Repository[T]) ListPublic(ctx context.Context, extra bson.M) ([]T, error) {
	return r.list(ctx, r.publicFilter(extra), nil)
}

// ListAdmin returns every document matching extra, visibility ignored.
func (r *Repository[T]) ListAdmin(ctx context.Context, extra bson.M) ([]T, error) {
	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	return r.list(ctx, filter, nil)
}

// ListPage returns one page of documents plus the total match count.
// public toggles the implicit visibility predicate.
func (r *Repository[T]) ListPage(ctx context.Context, extra bson.M, public bool, limit, page int64) ([]T, int64, error) {
	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	if public {
		filter = r.publicFilter(filter)
	}

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	docs, err := r.list(ctx, filter, storeutil.Paginate(limit, page))
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *Repository[T]) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	if opts == nil {
		opts = options.Find()
	}
	opts.SetSort(r.sortOrder())

	cursor, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetPublic resolves by id or slug among visible documents only. A hidden
// or missing document is mongo.ErrNoDocuments either way.
func (r *Repository[T]) GetPublic(ctx context.Context, idOrSlug string) (*T, error) {
	var doc T
	filter := r.publicFilter(r.IDOrSlugFilter(idOrSlug))
	if err := r.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetAdmin resolves by id or slug, visibility ignored.
func (r *Repository[T]) GetAdmin(ctx context.Context, idOrSlug string) (*T, error) {
	var doc T
	if err := r.c.FindOne(ctx, r.IDOrSlugFilter(idOrSlug)).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Insert stores a fully populated document.
func (r *Repository[T]) Insert(ctx context.Context, doc *T) error {
	_, err := r.c.InsertOne(ctx, doc)
	return err
}

// UpdateByID applies a partial $set and returns the updated document.
// Fields absent from set are left unchanged.
func (r *Repository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	set["updated_at"] = time.Now().UTC()

	var doc T
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes the document.
func (r *Repository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Toggle flips the visibility flag atomically and returns the updated
// document. Only valid for types configured with an ActiveField.
func (r *Repository[T]) Toggle(ctx context.Context, id primitive.ObjectID) (*T, error) {
	pipeline := bson.A{bson.M{"$set": bson.M{
		r.cfg.ActiveField: bson.M{"$not": "$" + r.cfg.ActiveField},
		"updated_at":      "$$NOW",
	}}}

	var doc T
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// OrderPair assigns an order value to a document.
type OrderPair struct {
	ID    primitive.ObjectID `json:"id"`
	Order int                `json:"order"`
}

// Reorder applies the pairs independently and concurrently. The batch is
// not atomic: a failing pair does not roll back the others. The number of
// failed pairs is returned alongside the first error.
func (r *Repository[T]) Reorder(ctx context.Context, pairs []OrderPair) (failed int, firstErr error) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	now := time.Now().UTC()

	for _, pair := range pairs {
		wg.Add(1)
		go func(p OrderPair) {
			defer wg.Done()
			res, err := r.c.UpdateOne(ctx,
				bson.M{"_id": p.ID},
				bson.M{"$set": bson.M{r.cfg.OrderField: p.Order, "updated_at": now}},
			)
			if err == nil && res.MatchedCount == 0 {
				err = mongo.ErrNoDocuments
			}
			if err != nil {
				mu.Lock()
				failed++
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(pair)
	}
	wg.Wait()
	return failed, firstErr
}

// SlugExists reports whether a slug is taken, optionally excluding one id
// (the document being updated).
func (r *Repository[T]) SlugExists(ctx context.Context, slug string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{r.cfg.SlugField: slug}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	n, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NextOrder returns max(order)+1, for appending new items at the end.
func (r *Repository[T]) NextOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: r.cfg.OrderField, Value: -1}}).
		SetProjection(bson.M{r.cfg.OrderField: 1})

	var doc bson.M
	err := r.c.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	switch v := doc[r.cfg.OrderField].(type) {
	case int32:
		return int(v) + 1, nil
	case int64:
		return int(v) + 1, nil
	case float64:
		return int(v) + 1, nil
	}
	return 0, nil
}
