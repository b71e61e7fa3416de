// internal/app/store/aboutpage/aboutstore.go
package aboutpage

import (
	"context"
	"strconv"
	"time"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the about-page singleton. Like the homepage, at
// most one document ever exists and Create enforces that with an explicit
// existence check.
type Store struct {
	c *mongo.Collection
}

// New creates a new about-page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about")}
}

// defaultAbout is the document materialized on first public read.
func defaultAbout() models.About {
	now := time.Now().UTC()
	return models.About{
		Story: models.StorySection{
			Heading: "Our Story",
			Body:    "Founded on the belief that quality construction starts with honest relationships.",
		},
		Leadership: models.LeadershipSection{
			Heading:    "Meet the Team",
			Subheading: "The people behind every project we deliver.",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Get returns the sole about document, or mongo.ErrNoDocuments if none has
// been materialized yet.
func (s *Store) Get(ctx context.Context) (*models.About, error) {
	var doc models.About
	if err := s.c.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetOrCreateDefault returns the sole about document, materializing the
// hard-coded default on first access.
func (s *Store) GetOrCreateDefault(ctx context.Context) (*models.About, error) {
	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$setOnInsert": defaultAbout()},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores a caller-supplied about document. It fails with Conflict
// when one already exists.
func (s *Store) Create(ctx context.Context, doc models.About) (*models.About, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperr.New(apperr.Conflict, "about content already exists")
	}

	now := time.Now().UTC()
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	for i := range doc.Team {
		if doc.Team[i].ID == "" {
			doc.Team[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Values {
		if doc.Values[i].ID == "" {
			doc.Values[i].ID = uuid.NewString()
		}
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// StoryPatch holds the story-section fields to change. Nil fields are left
// untouched.
type StoryPatch struct {
	Heading *string
	Body    *string
	Image   *string
}

// LeadershipPatch holds the leadership-section fields to change.
type LeadershipPatch struct {
	Heading    *string
	Subheading *string
}

// PatchStory merges the patch into the story section, leaving siblings alone.
func (s *Store) PatchStory(ctx context.Context, p StoryPatch) (*models.About, error) {
	set := bson.M{}
	setString(set, "story.heading", p.Heading)
	setString(set, "story.body", p.Body)
	setString(set, "story.image", p.Image)
	return s.patch(ctx, set)
}

// PatchLeadership merges the patch into the leadership section.
func (s *Store) PatchLeadership(ctx context.Context, p LeadershipPatch) (*models.About, error) {
	set := bson.M{}
	setString(set, "leadership.heading", p.Heading)
	setString(set, "leadership.subheading", p.Subheading)
	return s.patch(ctx, set)
}

func (s *Store) patch(ctx context.Context, set bson.M) (*models.About, error) {
	if _, err := s.GetOrCreateDefault(ctx); err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpsertTeamMember replaces the team member whose id matches in place, or
// appends with a freshly generated id when no id matches.
func (s *Store) UpsertTeamMember(ctx context.Context, member models.TeamMember) (*models.About, error) {
	return s.upsertEmbedded(ctx, "team", member.ID, func(id string) any {
		member.ID = id
		return member
	})
}

// DeleteTeamMember removes the team member with the given id.
func (s *Store) DeleteTeamMember(ctx context.Context, id string) (*models.About, error) {
	return s.deleteEmbedded(ctx, "team", id)
}

// UpsertValue replaces the company value whose id matches in place, or
// appends with a freshly generated id when no id matches.
func (s *Store) UpsertValue(ctx context.Context, value models.CompanyValue) (*models.About, error) {
	return s.upsertEmbedded(ctx, "values", value.ID, func(id string) any {
		value.ID = id
		return value
	})
}

// DeleteValue removes the company value with the given id.
func (s *Store) DeleteValue(ctx context.Context, id string) (*models.About, error) {
	return s.deleteEmbedded(ctx, "values", id)
}

// AddStat appends a stat. Stats carry no id and are addressed by index.
func (s *Store) AddStat(ctx context.Context, stat models.Stat) (*models.About, error) {
	if _, err := s.GetOrCreateDefault(ctx); err != nil {
		return nil, err
	}
	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{
			"$push": bson.M{"stats": stat},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateStat replaces the stat at the given index.
func (s *Store) UpdateStat(ctx context.Context, index int, stat models.Stat) (*models.About, error) {
	if err := s.checkStatIndex(ctx, index); err != nil {
		return nil, err
	}
	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": bson.M{
			"stats." + strconv.Itoa(index): stat,
			"updated_at":                   time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteStat removes the stat at the given index. Mongo has no positional
// pull, so the element is unset to null and the null pulled.
func (s *Store) DeleteStat(ctx context.Context, index int) (*models.About, error) {
	if err := s.checkStatIndex(ctx, index); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{},
		bson.M{"$unset": bson.M{"stats." + strconv.Itoa(index): 1}},
	)
	if err != nil {
		return nil, err
	}

	var doc models.About
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{
			"$pull": bson.M{"stats": nil},
			"$set":  bson.M{"updated_at": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// checkStatIndex verifies index addresses an existing stat.
func (s *Store) checkStatIndex(ctx context.Context, index int) error {
	doc, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(doc.Stats) {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) upsertEmbedded(ctx context.Context, field, id string, build func(id string) any) (*models.About, error) {
	if _, err := s.GetOrCreateDefault(ctx); err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if id != "" {
		var doc models.About
		err := s.c.FindOneAndUpdate(ctx,
			bson.M{field + ".id": id},
			bson.M{"$set": bson.M{field + ".$": build(id), "updated_at": now}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err == nil {
			return &doc, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{
			"$push": bson.M{field: build(uuid.NewString())},
			"$set":  bson.M{"updated_at": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) deleteEmbedded(ctx context.Context, field, id string) (*models.About, error) {
	var doc models.About
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{field + ".id": id},
		bson.M{
			"$pull": bson.M{field: bson.M{"id": id}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// setString adds key to set when v is non-nil.
func setString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
