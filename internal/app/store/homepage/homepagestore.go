// internal/app/store/homepage/homepagestore.go
package homepage

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the homepage singleton. The collection holds at
// most one document; the existence check in Create enforces that at the
// application level rather than as a storage trigger.
type Store struct {
	c *mongo.Collection
}

// New creates a new homepage store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("homepage")}
}

// defaultHomepage is the document materialized on first public read.
func defaultHomepage() models.Homepage {
	now := time.Now().UTC()
	return models.Homepage{
		Hero: models.HeroSection{
			Heading:    "Building Excellence, Delivering Trust",
			Subheading: "Full-service construction and engineering for commercial and residential projects.",
			CTAText:    "Get a Free Quote",
			CTALink:    "/quote",
		},
		About: models.AboutSection{
			Heading: "Who We Are",
			Body:    "A family-owned construction company serving the region for over two decades.",
		},
		ContactCTA: models.ContactCTASection{
			Heading:    "Ready to start your project?",
			Subheading: "Tell us what you need and we'll get back to you within one business day.",
			ButtonText: "Contact Us",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Get returns the sole homepage document, or mongo.ErrNoDocuments if none
// has been materialized yet.
func (s *Store) Get(ctx context.Context) (*models.Homepage, error) {
	var doc models.Homepage
	if err := s.c.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetOrCreateDefault returns the sole homepage document, materializing the
// hard-coded default on first access.
func (s *Store) GetOrCreateDefault(ctx context.Context) (*models.Homepage, error) {
	var doc models.Homepage
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$setOnInsert": defaultHomepage()},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores a caller-supplied homepage document. It fails with Conflict
// when one already exists.
func (s *Store) Create(ctx context.Context, doc models.Homepage) (*models.Homepage, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperr.New(apperr.Conflict, "homepage content already exists")
	}

	now := time.Now().UTC()
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	for i := range doc.Services {
		if doc.Services[i].ID == "" {
			doc.Services[i].ID = uuid.NewString()
		}
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// HeroPatch holds the hero-section fields to change. Nil fields are left
// untouched.
type HeroPatch struct {
	Heading    *string
	Subheading *string
	CTAText    *string
	CTALink    *string
	Image      *string
}

// AboutPatch holds the about-section fields to change.
type AboutPatch struct {
	Heading *string
	Body    *string
	Image   *string
}

// ContactCTAPatch holds the contact-CTA fields to change.
type ContactCTAPatch struct {
	Heading    *string
	Subheading *string
	ButtonText *string
}

// PatchHero merges the patch into the hero section, leaving siblings alone.
func (s *Store) PatchHero(ctx context.Context, p HeroPatch) (*models.Homepage, error) {
	set := bson.M{}
	setString(set, "hero.heading", p.Heading)
	setString(set, "hero.subheading", p.Subheading)
	setString(set, "hero.cta_text", p.CTAText)
	setString(set, "hero.cta_link", p.CTALink)
	setString(set, "hero.image", p.Image)
	return s.patch(ctx, set)
}

// PatchAbout merges the patch into the about section.
func (s *Store) PatchAbout(ctx context.Context, p AboutPatch) (*models.Homepage, error) {
	set := bson.M{}
	setString(set, "about.heading", p.Heading)
	setString(set, "about.body", p.Body)
	setString(set, "about.image", p.Image)
	return s.patch(ctx, set)
}

// PatchContactCTA merges the patch into the contact-CTA section.
func (s *Store) PatchContactCTA(ctx context.Context, p ContactCTAPatch) (*models.Homepage, error) {
	set := bson.M{}
	setString(set, "contact_cta.heading", p.Heading)
	setString(set, "contact_cta.subheading", p.Subheading)
	setString(set, "contact_cta.button_text", p.ButtonText)
	return s.patch(ctx, set)
}

// patch applies a dotted $set against the singleton, materializing the
// default first so a patch never races an empty collection.
func (s *Store) patch(ctx context.Context, set bson.M) (*models.Homepage, error) {
	if _, err := s.GetOrCreateDefault(ctx); err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	var doc models.Homepage
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

// UpsertService replaces the embedded service whose id matches svc.ID in
// place, or appends svc with a freshly generated id when no id matches.
func (s *Store) UpsertService(ctx context.Context, svc models.HomepageService) (*models.Homepage, error) {
	if _, err := s.GetOrCreateDefault(ctx); err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if svc.ID != "" {
		var doc models.Homepage
		err := s.c.FindOneAndUpdate(ctx,
			bson.M{"services.id": svc.ID},
			bson.M{"$set": bson.M{"services.$": svc, "updated_at": now}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err == nil {
			return &doc, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	svc.ID = uuid.NewString()
	var doc models.Homepage
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$push": bson.M{"services": svc}, "$set": bson.M{"updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteService removes the embedded service with the given id. A missing
// id is mongo.ErrNoDocuments.
func (s *Store) DeleteService(ctx context.Context, id string) (*models.Homepage, error) {
	var doc models.Homepage
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"services.id": id},
		bson.M{
			"$pull": bson.M{"services": bson.M{"id": id}},
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
