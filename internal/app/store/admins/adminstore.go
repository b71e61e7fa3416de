// internal/app/store/admins/adminstore.go
package admins

import (
	"context"
	"strings"
	"time"

	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the admins collection (the credential store).
type Store struct {
	c *mongo.Collection
}

// New creates a new admin store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_admins_email"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateInput contains the input for creating an admin.
type CreateInput struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

// Create creates a new admin account. The email is stored lowercase.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Admin, error) {
	now := time.Now().UTC()
	role := input.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: input.PasswordHash,
		Name:         input.Name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.c.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByID retrieves an admin by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePasswordHash replaces the stored password hash.
func (s *Store) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"updated_at":    time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of admin accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
