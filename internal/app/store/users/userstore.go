package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/orma-ai/ormasite/internal/app/system/normalize"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "admin"`)
	errBadAuthMethod  = errors.New(`auth_method must be "password"|"google"`)
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing and validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.EmailCI = text.Fold(u.Email)
	u.AuthMethod = normalize.AuthMethod(u.AuthMethod)
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}

	if u.Role != models.RoleAdmin {
		return models.User{}, errBadRole
	}
	switch u.AuthMethod {
	case models.AuthMethodPassword, models.AuthMethodGoogle:
	default:
		return models.User{}, errBadAuthMethod
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateLastLogin records a successful sign-in.
func (s *Store) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"last_login": now,
		"updated_at": now,
	}})
	return err
}

// SetPasswordHash replaces a user's stored password hash.
func (s *Store) SetPasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now(),
	}})
	return err
}

// Count returns the number of user accounts. Used by the startup seed to
// decide whether the initial admin needs creating.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
