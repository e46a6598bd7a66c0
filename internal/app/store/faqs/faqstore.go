// internal/app/store/faqs/faqstore.go
package faqstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMissingFields = errors.New("faqs: question and answer are required")

// Store provides access to the faqs collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("faqs")}
}

// Create appends a new FAQ at the end of the list: its order is the current
// count at the time of the call.
func (s *Store) Create(ctx context.Context, f models.FAQ) (models.FAQ, error) {
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		return models.FAQ{}, ErrMissingFields
	}

	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.FAQ{}, err
	}

	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.Order = int(count)
	f.CreatedAt = now

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.FAQ{}, err
	}
	return f, nil
}

// Update replaces the question and answer of an FAQ. Order and the
// published flag are managed separately.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, question, answer string) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return ErrMissingFields
	}
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"question":   question,
		"answer":     answer,
		"updated_at": now,
	}})
	return err
}

// SetPublished flips only the published flag.
func (s *Store) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_published": published,
		"updated_at":   now,
	}})
	return err
}

// SetOrder assigns an explicit order value to one FAQ.
func (s *Store) SetOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"order":      order,
		"updated_at": now,
	}})
	return err
}

// Swap exchanges the order values of two FAQs as two independent updates.
// If the second update fails the list is left with a duplicated order value;
// Normalize heals that on the next admin list load.
func (s *Store) Swap(ctx context.Context, a, b models.FAQ) error {
	if err := s.SetOrder(ctx, a.ID, b.Order); err != nil {
		return err
	}
	return s.SetOrder(ctx, b.ID, a.Order)
}

// Normalize reassigns orders 0..N-1 over the current sorted list, repairing
// gaps and duplicates left by torn swaps or deletions. It only writes the
// documents whose order actually changes.
func (s *Store) Normalize(ctx context.Context) error {
	faqs, err := s.ListByOrder(ctx)
	if err != nil {
		return err
	}
	for i, f := range faqs {
		if f.Order == i {
			continue
		}
		if err := s.SetOrder(ctx, f.ID, i); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an FAQ by ID. Returns the number of documents deleted
// (0 or 1). Remaining orders are left as-is; Normalize closes the gap.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// GetByID returns an FAQ by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.FAQ, error) {
	var f models.FAQ
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.FAQ{}, err
	}
	return f, nil
}

// ListByOrder returns every FAQ sorted by order, then creation time as a
// tiebreaker so duplicated orders still yield a stable listing.
func (s *Store) ListByOrder(ctx context.Context) ([]models.FAQ, error) {
	return s.find(ctx, bson.M{})
}

// ListPublished returns published FAQs in display order.
func (s *Store) ListPublished(ctx context.Context) ([]models.FAQ, error) {
	return s.find(ctx, bson.M{"is_published": true})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.FAQ, error) {
	find := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "created_at", Value: 1},
	})
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FAQ
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
