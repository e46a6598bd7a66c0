// internal/app/store/casestudies/casestudystore.go
package casestudystore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMissingTitle = errors.New("casestudies: title is required")

// Store provides access to the case_studies collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("case_studies")}
}

// DeriveSlug builds the default slug from a title: lowercased, with every
// whitespace run collapsed to a single hyphen.
func DeriveSlug(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Create inserts a new case study. When Slug is blank it is derived from
// the title; a caller-supplied slug is stored as given.
func (s *Store) Create(ctx context.Context, cs models.CaseStudy) (models.CaseStudy, error) {
	if strings.TrimSpace(cs.Title) == "" {
		return models.CaseStudy{}, ErrMissingTitle
	}

	now := time.Now().UTC()
	cs.ID = primitive.NewObjectID()
	cs.TitleCI = text.Fold(cs.Title)
	if strings.TrimSpace(cs.Slug) == "" {
		cs.Slug = DeriveSlug(cs.Title)
	}
	cs.CreatedAt = now

	if _, err := s.c.InsertOne(ctx, cs); err != nil {
		return models.CaseStudy{}, err
	}
	return cs, nil
}

// Update replaces all editable fields of a case study draft. The featured
// and published flags are managed separately by SetFeatured and SetPublished
// and are not touched here.
func (s *Store) Update(ctx context.Context, cs models.CaseStudy) error {
	if strings.TrimSpace(cs.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(cs.Slug) == "" {
		cs.Slug = DeriveSlug(cs.Title)
	}

	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, cs.ID, bson.M{"$set": bson.M{
		"title":      cs.Title,
		"title_ci":   text.Fold(cs.Title),
		"slug":       cs.Slug,
		"industry":   cs.Industry,
		"challenge":  cs.Challenge,
		"solution":   cs.Solution,
		"process":    cs.Process,
		"results":    cs.Results,
		"tools":      cs.Tools,
		"metrics":    cs.Metrics,
		"updated_at": now,
	}})
	return err
}

// SetFeatured flips only the featured flag.
func (s *Store) SetFeatured(ctx context.Context, id primitive.ObjectID, featured bool) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_featured": featured,
		"updated_at":  now,
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

// Delete removes a case study by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// GetByID returns a case study by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.CaseStudy, error) {
	var cs models.CaseStudy
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cs); err != nil {
		return models.CaseStudy{}, err
	}
	return cs, nil
}

// GetBySlug returns a published case study by its slug. Unpublished studies
// are invisible here regardless of slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.CaseStudy, error) {
	var cs models.CaseStudy
	filter := bson.M{"slug": slug, "is_published": true}
	if err := s.c.FindOne(ctx, filter).Decode(&cs); err != nil {
		return models.CaseStudy{}, err
	}
	return cs, nil
}

// List returns every case study, newest first. Used by the admin screens.
func (s *Store) List(ctx context.Context) ([]models.CaseStudy, error) {
	return s.find(ctx, bson.M{})
}

// ListPublished returns published case studies, newest first.
func (s *Store) ListPublished(ctx context.Context) ([]models.CaseStudy, error) {
	return s.find(ctx, bson.M{"is_published": true})
}

// ListFeatured returns up to limit case studies that are both published and
// featured, newest first. The home page uses limit 3.
func (s *Store) ListFeatured(ctx context.Context, limit int64) ([]models.CaseStudy, error) {
	filter := bson.M{"is_published": true, "is_featured": true}
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CaseStudy
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.CaseStudy, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CaseStudy
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
