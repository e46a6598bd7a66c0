// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_settings collection.
// The collection holds a single document; every save targets it.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

// singletonFilter matches the one settings document.
var singletonFilter = bson.M{"singleton": true}

// Get returns the site settings.
// If no settings have been saved yet, returns the zero value with no error.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, singletonFilter).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.SiteSettings{}, nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Save updates the site settings.
// Uses upsert so it works whether settings exist or not.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	update := bson.M{
		"$set": bson.M{
			"company_phone":       settings.CompanyPhone,
			"company_email":       settings.CompanyEmail,
			"linkedin_url":        settings.LinkedInURL,
			"whatsapp_number":     settings.WhatsAppNumber,
			"stats_hours_saved":   settings.StatsHoursSaved,
			"stats_processes":     settings.StatsProcesses,
			"stats_organizations": settings.StatsOrganizations,
			"updated_at":          settings.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"singleton": true,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, singletonFilter, update, opts)
	return err
}

// Exists checks whether settings have been saved yet.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, singletonFilter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
