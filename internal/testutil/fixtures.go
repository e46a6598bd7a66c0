package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLead inserts a lead directly with the given name, company, and
// status, filling the remaining fields with plausible defaults.
func (f *Fixtures) CreateLead(ctx context.Context, fullName, company, status string) models.Lead {
	f.t.Helper()

	now := time.Now().UTC()
	lead := models.Lead{
		ID:            primitive.NewObjectID(),
		FullName:      fullName,
		FullNameCI:    text.Fold(fullName),
		Email:         "lead@test.com",
		EmailCI:       text.Fold("lead@test.com"),
		Company:       company,
		CompanyCI:     text.Fold(company),
		CompanySize:   "11-50",
		ChallengeArea: models.ChallengeAreas[0],
		Status:        status,
		CreatedAt:     now,
	}

	if _, err := f.db.Collection("leads").InsertOne(ctx, lead); err != nil {
		f.t.Fatalf("failed to create test lead: %v", err)
	}
	return lead
}

// CreateCaseStudy inserts a case study directly with the given title and
// visibility flags.
func (f *Fixtures) CreateCaseStudy(ctx context.Context, title, slug string, published, featured bool) models.CaseStudy {
	f.t.Helper()

	now := time.Now().UTC()
	cs := models.CaseStudy{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Slug:        slug,
		Industry:    "לוגיסטיקה",
		Challenge:   "Test challenge",
		Solution:    "Test solution",
		IsPublished: published,
		IsFeatured:  featured,
		CreatedAt:   now,
	}

	if _, err := f.db.Collection("case_studies").InsertOne(ctx, cs); err != nil {
		f.t.Fatalf("failed to create test case study: %v", err)
	}
	return cs
}

// CreateFAQ inserts an FAQ directly at the given order.
func (f *Fixtures) CreateFAQ(ctx context.Context, question string, order int, published bool) models.FAQ {
	f.t.Helper()

	now := time.Now().UTC()
	faq := models.FAQ{
		ID:          primitive.NewObjectID(),
		Question:    question,
		Answer:      "Test answer",
		Order:       order,
		IsPublished: published,
		CreatedAt:   now,
	}

	if _, err := f.db.Collection("faqs").InsertOne(ctx, faq); err != nil {
		f.t.Fatalf("failed to create test FAQ: %v", err)
	}
	return faq
}

// CreateUser inserts an admin user directly with the given credentials.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, passwordHash string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		FullNameCI:   text.Fold(fullName),
		Email:        email,
		EmailCI:      text.Fold(email),
		PasswordHash: passwordHash,
		AuthMethod:   models.AuthMethodPassword,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		CreatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
