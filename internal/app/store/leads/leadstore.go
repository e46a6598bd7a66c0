// internal/app/store/leads/leadstore.go
package leadstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/orma-ai/ormasite/internal/app/system/normalize"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrMissingName    = errors.New("leads: full name is required")
	ErrMissingEmail   = errors.New("leads: email is required")
	ErrBadCompanySize = errors.New("leads: company size is not a known bracket")
	ErrBadStatus      = errors.New("leads: status is not a known pipeline status")
)

// Store provides access to the leads collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("leads")}
}

// Create inserts a new Lead, setting CI search fields, timestamps, the
// default status, and the derived enterprise flag.
//
// IsEnterprise is derived here, once, from CompanySize; later edits to the
// record never recompute it.
func (s *Store) Create(ctx context.Context, l models.Lead) (models.Lead, error) {
	now := time.Now().UTC()

	l.ID = primitive.NewObjectID()
	l.FullName = normalize.Name(l.FullName)
	l.FullNameCI = text.Fold(l.FullName)
	l.Email = normalize.Email(l.Email)
	l.EmailCI = text.Fold(l.Email)
	l.Company = normalize.Name(l.Company)
	l.CompanyCI = text.Fold(l.Company)
	l.Phone = normalize.Phone(l.Phone)
	if l.Status == "" {
		l.Status = models.LeadStatusNew
	}
	l.IsEnterprise = l.CompanySize == models.EnterpriseCompanySize
	l.CreatedAt = now

	if strings.TrimSpace(l.FullName) == "" {
		return models.Lead{}, ErrMissingName
	}
	if strings.TrimSpace(l.Email) == "" {
		return models.Lead{}, ErrMissingEmail
	}
	if !models.IsValidCompanySize(l.CompanySize) {
		return models.Lead{}, ErrBadCompanySize
	}
	if !models.IsValidLeadStatus(l.Status) {
		return models.Lead{}, ErrBadStatus
	}

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Lead{}, err
	}
	return l, nil
}

// List returns all leads, newest first.
func (s *Store) List(ctx context.Context) ([]models.Lead, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Lead
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a lead by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Lead, error) {
	var l models.Lead
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return models.Lead{}, err
	}
	return l, nil
}

// SetStatus updates only the status field of a lead.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidLeadStatus(status) {
		return ErrBadStatus
	}
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": now,
	}})
	return err
}

// SetNotes updates only the internal notes field of a lead.
func (s *Store) SetNotes(ctx context.Context, id primitive.ObjectID, notes string) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"notes":      notes,
		"updated_at": now,
	}})
	return err
}

// Delete removes a lead by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats are the dashboard counters, recomputed from the full list on every
// render rather than maintained incrementally.
type Stats struct {
	Total      int
	New        int
	InProgress int
	Won        int
	Enterprise int
}

// CountStats scans the given snapshot and tallies the dashboard counters.
func CountStats(leads []models.Lead) Stats {
	st := Stats{Total: len(leads)}
	for i := range leads {
		switch leads[i].Status {
		case models.LeadStatusNew:
			st.New++
		case models.LeadStatusInProgress:
			st.InProgress++
		case models.LeadStatusWon:
			st.Won++
		}
		if leads[i].IsEnterprise {
			st.Enterprise++
		}
	}
	return st
}

// Filter narrows a snapshot the way the dashboard does: a case-insensitive
// substring match of term against full name, company, or email (OR
// semantics), combined with an exact status match unless status is the
// "all" sentinel. An empty term matches everything.
func Filter(leads []models.Lead, term, status string) []models.Lead {
	folded := text.Fold(strings.TrimSpace(term))
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if folded != "" &&
			!strings.Contains(l.FullNameCI, folded) &&
			!strings.Contains(l.CompanyCI, folded) &&
			!strings.Contains(l.EmailCI, folded) {
			continue
		}
		if status != "" && status != "all" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	return out
}
