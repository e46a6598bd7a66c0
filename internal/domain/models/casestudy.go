// internal/domain/models/casestudy.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metric is a single headline figure shown on a case-study card,
// e.g. {Value: "40%", Label: "חיסכון בזמן"}.
type Metric struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// CaseStudy is a success-story record describing a client engagement.
//
// Tools and Metrics are ordered sequences; their order is display order
// and carries no other meaning. The narrative fields (Challenge, Solution,
// Process, Results) may contain rich text and are sanitized on write.
type CaseStudy struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"title_ci"`

	// Slug is the URL key used by the public detail page. When left blank
	// at save time it is derived once from Title (lowercased, whitespace
	// replaced with hyphens). No uniqueness is enforced.
	Slug string `bson:"slug" json:"slug"`

	Industry string `bson:"industry,omitempty" json:"industry,omitempty"`

	Challenge string `bson:"challenge,omitempty" json:"challenge,omitempty"`
	Solution  string `bson:"solution,omitempty" json:"solution,omitempty"`
	Process   string `bson:"process,omitempty" json:"process,omitempty"`
	Results   string `bson:"results,omitempty" json:"results,omitempty"`

	Tools   []string `bson:"tools,omitempty" json:"tools,omitempty"`
	Metrics []Metric `bson:"metrics,omitempty" json:"metrics,omitempty"`

	IsFeatured  bool `bson:"is_featured" json:"is_featured"`
	IsPublished bool `bson:"is_published" json:"is_published"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsVisible reports whether the study may appear on the public site.
func (c *CaseStudy) IsVisible() bool {
	return c.IsPublished
}
