// internal/domain/models/faq.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ is a question/answer pair shown on the home page.
//
// Order is a plain display rank; only relative comparison matters.
// Neither uniqueness nor contiguity is enforced, so two records can hold
// the same rank after a torn reorder (the admin list heals this on load).
type FAQ struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`

	Order       int  `bson:"order" json:"order"`
	IsPublished bool `bson:"is_published" json:"is_published"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
