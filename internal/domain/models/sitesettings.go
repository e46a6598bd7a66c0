// internal/domain/models/sitesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings holds the site-wide contact details and headline statistics
// rendered on the public pages. The collection holds zero or one document;
// an absent document means "no settings configured yet" and consumers get
// the zero value.
type SiteSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	CompanyPhone   string `bson:"company_phone,omitempty" json:"company_phone,omitempty"`
	CompanyEmail   string `bson:"company_email,omitempty" json:"company_email,omitempty"`
	LinkedInURL    string `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	WhatsAppNumber string `bson:"whatsapp_number,omitempty" json:"whatsapp_number,omitempty"`

	// Headline statistics for the home page. Nil means "not set", which is
	// distinct from zero; the form maps empty input to nil.
	StatsHoursSaved    *int `bson:"stats_hours_saved,omitempty" json:"stats_hours_saved,omitempty"`
	StatsProcesses     *int `bson:"stats_processes,omitempty" json:"stats_processes,omitempty"`
	StatsOrganizations *int `bson:"stats_organizations,omitempty" json:"stats_organizations,omitempty"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsConfigured reports whether the settings document has ever been saved.
func (s *SiteSettings) IsConfigured() bool {
	return !s.ID.IsZero()
}

// DefaultSiteName is the name shown in the header and page titles.
const DefaultSiteName = "ORMA.AI"
