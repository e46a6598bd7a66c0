// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a contact-form submission representing a sales inquiry.
//
// The CI fields hold lowercase, diacritics-stripped copies used for
// case-insensitive dashboard search; they are maintained by the store.
type Lead struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	FullName   string `bson:"full_name" json:"full_name"`
	FullNameCI string `bson:"full_name_ci" json:"full_name_ci"`
	Email      string `bson:"email" json:"email"`
	EmailCI    string `bson:"email_ci" json:"email_ci"`

	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string `bson:"company,omitempty" json:"company,omitempty"`
	CompanyCI string `bson:"company_ci,omitempty" json:"company_ci,omitempty"`
	Role      string `bson:"role,omitempty" json:"role,omitempty"`

	CompanySize   string `bson:"company_size,omitempty" json:"company_size,omitempty"`
	ChallengeArea string `bson:"challenge_area,omitempty" json:"challenge_area,omitempty"`
	Message       string `bson:"message,omitempty" json:"message,omitempty"`

	// Marketing attribution, captured from the page's query string at
	// submission time. Empty string when the parameter was absent.
	UTMSource   string `bson:"utm_source" json:"utm_source"`
	UTMMedium   string `bson:"utm_medium" json:"utm_medium"`
	UTMCampaign string `bson:"utm_campaign" json:"utm_campaign"`

	// IsEnterprise is derived once at creation time from CompanySize and
	// is never recomputed on later edits.
	IsEnterprise bool `bson:"is_enterprise" json:"is_enterprise"`

	Status string `bson:"status" json:"status"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Lead pipeline statuses. The values are the Hebrew labels the site was
// built with; they are stored verbatim, not translated.
const (
	LeadStatusNew        = "חדש"
	LeadStatusContacted  = "נוצר קשר"
	LeadStatusInProgress = "בתהליך"
	LeadStatusWon        = "סגור-זכייה"
	LeadStatusLost       = "סגור-הפסד"
)

// LeadStatuses lists the pipeline statuses in display order.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusInProgress,
	LeadStatusWon,
	LeadStatusLost,
}

// IsValidLeadStatus reports whether s is one of the known pipeline statuses.
func IsValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// EnterpriseCompanySize is the company-size bracket that marks a lead
// as enterprise at creation time.
const EnterpriseCompanySize = "200+"

// CompanySizes lists the selectable company-size brackets.
var CompanySizes = []string{"1-10", "11-50", "51-200", "200+"}

// IsValidCompanySize reports whether s is one of the selectable brackets.
// The empty string is valid (the field is optional).
func IsValidCompanySize(s string) bool {
	if s == "" {
		return true
	}
	for _, v := range CompanySizes {
		if v == s {
			return true
		}
	}
	return false
}

// ChallengeAreas lists the picklist options offered on the contact form.
// The stored field itself is a free string; the picklist is a form-level
// convention only.
var ChallengeAreas = []string{
	"אוטומציה",
	"בוטים ושירות",
	"הטמעת AI",
	"חיבור מערכות",
	"הכשרות",
	"אחר",
}
