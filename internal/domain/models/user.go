// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a back-office account. The public site has no user concept;
// users exist only so the admin screens can be gated.
type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	FullName   string `bson:"full_name" json:"full_name"`
	FullNameCI string `bson:"full_name_ci" json:"full_name_ci"`
	Email      string `bson:"email" json:"email"`
	EmailCI    string `bson:"email_ci" json:"email_ci"`

	// PasswordHash is a bcrypt hash; empty for Google-only accounts.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	AuthMethod string `bson:"auth_method" json:"auth_method"` // "password" or "google"
	Role       string `bson:"role" json:"role"`
	Status     string `bson:"status" json:"status"` // "active" or "disabled"

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"

	RoleAdmin = "admin"

	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
