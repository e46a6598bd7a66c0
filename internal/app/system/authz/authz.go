// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only back-office role; everyone else is a visitor.
const RoleAdmin = "admin"

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false, so callers can trust that
// ok=true means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}
