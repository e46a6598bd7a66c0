// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/orma-ai/ormasite/internal/app/resources"
	userstore "github.com/orma-ai/ormasite/internal/app/store/users"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if err := seedAdminUser(ctx, appCfg, deps, logger); err != nil {
		return err
	}

	return nil
}

// seedAdminUser creates the first admin account when the users collection is
// empty and admin credentials are configured. Existing installations are
// never modified.
func seedAdminUser(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" || appCfg.AdminPassword == "" {
		return nil
	}

	store := userstore.New(deps.OrmaMongoDatabase)

	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	u, err := store.Create(ctx, models.User{
		FullName:     appCfg.AdminName,
		Email:        appCfg.AdminEmail,
		Role:         models.RoleAdmin,
		AuthMethod:   models.AuthMethodPassword,
		Status:       models.UserStatusActive,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Info("seeded initial admin user",
		zap.String("email", u.Email),
		zap.String("user_id", u.ID.Hex()))
	return nil
}
