package seed

import (
	"context"
	"fmt"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/app/repositories"
	"github.com/marlon/enrollhub/internal/pkg/auth"
	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// EnsureAdminUser creates the configured admin account when it does not
// already exist. The password is stored as a bcrypt hash, never plaintext.
func EnsureAdminUser(ctx context.Context, userRepo *repositories.UserRepository, username, password string) error {
	if password == "" {
		return fmt.Errorf("admin password is not configured")
	}

	exists, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		logger.Debug().Str("username", username).Msg("Admin account already present")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := userRepo.Create(ctx, &models.User{
		Username: username,
		Password: hash,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Int64("userID", id).Str("username", username).Msg("Admin account created")
	return nil
}
