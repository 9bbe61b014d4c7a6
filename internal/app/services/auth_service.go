package services

import (
	"context"
	"errors"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
	"github.com/marlon/enrollhub/internal/pkg/auth"
	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo UserStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserStore) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

// Login verifies a username/password pair against the stored bcrypt hash.
// Unknown usernames and wrong passwords both surface as invalid credentials.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
