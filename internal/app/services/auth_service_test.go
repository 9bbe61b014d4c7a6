package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
	"github.com/marlon/enrollhub/internal/pkg/auth"
)

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	users := newFakeUserStore(&models.User{ID: 1, Username: "admin", Password: hash})
	svc := NewAuthService(users)

	user, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	users := newFakeUserStore(&models.User{ID: 1, Username: "admin", Password: hash})
	svc := NewAuthService(users)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	// unknown usernames get the same error as bad passwords
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
