package services

import (
	"context"
	"testing"

	"fercullen.events/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("whiskey2025"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", PasswordHash: string(hash)}).Error)

	svc := NewAuthService("test-secret")
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "admin", "whiskey2025")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	// Yanlış şifre ile bilinmeyen kullanıcı aynı hatayı verir.
	_, err = svc.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "nobody", "whiskey2025")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService("test-secret")

	user := &models.User{Username: "admin"}
	user.ID = 7

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService("test-secret")
	other := NewAuthService("different-secret")

	user := &models.User{Username: "admin"}
	user.ID = 1

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidAuthToken)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}
