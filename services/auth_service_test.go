package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin/apperror"
	"blog-admin/models"
	"blog-admin/repositories"
	"blog-admin/testutil"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", token)

	other, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestAuthService_GetUserFromToken(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	userRepository := repositories.NewUserRepository(db)
	userService := NewUserService(userRepository)
	authService := NewAuthService(userRepository)

	created, err := userService.Create(signupInput("alice", models.RoleBlogger))
	require.NoError(t, err)

	user, err := authService.GetUserFromToken(created.ApiToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_GetUserFromToken_Unknown(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	authService := NewAuthService(repositories.NewUserRepository(db))

	_, err = authService.GetUserFromToken("deadbeef")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
