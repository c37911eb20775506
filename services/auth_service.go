package services

import (
	"crypto/rand"
	"encoding/hex"

	"blog-admin/models"
	"blog-admin/repositories"
)

const tokenBytes = 32

type IAuthService interface {
	GetUserFromToken(token string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IUserRepository
}

func NewAuthService(repository repositories.IUserRepository) IAuthService {
	return &AuthService{repository: repository}
}

// GetUserFromToken resolves an opaque API token to its user by exact match
// against the stored value. Any failure is an unauthenticated result.
func (s *AuthService) GetUserFromToken(token string) (*models.User, error) {
	return s.repository.FindByToken(token)
}

// GenerateToken returns a new opaque bearer token: 32 crypto-random bytes,
// hex encoded. The token carries no information about its user.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
