package services

import (
	"golang.org/x/crypto/bcrypt"

	"blog-admin/apperror"
	"blog-admin/dto"
	"blog-admin/models"
	"blog-admin/permissions"
	"blog-admin/repositories"
)

type IUserService interface {
	FindAll() (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	Create(input dto.SignupInput) (*models.User, error)
	Update(caller *models.User, userID uint, input dto.UpdateUserInput) (*models.User, error)
	Delete(caller *models.User, userID uint) error
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll() (*[]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) FindById(userID uint) (*models.User, error) {
	return s.repository.FindById(userID)
}

// Create validates the plaintext input first, then hashes the password,
// assigns a fresh API token and persists. Nothing is written when any
// constraint is violated.
func (s *UserService) Create(input dto.SignupInput) (*models.User, error) {
	user := models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      models.Role(input.Role),
		Password:  input.Password,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}
	user.ApiToken = token

	if err := s.repository.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(caller *models.User, userID uint, input dto.UpdateUserInput) (*models.User, error) {
	target, err := s.repository.FindById(userID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanManageUser(caller, target) {
		return nil, apperror.Forbidden("Not allowed to manage this user")
	}

	if input.Username != nil {
		target.Username = *input.Username
	}
	if input.FirstName != nil {
		target.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		target.LastName = *input.LastName
	}
	if input.Role != nil {
		target.Role = models.Role(*input.Role)
	}
	if input.Password != nil {
		// Validate the plaintext before it is replaced by the hash.
		target.Password = *input.Password
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.Password = string(hashedPassword)
	}

	if err := s.repository.Update(target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *UserService) Delete(caller *models.User, userID uint) error {
	target, err := s.repository.FindById(userID)
	if err != nil {
		return err
	}
	if !permissions.CanManageUser(caller, target) {
		return apperror.Forbidden("Not allowed to manage this user")
	}
	return s.repository.Delete(target)
}
