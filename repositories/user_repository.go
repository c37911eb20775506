package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"blog-admin/apperror"
	"blog-admin/models"
)

type IUserRepository interface {
	Create(user *models.User) error
	FindAll() (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	FindByToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(user *models.User) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	result := r.db.Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return apperror.Conflict("username already exists")
		}
		return result.Error
	}
	return nil
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindById(userID uint) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Articles").First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByToken(token string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "api_token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("Invalid or missing API token")
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	result := r.db.Save(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return apperror.Conflict("username already exists")
		}
		return result.Error
	}
	return nil
}

// Delete removes the user and all of the user's articles in one transaction.
// The cascade is an explicit application-level step rather than a DB-level
// ON DELETE clause, so it behaves the same on sqlite and postgres.
func (r *UserRepository) Delete(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "duplicate key")
}
