package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blog-admin/apperror"
	"blog-admin/models"
)

type IArticleRepository interface {
	Create(article *models.Article) error
	FindAll() (*[]models.Article, error)
	FindById(articleID uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(article *models.Article) error
}

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) IArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *models.Article) error {
	result := r.db.Create(article)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *ArticleRepository) FindAll() (*[]models.Article, error) {
	var articles []models.Article
	result := r.db.Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}
	return &articles, nil
}

func (r *ArticleRepository) FindById(articleID uint) (*models.Article, error) {
	var article models.Article
	result := r.db.Preload("Author").First(&article, "id = ?", articleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("article", articleID)
		}
		return nil, result.Error
	}
	return &article, nil
}

func (r *ArticleRepository) Update(article *models.Article) error {
	result := r.db.Save(article)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *ArticleRepository) Delete(article *models.Article) error {
	result := r.db.Delete(article)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("article", article.ID)
	}
	return nil
}
