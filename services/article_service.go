package services

import (
	"blog-admin/apperror"
	"blog-admin/dto"
	"blog-admin/models"
	"blog-admin/permissions"
	"blog-admin/repositories"
)

type IArticleService interface {
	FindAll() (*[]models.Article, error)
	FindById(articleID uint) (*models.Article, error)
	Create(caller *models.User, input dto.CreateArticleInput) (*models.Article, error)
	Update(caller *models.User, articleID uint, input dto.UpdateArticleInput) (*models.Article, error)
	Delete(caller *models.User, articleID uint) error
}

type ArticleService struct {
	repository repositories.IArticleRepository
}

func NewArticleService(repository repositories.IArticleRepository) IArticleService {
	return &ArticleService{repository: repository}
}

func (s *ArticleService) FindAll() (*[]models.Article, error) {
	return s.repository.FindAll()
}

func (s *ArticleService) FindById(articleID uint) (*models.Article, error) {
	return s.repository.FindById(articleID)
}

// Create forces authorship to the caller. An author field in the payload is
// never consulted; the input type does not even carry one.
func (s *ArticleService) Create(caller *models.User, input dto.CreateArticleInput) (*models.Article, error) {
	if !permissions.CanCreateArticle(caller) {
		return nil, apperror.Unauthorized("Invalid or missing API token")
	}

	article := models.Article{
		Title:       input.Title,
		Description: input.Description,
		UserID:      caller.ID,
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}
	if err := s.repository.Create(&article); err != nil {
		return nil, err
	}
	article.Author = *caller
	return &article, nil
}

func (s *ArticleService) Update(caller *models.User, articleID uint, input dto.UpdateArticleInput) (*models.Article, error) {
	target, err := s.repository.FindById(articleID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanManageArticle(caller, target) {
		return nil, apperror.Forbidden("Not allowed to manage this article")
	}

	if input.Title != nil {
		target.Title = *input.Title
	}
	if input.Description != nil {
		target.Description = *input.Description
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := s.repository.Update(target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *ArticleService) Delete(caller *models.User, articleID uint) error {
	target, err := s.repository.FindById(articleID)
	if err != nil {
		return err
	}
	if !permissions.CanManageArticle(caller, target) {
		return apperror.Forbidden("Not allowed to manage this article")
	}
	return s.repository.Delete(target)
}
