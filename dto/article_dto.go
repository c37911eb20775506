package dto

import "blog-admin/models"

type CreateArticleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateArticleInput carries a partial update. There is no author field:
// authorship is immutable through the API.
type UpdateArticleInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ArticleListResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AuthorResponse is the embedded author summary of the article detail view.
type AuthorResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ArticleDetailResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Author      AuthorResponse `json:"author"`
}

func NewArticleListResponse(article *models.Article) ArticleListResponse {
	return ArticleListResponse{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
	}
}

func NewArticleListResponses(articles []models.Article) []ArticleListResponse {
	responses := make([]ArticleListResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, NewArticleListResponse(&articles[i]))
	}
	return responses
}

func NewArticleDetailResponse(article *models.Article) ArticleDetailResponse {
	return ArticleDetailResponse{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		Author: AuthorResponse{
			ID:        article.Author.ID,
			Username:  article.Author.Username,
			FirstName: article.Author.FirstName,
			LastName:  article.Author.LastName,
		},
	}
}
