package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-admin/dto"
	"blog-admin/realtime"
	"blog-admin/services"
)

type IArticleController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ArticleController struct {
	service services.IArticleService
	hub     *realtime.Hub
}

func NewArticleController(service services.IArticleService, hub *realtime.Hub) IArticleController {
	return &ArticleController{service: service, hub: hub}
}

func (c *ArticleController) FindAll(ctx *gin.Context) {
	articles, err := c.service.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewArticleListResponses(*articles))
}

func (c *ArticleController) FindById(ctx *gin.Context) {
	articleID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	article, err := c.service.FindById(articleID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewArticleDetailResponse(article))
}

func (c *ArticleController) Create(ctx *gin.Context) {
	var input dto.CreateArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON payload"})
		return
	}

	article, err := c.service.Create(currentUser(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "article_created", article.ID)
	ctx.JSON(http.StatusCreated, dto.NewArticleDetailResponse(article))
}

func (c *ArticleController) Update(ctx *gin.Context) {
	articleID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input dto.UpdateArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON payload"})
		return
	}

	article, err := c.service.Update(currentUser(ctx), articleID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "article_updated", article.ID)
	ctx.JSON(http.StatusOK, dto.NewArticleDetailResponse(article))
}

func (c *ArticleController) Delete(ctx *gin.Context) {
	articleID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.service.Delete(currentUser(ctx), articleID); err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "article_deleted", articleID)
	ctx.Status(http.StatusNoContent)
}
