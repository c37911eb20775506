package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-admin/dto"
	"blog-admin/realtime"
	"blog-admin/services"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
	hub     *realtime.Hub
}

func NewUserController(service services.IUserService, hub *realtime.Hub) IUserController {
	return &UserController{service: service, hub: hub}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserListResponses(*users))
}

func (c *UserController) FindById(ctx *gin.Context) {
	userID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := c.service.FindById(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserDetailResponse(user))
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON payload"})
		return
	}

	user, err := c.service.Create(input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "user_created", user.ID)
	ctx.JSON(http.StatusCreated, dto.NewUserDetailResponse(user))
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON payload"})
		return
	}

	user, err := c.service.Update(currentUser(ctx), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "user_updated", user.ID)
	ctx.JSON(http.StatusOK, dto.NewUserDetailResponse(user))
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.service.Delete(currentUser(ctx), userID); err != nil {
		respondError(ctx, err)
		return
	}

	broadcastEvent(c.hub, "user_deleted", userID)
	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}
