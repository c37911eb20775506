package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-admin/apperror"
	"blog-admin/models"
	"blog-admin/realtime"
)

var errInvalidID = apperror.Validation("Invalid id")

// respondError translates service errors into the API error contract: a JSON
// body of {"message": ...} with the status matching the error class. Unknown
// errors are logged and answered with a generic 500 so nothing internal leaks.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperror.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		log.Printf("unhandled error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
	}
}

// currentUser returns the identity resolved by the auth middleware, or nil
// when the request is unauthenticated.
func currentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func broadcastEvent(hub *realtime.Hub, eventType string, id uint) {
	event := map[string]any{
		"type": eventType,
		"id":   id,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	hub.Broadcast(payload)
}
