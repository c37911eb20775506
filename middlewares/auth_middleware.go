package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-admin/services"
)

const tokenHeader = "X-AUTH-TOKEN"

// AuthMiddleware rejects the request unless the X-AUTH-TOKEN header resolves
// to a user. The resolved user is stored in the context under "user".
// Websocket clients cannot set custom headers, so a token query parameter is
// accepted as a fallback.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(tokenHeader)
		if token == "" {
			token = ctx.Query("token")
		}
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or missing API token"})
			return
		}

		user, err := authService.GetUserFromToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or missing API token"})
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware runs the token authenticator on routes that do not
// require identity. A missing header passes through unauthenticated; a token
// that is present but unknown is still a 401.
func OptionalAuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(tokenHeader)
		if token == "" {
			ctx.Next()
			return
		}

		user, err := authService.GetUserFromToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or missing API token"})
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
