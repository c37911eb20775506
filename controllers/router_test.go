package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blog-admin/dto"
	"blog-admin/middlewares"
	"blog-admin/models"
	"blog-admin/realtime"
	"blog-admin/repositories"
	"blog-admin/services"
	"blog-admin/testutil"
)

// newTestRouter wires the full API against an in-memory database, mirroring
// the route table in main.go.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	userRepository := repositories.NewUserRepository(db)
	articleRepository := repositories.NewArticleRepository(db)

	authService := services.NewAuthService(userRepository)
	userService := services.NewUserService(userRepository)
	articleService := services.NewArticleService(articleRepository)

	hub := realtime.NewHub()
	userController := NewUserController(userService, hub)
	articleController := NewArticleController(articleService, hub)

	r := gin.New()
	userRouter := r.Group("/api/users", middlewares.OptionalAuthMiddleware(authService))
	userRouterWithAuth := r.Group("/api/users", middlewares.AuthMiddleware(authService))
	articleRouter := r.Group("/api/articles", middlewares.OptionalAuthMiddleware(authService))
	articleRouterWithAuth := r.Group("/api/articles", middlewares.AuthMiddleware(authService))

	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:id", userController.FindById)
	userRouter.POST("", userController.Create)
	userRouterWithAuth.PUT("/:id", userController.Update)
	userRouterWithAuth.DELETE("/:id", userController.Delete)

	articleRouter.GET("", articleController.FindAll)
	articleRouter.GET("/:id", articleController.FindById)
	articleRouterWithAuth.POST("", articleController.Create)
	articleRouterWithAuth.PUT("/:id", articleController.Update)
	articleRouterWithAuth.DELETE("/:id", articleController.Delete)

	return r, db
}

func performJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-AUTH-TOKEN", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	userService := services.NewUserService(repositories.NewUserRepository(db))
	user, err := userService.Create(dto.SignupInput{
		Username:  username,
		FirstName: "A",
		LastName:  "L",
		Role:      string(role),
		Password:  "secret123",
	})
	require.NoError(t, err)
	return user
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
