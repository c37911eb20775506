package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blog-admin/controllers"
	"blog-admin/dto"
	"blog-admin/infra"
	"blog-admin/middlewares"
	"blog-admin/models"
	"blog-admin/realtime"
	"blog-admin/repositories"
	"blog-admin/services"
)

func setupRouter(db *gorm.DB, hub *realtime.Hub) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	articleRepository := repositories.NewArticleRepository(db)

	authService := services.NewAuthService(userRepository)
	userService := services.NewUserService(userRepository)
	articleService := services.NewArticleService(articleRepository)

	userController := controllers.NewUserController(userService, hub)
	articleController := controllers.NewArticleController(articleService, hub)
	eventController := controllers.NewEventController(hub)

	r := gin.Default()
	r.Use(cors.Default())

	// Public routes still run the token authenticator so a supplied token is
	// always checked; protected routes require one.
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

	r.GET("/api/events", middlewares.AuthMiddleware(authService), eventController.Stream)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	// The in-memory sqlite fallback always needs the schema; postgres opts in
	// via AUTO_MIGRATE.
	if os.Getenv("DB_NAME") == "" || os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Article{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

// runCreateAdmin bootstraps an admin account from the command line:
//
//	blog-admin create-admin <username> <firstName> <lastName>
//
// The password is generated and printed together with the API token.
func runCreateAdmin(args []string) {
	if len(args) != 3 {
		log.Fatal("usage: blog-admin create-admin <username> <firstName> <lastName>")
	}

	db := initDB()
	userService := services.NewUserService(repositories.NewUserRepository(db))

	password, err := services.GenerateToken()
	if err != nil {
		log.Fatal("Failed to generate password: ", err)
	}

	user, err := userService.Create(dto.SignupInput{
		Username:  args[0],
		FirstName: args[1],
		LastName:  args[2],
		Role:      string(models.RoleAdmin),
		Password:  password,
	})
	if err != nil {
		log.Fatal("Failed to create admin user: ", err)
	}

	log.Printf("Admin user created. ID=%d", user.ID)
	log.Printf("Password: %s", password)
	log.Printf("API token: %s", user.ApiToken)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "create-admin" {
		runCreateAdmin(os.Args[2:])
		return
	}

	db := initDB()
	hub := realtime.NewHub()
	r := setupRouter(db, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
