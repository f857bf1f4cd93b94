package main

import (
	"fmt"
	"html/template"
	"log"
	"os"

	"courseboard/handler"
	"courseboard/middleware"
	"courseboard/repository"
	"courseboard/services"
	"courseboard/templates"
	"courseboard/usecase"
	"courseboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.IdentityMiddleware())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	announcementsRepo := repository.GetAnnouncementsRepo(utils.MongoClient)
	studentsRepo := repository.GetStudentsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Warning: failed to set up indexes: %v", err)
	}

	announcementsService := &usecase.AnnouncementsService{
		Store: announcementsRepo,
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewListCache(redisURL)
		if err != nil {
			log.Printf("Warning: list cache disabled: %v", err)
		} else {
			announcementsService.Cache = cache
		}
	}

	userService := &usecase.UserService{
		UsersRepo:    usersRepo,
		StudentsRepo: studentsRepo,
	}

	announcementsHandler := handler.NewAnnouncementsHandler(announcementsService, studentsRepo)
	itemHandler := handler.NewAnnouncementItemHandler(announcementsService)
	authHandler := handler.NewAuthHandler(userService)
	healthHandler := handler.NewHealthHandler(announcementsRepo)

	// HTML surface
	router.GET("/announcements", announcementsHandler.Get)
	router.POST("/announcements", announcementsHandler.Post)
	router.GET("/login", handler.LoginPage)
	router.GET("/preview", handler.PreviewPage)

	// REST surface
	router.GET("/rest/announcements/item", itemHandler.Get)
	router.PUT("/rest/announcements/item", itemHandler.Put)

	// Identity
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
