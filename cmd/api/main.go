package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devfolio/blog-api/internal/domain/contract"
	handlerHttp "github.com/devfolio/blog-api/internal/handler/http"
	redisclient "github.com/devfolio/blog-api/internal/infrastructure/cache"
	"github.com/devfolio/blog-api/internal/infrastructure/config"
	database "github.com/devfolio/blog-api/internal/infrastructure/database"
	"github.com/devfolio/blog-api/internal/infrastructure/jwt"
	"github.com/devfolio/blog-api/internal/infrastructure/logger"
	passwordservice "github.com/devfolio/blog-api/internal/infrastructure/password_service"
	randomgenerator "github.com/devfolio/blog-api/internal/infrastructure/random_generator"
	"github.com/devfolio/blog-api/internal/infrastructure/repository/mongodb"
	"github.com/devfolio/blog-api/internal/infrastructure/storage"
	"github.com/devfolio/blog-api/internal/infrastructure/store"
	"github.com/devfolio/blog-api/internal/infrastructure/uuidgen"
	"github.com/devfolio/blog-api/internal/infrastructure/validator"
	"github.com/devfolio/blog-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if cfg.MongoDBName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	if cfg.AdminSecret == "" && cfg.AdminSecretHash == "" {
		log.Fatal("ADMIN_SECRET or ADMIN_SECRET_HASH environment variable must be set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(cfg.MongoDBName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	blogRepo := mongodb.NewBlogRepository(db)
	mediaRepo := mongodb.NewMediaRepository(db)
	mediaStore, err := storage.NewGridFSStore(db)
	if err != nil {
		log.Fatalf("Failed to open media store: %v", err)
	}

	// Dependency Injection: Services
	var secretVerifier contract.ISecretVerifier
	signingKey := cfg.AdminSecret
	if cfg.AdminSecretHash != "" {
		secretVerifier = passwordservice.NewBcryptVerifier(cfg.AdminSecretHash)
		signingKey = cfg.AdminSecretHash
	} else {
		secretVerifier = passwordservice.NewPlainVerifier(cfg.AdminSecret)
	}
	tokenManager := jwt.NewManager(signingKey, cfg.AdminTokenTTL)
	appLogger := logger.New()
	randomGenerator := randomgenerator.NewRandomGenerator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	adminGate := usecase.NewAdminGate(secretVerifier, tokenManager, appLogger)
	blogUsecase := usecase.NewBlogUseCase(blogRepo, uuidGenerator, appLogger)
	mediaUsecase := usecase.NewMediaUseCase(mediaRepo, mediaStore, uuidGenerator, randomGenerator, appLogger, cfg.AppBaseURL)

	// Optional Dependency Injection: Redis cache
	if cfg.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		blogUsecase.SetBlogCache(store.NewBlogCacheStore(rdb, cfg.ListCacheTTL))
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(blogUsecase, mediaUsecase, adminGate, mongoClient)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
