package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nfl-analytics/dynasty-core/internal/auth"
	"github.com/nfl-analytics/dynasty-core/internal/config"
	"github.com/nfl-analytics/dynasty-core/internal/contract"
	"github.com/nfl-analytics/dynasty-core/internal/database"
	"github.com/nfl-analytics/dynasty-core/internal/draft"
	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/handlers"
	"github.com/nfl-analytics/dynasty-core/internal/hostapi"
	"github.com/nfl-analytics/dynasty-core/internal/middleware"
	"github.com/nfl-analytics/dynasty-core/internal/milestone"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/phase"
	"github.com/nfl-analytics/dynasty-core/internal/repositories"
	"github.com/nfl-analytics/dynasty-core/internal/services"
	"github.com/nfl-analytics/dynasty-core/internal/simulation"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		log.Fatalf("Database health check failed: %v", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection failed (continuing without cache): %v", err)
			redisClient = nil
		} else {
			log.Printf("Redis connected successfully")
		}
	}

	appLog := logger.New(logger.Config{Level: cfg.App.LogLevel, Format: "json"})

	// Account/auth repositories and services — unchanged from the teacher,
	// a dynasty owner is still just a user account.
	userRepo := repositories.NewPostgresUserRepository(db)
	authRepo := repositories.NewPostgresAuthRepository(db)

	jwtManager := auth.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	authService := services.NewAuthService(authRepo, userRepo, jwtManager)
	userService := services.NewUserService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	// Season-cycle core: repositories, then domain services, then the
	// hostapi.Manager that fronts them over HTTP.
	sqlDB := db.DB
	dynastyRepo := store.NewDynastyRepository(sqlDB)
	standingsRepo := store.NewStandingsRepository(sqlDB)
	contractRepo := store.NewContractRepository(sqlDB)
	draftRepo := store.NewDraftRepository(sqlDB)
	eventLog := eventlog.New(sqlDB)
	dataStore := store.New(sqlDB)

	contractSvc := contract.New(contractRepo, appLog)
	draftSvc := draft.NewService(draft.NewPostgresRepository(draftRepo), dynastyRepo, redisClient, appLog)
	milestoneRouter := milestone.New(eventLog, redisClient)

	bounds := phase.Boundaries{
		PreseasonStart:     models.NewDate(time.Now().Year(), cfg.Simulation.PreseasonStartMonth, cfg.Simulation.PreseasonStartDay),
		RegularSeasonStart: models.NewDate(time.Now().Year(), cfg.Simulation.RegularSeasonStartMonth, cfg.Simulation.RegularSeasonStartDay),
	}

	manager := hostapi.NewManager(
		dataStore, dynastyRepo, standingsRepo, contractRepo, draftRepo, eventLog,
		milestoneRouter, draftSvc, contractSvc,
		hostapi.Config{
			Bounds:       bounds,
			GameProvider: simulation.NewPlaceholderGameResultProvider(),
		},
		appLog,
	)

	dynastyHandler := hostapi.NewDynastyHandler(manager)
	simulationHandler := hostapi.NewSimulationHandler(manager)
	draftHandler := hostapi.NewDraftHandler(manager)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(appLog))

	r.GET("/health", healthHandler.Health)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "NFL Dynasty Season-Cycle API",
			"version": "0.1.0",
		})
	})

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.RefreshToken)
	}

	api := r.Group("/api")
	api.Use(auth.AuthMiddleware(jwtManager))
	{
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("/profile", userHandler.GetProfile)
			userRoutes.PUT("/profile", userHandler.UpdateProfile)
			userRoutes.DELETE("/account", userHandler.DeleteAccount)
			userRoutes.POST("/password", userHandler.ChangePassword)
		}

		api.POST("/auth/logout", authHandler.Logout)

		dynastyHandler.RegisterRoutes(api)
		simulationHandler.RegisterRoutes(api)
		draftHandler.RegisterRoutes(api)
	}

	port := cfg.Server.Port
	if port == "" {
		port = os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
	}

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
