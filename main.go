package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aqarpress/config"
	"aqarpress/controllers"
	"aqarpress/middleware"
	"aqarpress/models"
	"aqarpress/repositories"
	"aqarpress/services"
	"aqarpress/storage"
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.")

	logging.Info("Running database auto-migration...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.ContentSection{},
		&models.TableOfContent{},
		&models.FaqItem{},
		&models.RelatedPost{},
		&models.Property{},
		&models.PropertyFeature{},
	); err != nil {
		logging.Fatal("Auto-migration failed", zap.Error(err))
	}

	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}

	// Repositories and services
	postRepo := repositories.NewPostRepository(db, logging)
	propertyRepo := repositories.NewPropertyRepository(db, logging)
	userRepo := repositories.NewUserRepository(db)

	mailer := services.NewMailer(cfg, logging)
	postService := services.NewPostService(postRepo, logging)
	propertyService := services.NewPropertyService(propertyRepo, logging)
	userService := services.NewUserService(userRepo, mailer, cfg.JWTSecret, logging)

	blogController := controllers.NewBlogController(postService, logging)
	propertyController := controllers.NewPropertyController(propertyService, logging)
	userController := controllers.NewUserController(userService, logging)
	uploadController := controllers.NewUploadController(s3Client, cfg, logging)

	// Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := middleware.Auth(cfg.JWTSecret)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", userController.Register)
	authGroup.POST("/login", userController.Login)

	posts := router.Group("/posts")
	posts.GET("", blogController.List)
	posts.GET("/:slug", blogController.GetBySlug)
	posts.POST("", auth, blogController.Create)
	posts.DELETE("/:id", auth, middleware.RequireAdmin(), blogController.Delete)

	properties := router.Group("/properties")
	properties.GET("", propertyController.List)
	properties.GET("/:slug", propertyController.GetBySlug)
	properties.POST("", auth, propertyController.Create)
	properties.DELETE("/:id", auth, middleware.RequireAdmin(), propertyController.Delete)

	router.POST("/uploads", auth, uploadController.Upload)

	// Scheduled publishing of due drafts
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.PublishCronSchedule, func() {
		ctx := context.Background()
		published, err := postRepo.PublishDue(ctx, time.Now())
		if err != nil {
			logging.Error("Scheduled publish job failed", zap.Error(err))
			return
		}
		for _, post := range published {
			logging.Info("Post published on schedule",
				zap.Uint("post_id", post.ID), zap.String("slug", post.Slug))
			if mailer == nil {
				continue
			}
			author, err := userRepo.GetByID(ctx, post.AuthorID)
			if err != nil {
				logging.Warn("Author lookup for publish notification failed",
					zap.Uint("author_id", post.AuthorID), zap.Error(err))
				continue
			}
			mailer.SendAsync(author.Email, "Your post is live",
				fmt.Sprintf("Hi %s,\n\nyour post %q has been published.", author.Name, post.TitleEn))
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.CORSOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}
