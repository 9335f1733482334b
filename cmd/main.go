package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/api/admin"
	"ecommerce-backend/internal/api/user"
	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/i18n"
	"ecommerce-backend/internal/middleware"
	repo "ecommerce-backend/internal/repository/mongo"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/storage"
	"ecommerce-backend/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	logger := util.InitLogger(cfg.LogLevel)
	defer logger.Sync()

	errors.Debug = cfg.Debug

	logger.Info("starting server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = client.Ping(pingCtx, nil)
	cancel()
	if err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := client.Database(cfg.MongoDB)

	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repo.EnsureIndexes(idxCtx, db)
	cancel()
	if err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	avatarStorage, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	userRepo := repo.NewUserRepository(db)
	tokenRepo := repo.NewTokenRepository(db)

	tokenService, err := service.NewTokenService(cfg, tokenRepo)
	if err != nil {
		logger.Fatal("failed to initialize token service", zap.Error(err))
	}
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	emailService := service.NewEmailService(cfg)
	userService := service.NewUserService(userRepo, tokenService, hasher, emailService)

	authHandler := user.NewAuthHandler(userService)
	profileHandler := user.NewProfileHandler(userService, avatarStorage)
	userHandler := user.NewUserHandler(userService)
	adminHandler := admin.NewAdminHandler(userService)

	// Persisted refresh/reset tokens outlive their expiry unless something
	// removes them; purge hourly.
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				if _, err := tokenService.PurgeExpired(purgeCtx); err != nil {
					logger.Error("failed to purge expired tokens", zap.Error(err))
				}
			}
		}
	}()
	defer stopPurge()

	errorMonitor := middleware.NewErrorMonitor()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))
	r.Use(i18n.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept-Language"}
	r.Use(cors.New(corsConfig))

	if cfg.Storage == "local" {
		r.Static("/uploads", cfg.LocalStoragePath)
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware(tokenService))
		{
			authorized.GET("/profile", profileHandler.GetProfile)
			authorized.PUT("/profile", profileHandler.UpdateProfile)
			authorized.PUT("/profile/password", profileHandler.ChangePassword)
			authorized.POST("/profile/avatar", profileHandler.UploadAvatar)
			authorized.DELETE("/account", profileHandler.DeleteAccount)

			authorized.POST("/profile/addresses", userHandler.AddAddress)
			authorized.PUT("/profile/addresses/:addressId", userHandler.UpdateAddress)
			authorized.DELETE("/profile/addresses/:addressId", userHandler.RemoveAddress)
			authorized.PUT("/profile/addresses/:addressId/default", userHandler.SetDefaultAddress)

			authorized.POST("/profile/wishlist/:productId", userHandler.AddToWishlist)
			authorized.DELETE("/profile/wishlist/:productId", userHandler.RemoveFromWishlist)
		}

		adminRoutes := api.Group("/users")
		adminRoutes.Use(middleware.AuthMiddleware(tokenService), middleware.AdminMiddleware(userService))
		{
			adminRoutes.GET("", adminHandler.GetUsers)
			adminRoutes.GET("/:id", adminHandler.GetUser)
			adminRoutes.PUT("/:id/role", adminHandler.UpdateUserRole)
			adminRoutes.DELETE("/:id", adminHandler.DeleteUser)
			adminRoutes.POST("/:id/restore", adminHandler.RestoreUser)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
