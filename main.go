package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"bookly-be/internal/authz"
	"bookly-be/internal/cache"
	"bookly-be/internal/config"
	"bookly-be/internal/controllers"
	"bookly-be/internal/database"
	"bookly-be/internal/jwt"
	"bookly-be/internal/metrics"
	"bookly-be/internal/middleware"
	"bookly-be/internal/repository"
	"bookly-be/internal/service"
	"bookly-be/internal/tokenstore"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Optionally seed demo data into an empty database
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db, &logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	jwtTTL := time.Duration(cfg.JWTTTL) * time.Hour
	var cacheClient cache.Cache
	var tokens tokenstore.Store
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, using in-memory token store and no cache")
		cacheClient = nil
		tokens = tokenstore.NewMemoryStore()
	} else {
		logger.Info().Msg("connected to Redis")
		tokens = tokenstore.NewRedisStore(cacheClient, jwtTTL)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, jwtTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokens)
	catalogService := service.NewCatalogService(serviceRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	serviceController := controllers.NewServiceController(catalogService)
	bookingController := controllers.NewBookingController(bookingService)
	qrcodeController := controllers.NewQRCodeController(bookingService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	bookingRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitBookingRPS), cfg.RateLimitBookingBurst)

	metrics.Register()

	// Create a Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(&logger))
	router.Use(middleware.Metrics())

	// Health check and metrics endpoints (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require a live bearer token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, tokens))
		{
			protected.POST("/auth/logout", authController.Logout)
			protected.GET("/users", middleware.RequirePermission(authz.ActionListUsers), authController.ListUsers)

			// Customer routes
			protected.GET("/services", serviceController.Index)
			protected.POST("/bookings", bookingRateLimiter.LimitMiddleware(), bookingController.Store)
			protected.GET("/bookings", bookingController.Index)
			protected.GET("/bookings/:id/qrcode", qrcodeController.GenerateBookingQRCode)

			// Admin routes
			admin := protected.Group("")
			{
				admin.GET("/admin/services", middleware.RequirePermission(authz.ActionListAllServices), serviceController.AdminIndex)
				admin.POST("/services", middleware.RequirePermission(authz.ActionCreateService), serviceController.Store)
				admin.PUT("/services/:id", middleware.RequirePermission(authz.ActionUpdateService), serviceController.Update)
				admin.DELETE("/services/:id", middleware.RequirePermission(authz.ActionDeleteService), serviceController.Destroy)
				admin.GET("/admin/bookings", middleware.RequirePermission(authz.ActionListAllBookings), bookingController.AdminIndex)
				admin.PUT("/admin/bookings/:id/status", middleware.RequirePermission(authz.ActionUpdateBookingStatus), bookingController.UpdateStatus)
			}
		}
	}

	logger.Info().Str("addr", cfg.ServerAddr).Msg("server starting")
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
