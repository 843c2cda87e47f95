package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/config"
	"github.com/agunich/AutoHub/db"
	authhandler "github.com/agunich/AutoHub/internal/auth/handler"
	"github.com/agunich/AutoHub/internal/auth/middleware"
	"github.com/agunich/AutoHub/internal/auth/password"
	authrepo "github.com/agunich/AutoHub/internal/auth/repository/postgres"
	authservice "github.com/agunich/AutoHub/internal/auth/service"
	"github.com/agunich/AutoHub/internal/cache"
	carhandler "github.com/agunich/AutoHub/internal/car/handler"
	carrepo "github.com/agunich/AutoHub/internal/car/repository/postgres"
	carservice "github.com/agunich/AutoHub/internal/car/service"
	favhandler "github.com/agunich/AutoHub/internal/favorite/handler"
	favrepo "github.com/agunich/AutoHub/internal/favorite/repository/postgres"
	favservice "github.com/agunich/AutoHub/internal/favorite/service"
	imagehandler "github.com/agunich/AutoHub/internal/image/handler"
	imagerepo "github.com/agunich/AutoHub/internal/image/repository/postgres"
	imageservice "github.com/agunich/AutoHub/internal/image/service"
	"github.com/agunich/AutoHub/internal/image/storage"
	"github.com/agunich/AutoHub/internal/notification"
	reviewhandler "github.com/agunich/AutoHub/internal/review/handler"
	reviewrepo "github.com/agunich/AutoHub/internal/review/repository/postgres"
	reviewservice "github.com/agunich/AutoHub/internal/review/service"
	"github.com/agunich/AutoHub/pkg/constant"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.Env == config.DefaultEnv {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	// Cache and notifications degrade gracefully: services fall back to
	// direct DB reads and skip events when these are unreachable.
	var store cache.Store

	redisStore := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisStore.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, caching disabled")
	} else {
		store = redisStore
		defer redisStore.Close()
	}

	notifier := notification.NewKafkaPublisher(cfg.KafkaBrokers, constant.NotificationsTopic, log)
	defer notifier.Close()

	blobs, err := storage.NewS3Storage(ctx, storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object storage init failed")
	}

	userRepo := authrepo.NewUserRepository(dbPool)
	carRepo := carrepo.NewCarRepository(dbPool)
	reviewRepo := reviewrepo.NewReviewRepository(dbPool)
	favoriteRepo := favrepo.NewFavoriteRepository(dbPool)
	imageRepo := imagerepo.NewImageRepository(dbPool)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, constant.TokenTTL)
	hasher := password.NewBcryptHasher()
	userService := authservice.NewUserService(userRepo, tokenService, hasher, notifier, log)
	carService := carservice.NewCarService(carRepo, store, notifier, log)
	reviewService := reviewservice.NewReviewService(reviewRepo, log)
	favoriteService := favservice.NewFavoriteService(favoriteRepo, store, log)
	imageService := imageservice.NewImageService(imageRepo, carRepo, blobs, log)

	authHandler := authhandler.NewAuthHandler(userService, log)
	userHandler := authhandler.NewUserHandler(userService, log)
	carHandler := carhandler.NewCarHandler(carService, log)
	reviewHandler := reviewhandler.NewReviewHandler(reviewService, log)
	favoriteHandler := favhandler.NewFavoriteHandler(favoriteService, log)
	imageHandler := imagehandler.NewImageHandler(imageService, log)

	jwtFilter := middleware.NewJWTFilter(tokenService, userService, log)
	policy := middleware.DefaultPolicy()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(jwtFilter.Handle)
	app.Use(policy.Enforce)

	authhandler.RegisterRoutes(app, authHandler, userHandler)
	carHandler.RegisterRoutes(app)
	reviewHandler.RegisterRoutes(app)
	favoriteHandler.RegisterRoutes(app)
	imageHandler.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
