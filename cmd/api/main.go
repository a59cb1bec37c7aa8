package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/db"
	apihttp "devconnect/internal/http"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.RunMigrations {
		if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	postRepo := repository.NewPgPostRepository(pool)

	loginWindow := time.Duration(cfg.LoginRateWindowSeconds) * time.Second

	var loginLimiter service.LoginRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, loginWindow, cfg.LoginRateMax)
		}
		cancel()
	}
	if loginLimiter == nil {
		loginLimiter = service.NewLoginRateLimiter(loginWindow, cfg.LoginRateMax)
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLSeconds)*time.Second)

	userSvc := service.NewUserService(logger, userRepo, loginLimiter)
	profileSvc := service.NewProfileService(logger, profileRepo, userRepo)
	postSvc := service.NewPostService(logger, postRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	profileHandler := apihttp.NewProfileHandler(logger, profileSvc)
	postHandler := apihttp.NewPostHandler(logger, postSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, profileHandler, postHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
