// Package main wires the repositories, services and HTTP surface together
// and runs the API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paygate/internal/config"
	"paygate/internal/handlers"
	"paygate/internal/metrics"
	"paygate/internal/repositories"
	"paygate/internal/repositories/cache"
	"paygate/internal/saga"
	"paygate/internal/services/auth"
	"paygate/internal/services/saldo"
	"paygate/internal/services/topup"
	"paygate/internal/services/transfer"
	"paygate/internal/services/user"
	"paygate/internal/services/withdraw"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	zlog, err := newLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	metrics.Init()

	db, err := repositories.Connect()
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("failed to get database instance", zap.Error(err))
	}
	defer sqlDB.Close()

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewService(redisClient, config.GetDurationEnv("CACHE_TTL", 5*time.Minute))
	defer cacheService.Close()

	if err := cacheService.HealthCheck(context.Background()); err != nil {
		zlog.Warn("redis unreachable, running without cache", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	saldoRepo := repositories.NewSaldoRepository(db)
	topupRepo := repositories.NewTopupRepository(db)
	withdrawRepo := repositories.NewWithdrawRepository(db)
	transferRepo := repositories.NewTransferRepository(db)

	sagas := saga.New(zlog)

	authService := auth.NewService(userRepo, zlog)
	userService := user.NewService(userRepo, zlog)
	saldoService := saldo.NewService(saldoRepo, userRepo, cacheService, zlog)
	topupService := topup.NewService(topupRepo, saldoRepo, userRepo, cacheService, sagas, zlog)
	withdrawService := withdraw.NewService(withdrawRepo, saldoRepo, userRepo, cacheService, sagas, zlog)
	transferService := transfer.NewService(transferRepo, saldoRepo, userRepo, cacheService, sagas, zlog)

	app := fiber.New(fiber.Config{
		AppName:      "paygate",
		ReadTimeout:  config.GetDurationEnv("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: config.GetDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Brute-force protection on the credential endpoints only.
	authLimiter := limiter.New(limiter.Config{
		Max:        config.GetIntEnv("AUTH_RATE_LIMIT", 10),
		Expiration: 1 * time.Minute,
	})
	app.Use("/api/auth/login", authLimiter)
	app.Use("/api/auth/register", authLimiter)

	handlers.SetupRoutes(app, &handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		User:     handlers.NewUserHandler(userService),
		Saldo:    handlers.NewSaldoHandler(saldoService),
		Topup:    handlers.NewTopupHandler(topupService),
		Withdraw: handlers.NewWithdrawHandler(withdrawService),
		Transfer: handlers.NewTransferHandler(transferService),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + config.GetEnv("PORT", "8080")
	zlog.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
