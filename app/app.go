// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"studio-api/config"
	"studio-api/db"
	"studio-api/handler"
	"studio-api/logger"
	"studio-api/repository"
	"studio-api/router"
	"studio-api/service"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// App holds the wired HTTP handler and the resources it depends on.
type App struct {
	DB     *sql.DB
	Router http.Handler
}

// NewApp wires repositories, services and handlers. cache may be nil.
func NewApp(cfg *config.Config, database *sql.DB, cache service.ICacheClient) *App {
	tokenService := service.NewTokenService(cfg.JWT)

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, tokenService, cfg.Auth.BcryptCost)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(authService, userService)

	bankRepo := repository.NewBankRepository(database)
	bankService := service.NewBankService(bankRepo, cache)
	bankHandler := handler.NewBankHandler(bankService)

	authenticator := handler.NewAuthenticator(tokenService, !cfg.IsProduction())

	return &App{
		DB:     database,
		Router: router.NewRouter(userHandler, bankHandler, authenticator),
	}
}

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Log.WithFields(logrus.Fields{
		"env":        cfg.App.Env,
		"jwt_expiry": cfg.JWT.Expiry.String(),
	}).Info("Configuration loaded successfully")

	if cfg.JWT.SecretKey == "" {
		logger.Log.Error("JWT secret key is not configured; protected routes will answer 500")
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.Database.Name); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	var cache service.ICacheClient
	redisClient, err := db.ConnectRedis(context.Background(), cfg.Redis)
	if err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, bank list caching disabled")
	} else {
		defer redisClient.Close()
		cache = redisClient
	}

	application := NewApp(cfg, database, cache)

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
