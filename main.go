package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/kickoff/config"
	_ "github.com/DhavalSuthar-24/kickoff/docs"
	"github.com/DhavalSuthar-24/kickoff/internal/cache"
	"github.com/DhavalSuthar-24/kickoff/internal/match"
	"github.com/DhavalSuthar-24/kickoff/internal/review"
	"github.com/DhavalSuthar-24/kickoff/internal/sport"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"github.com/DhavalSuthar-24/kickoff/pkg/logger"
	"github.com/DhavalSuthar-24/kickoff/routes"
)

// @title Kickoff REST API
// @version 1.0
// @description Pickup matches on bookable venue slots.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	err = db.AutoMigrate(
		&user.User{},
		&sport.Sport{},
		&venue.VenueProfile{}, &venue.Field{}, &venue.TimeSlot{},
		&match.Match{}, &match.MatchPlayer{},
		&review.PlayerReview{},
	)
	if err != nil {
		zlog.Fatal("AutoMigrate failed", zap.Error(err))
	}
	zlog.Info("AutoMigrate successful")

	seeded, err := sport.NewSportRepository(db).SeedDefaults(context.Background())
	if err != nil {
		zlog.Fatal("Seeding sports catalog failed", zap.Error(err))
	}
	zlog.Info("Sports catalog ready", zap.Int64("added", seeded))

	var cacheStore cache.Store = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			zlog.Warn("Redis unreachable, match views will not be cached", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			cacheStore = cache.NewRedisStore(rdb, "kickoff:")
			zlog.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      routes.SetupRoutes(cfg, db, zlog, cacheStore),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("Starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zlog.Info("Server exited")
}
