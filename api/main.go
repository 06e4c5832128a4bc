package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mworx/stockroom/internal/auth"
	"github.com/mworx/stockroom/internal/config"
	"github.com/mworx/stockroom/internal/db"
	api "github.com/mworx/stockroom/internal/http"
	"github.com/mworx/stockroom/internal/http/handlers"
	rl "github.com/mworx/stockroom/internal/http/rate_limiter"
	"github.com/mworx/stockroom/internal/inventory"
	"github.com/mworx/stockroom/internal/notify"
	"github.com/mworx/stockroom/internal/redissvc"
	"github.com/mworx/stockroom/internal/repo"
)

var ctx = context.Background()

// @title Stockroom API
// @version 1.0
// @description REST API for tracking printing-supplies inventory, stock alerts and user activity.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	auth.Configure(cfg.JWTSecret, cfg.AccessTokenTTL)
	auth.SetRefreshTokenTTL(cfg.RefreshTokenTTL)

	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("could not connect to Redis")
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	auth.SetRedisService(redisService)
	notify.SetRedisService(redisService)
	notify.SetSMTPConfig(cfg.SMTP)

	// Started after the redis and SMTP wiring above so the summary loop
	// never observes a half-configured notifier.
	go notify.StartDailyStockSummary(24 * time.Hour)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ could not connect to database")
	}
	defer database.Close()

	userRepo := repo.NewPostgresUserRepository(database)
	if err := auth.SeedDemoUsers(userRepo, cfg.DemoPassword); err != nil {
		log.Fatal().Err(err).Msg("could not seed demo users")
	}

	svc := inventory.NewService(
		repo.NewPostgresItemRepository(database),
		repo.NewPostgresAlertRepository(database),
		repo.NewPostgresActivityRepository(database),
	)
	svc.OnAlertsRaised(notify.NotifyNewAlerts)

	handlers.SetInventoryService(svc)
	handlers.SetUserRepo(userRepo)

	r := api.NewRouter()
	log.Info().Str("addr", cfg.Addr).Msg("✅ server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
