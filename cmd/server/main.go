package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/config"
	"github.com/neuronet/neuronet-backend/internal/database"
	"github.com/neuronet/neuronet-backend/internal/handler"
	"github.com/neuronet/neuronet-backend/internal/middleware"
	"github.com/neuronet/neuronet-backend/internal/queue"
	"github.com/neuronet/neuronet-backend/internal/repository"
	"github.com/neuronet/neuronet-backend/internal/router"
	queue_publisher "github.com/neuronet/neuronet-backend/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: rate limiting and response caching disabled")
	}

	// Background consumer for submission events; reconnects on its own.
	go func() {
		if err := queue.StartAssessmentConsumer(); err != nil {
			log.Printf("assessment consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	assessments := repository.NewAssessmentRepo(db)

	mw := router.Middlewares{
		Guard:      middleware.Authenticate(cfg.JWTSecret, users),
		RolePolicy: router.DefaultRolePolicy(),
		Limiter:    middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:      middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	e := echo.New()
	router.RegisterHealth(e, handler.NewHealthHandler(db))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), mw)
	router.RegisterProfile(e, handler.NewProfileHandler(profiles), mw)
	router.RegisterAssessments(e, handler.NewAssessmentHandler(
		assessments, queue_publisher.PublishAssessmentSubmitted), mw)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
