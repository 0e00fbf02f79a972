// @title CVSS Scoring Service API
// @version 1.0
// @description Computes CVSS v3.1 scores, severities and FIRST.org XML/JSON documents.
// @host localhost:8003
// @BasePath /api/cvss

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cvss-scoring-service-golang/docs"
	v1 "cvss-scoring-service-golang/internal/api/v1"
	"cvss-scoring-service-golang/internal/config"
	"cvss-scoring-service-golang/internal/consumer"
	"cvss-scoring-service-golang/internal/db"
	kafkautil "cvss-scoring-service-golang/internal/kafka"
	"cvss-scoring-service-golang/internal/logging"
	"cvss-scoring-service-golang/internal/redis"
	"cvss-scoring-service-golang/internal/scheduler"
	"cvss-scoring-service-golang/internal/services"
	"cvss-scoring-service-golang/internal/store"
	"cvss-scoring-service-golang/internal/telemetry"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/gofiber/swagger"
)

func main() {
	//load configs
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogLevel)

	mp, err := telemetry.InitMetrics()
	if err != nil {
		slog.Error("failed to init metrics", "err", err)
		os.Exit(1)
	}

	//connect to db and redis
	if err := db.InitPostgres(cfg.DatabaseURL); err != nil {
		slog.Error("database unavailable", "err", err)
		os.Exit(1)
	}
	defer db.CloseDB()
	if err := redis.InitRedis(cfg.RedisURL); err != nil {
		slog.Warn("redis unavailable, scoring without cache", "err", err)
	}
	defer redis.CloseRedis()

	scorer := services.NewScorer(cfg.CacheTTL(), db.Conn)
	attributes := store.New(db.Conn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//init kafka consumer
	go func() {
		if err := consumer.StartConsumer(ctx, cfg, scorer); err != nil {
			slog.Error("consume error", "err", err)
			stop()
		}
	}()

	//init scheduler
	rescore, err := scheduler.StartRescoreScheduler(cfg, attributes, scorer)
	if err != nil {
		slog.Error("failed to start rescore scheduler", "err", err)
		os.Exit(1)
	}

	//start API
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://localhost:8000, https://127.0.0.1:8000, https://localhost:3000",
		AllowMethods:     "GET,POST,HEAD,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-CVSS-Profile",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	api := app.Group("/api/cvss")
	v1.RegisterCVSSRoutes(api, scorer)

	// Swagger UI
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("failed to start server", "err", err)
			stop()
		}
	}()

	log := logging.Component("main")
	log.Info("CVSS Scoring Service running", "port", cfg.Port)

	//wait until shutdown
	<-ctx.Done()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Warn("http shutdown", "err", err)
	}
	<-rescore.Stop().Done()
	kafkautil.CloseWriters()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mp.Shutdown(shutdownCtx); err != nil {
		slog.Warn("metrics shutdown", "err", err)
	}

	log.Info("CVSS Scoring Service stopped gracefully")
}
