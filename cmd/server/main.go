package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"wheelmart/internal/config"
	"wheelmart/internal/db"
	"wheelmart/internal/httpserver"
	"wheelmart/internal/logging"
	"wheelmart/internal/middleware"
	"wheelmart/internal/mykafka"
	"wheelmart/internal/repo"
	"wheelmart/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustSet("DATABASE_URL", cfg.DatabaseURL)
	config.MustSet("JWT_SECRET", string(cfg.JWTSecret))

	logger := logging.New(cfg.LogLevel, "wheelmart")
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("kafka disabled", "reason", "KAFKA_BROKERS not set")
	}
	defer producer.Close()

	gormRepo := &repo.GormRepo{DB: gdb}

	deps := &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: gormRepo, JWTSecret: cfg.JWTSecret},
			Producer: producer,
		},
		CatalogHandler: &httpserver.CatalogHTTP{
			Svc:      &service.CatalogService{Repo: gormRepo},
			Producer: producer,
		},
		OrderHandler: &httpserver.OrderHTTP{
			Svc:      &service.OrderService{Repo: gormRepo},
			Producer: producer,
		},
		JWTSecret: cfg.JWTSecret,
		StaticDir: cfg.StaticDir,
	}
	httpserver.Register(e, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
