// @title Habit tracker API
// @description API for the habitlog habit tracker
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/habitlog/internal/api"
	"github.com/limbo/habitlog/internal/events"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/cleanup"
	"github.com/limbo/habitlog/pkg/config"
	jwtservice "github.com/limbo/habitlog/pkg/jwt_service"
	"github.com/limbo/habitlog/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	lg, err := logger.New(logger.Config{
		Level:  cfg.GetString("LOG_LEVEL"),
		File:   cfg.GetString("LOG_FILE"),
		Prefix: "api",
	})
	if err != nil {
		log.Fatal("logger setup error: " + err.Error())
	}
	slog.SetDefault(lg)
	if cfg.GetString("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := kvstore.New(ctx, kvstore.ConfigFrom(cfg))
	cancel()
	if err != nil {
		log.Fatal("storage setup error: " + err.Error())
	}

	opts := []service.Option{service.WithLocation(cfg.Location())}
	if brokers := cfg.GetList("KAFKA_BROKERS"); len(brokers) > 0 {
		opts = append(opts, service.WithPublisher(events.NewKafkaPublisher(brokers, cfg.GetString("KAFKA_TOPIC"))))
	}

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepo(store), store),
		HabitsService:    service.NewHabitsService(store, opts...),
		AnalyticsService: service.NewAnalyticsService(store, opts...),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL")),
	})

	go func() {
		if err := serv.Run(cfg.GetString("API_ADDRESS")); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	slog.Info("shutting down", slog.String("signal", sig.String()))
	cleanup.CleanUp()
}
