package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kariago/kariago-backend/cmd/config"
	"github.com/kariago/kariago-backend/thirdparty/mailer"
	"github.com/kariago/kariago-backend/thirdparty/rabbitmq"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

// The worker drains the reset-mail and booking-expiration queues. Mail goes
// out over SMTP; expirations call back into the API's internal surface.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting worker", zap.String("env", cfg.Environment))

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
	}

	smtpMailer := mailer.New(cfg.Mail)

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		smtpMailer, apiURL, cfg.Auth.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Worker running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Worker shutting down")
}
