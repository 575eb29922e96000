package main

import (
	"context"
	"net/http"
	"time"

	authapp "github.com/kariago/kariago-backend/application/auth"
	bookingapp "github.com/kariago/kariago-backend/application/booking"
	carapp "github.com/kariago/kariago-backend/application/car"
	integrityapp "github.com/kariago/kariago-backend/application/integrity"
	reclamationapp "github.com/kariago/kariago-backend/application/reclamation"
	userapp "github.com/kariago/kariago-backend/application/user"
	"github.com/kariago/kariago-backend/cmd/config"
	mongoclient "github.com/kariago/kariago-backend/cmd/mongo"
	redisclient "github.com/kariago/kariago-backend/cmd/redis"
	_ "github.com/kariago/kariago-backend/docs"
	bookingRepo "github.com/kariago/kariago-backend/repository/booking"
	carRepo "github.com/kariago/kariago-backend/repository/car"
	reclamationRepo "github.com/kariago/kariago-backend/repository/reclamation"
	redisRepo "github.com/kariago/kariago-backend/repository/redis"
	userRepo "github.com/kariago/kariago-backend/repository/user"
	"github.com/kariago/kariago-backend/thirdparty/rabbitmq"
	"github.com/kariago/kariago-backend/transport"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

// @title KariaGo API
// @version 1.0
// @description Car-rental booking API
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	// Connect to MongoDB
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	db := mongoclient.Get()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CarRepo := carRepo.NewCarRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	ReclamationRepo := reclamationRepo.NewReclamationRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Unique secondary-key lookups rely on these indexes
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, ensure := range []func(context.Context) error{
		UserRepo.EnsureIndexes,
		CarRepo.EnsureIndexes,
		BookingRepo.EnsureIndexes,
		ReclamationRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Fatal("err ensure indexes", zap.Error(err))
		}
	}

	// Connect to RabbitMQ
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	IntegrityApp := integrityapp.NewIntegrityApp(UserRepo, CarRepo)
	UserApp := userapp.NewUserApp(AuthApp, UserRepo, publisher)
	CarApp := carapp.NewCarApp(CarRepo)
	BookingApp := bookingapp.NewBookingApp(IntegrityApp, BookingRepo, publisher)
	ReclamationApp := reclamationapp.NewReclamationApp(IntegrityApp, ReclamationRepo)

	httpTransport := transport.NewTransport(AuthApp, UserApp, CarApp, BookingApp, ReclamationApp, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
