package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/smartrestaurant/restaurant-api/internal/api"
	"github.com/smartrestaurant/restaurant-api/internal/api/handler"
	"github.com/smartrestaurant/restaurant-api/internal/api/metrics"
	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
	"github.com/smartrestaurant/restaurant-api/internal/core/service"
	mongodb "github.com/smartrestaurant/restaurant-api/internal/infrastructure/db/mongo"
	redisdb "github.com/smartrestaurant/restaurant-api/internal/infrastructure/db/redis"
	"github.com/smartrestaurant/restaurant-api/internal/infrastructure/llm"
	"github.com/smartrestaurant/restaurant-api/internal/infrastructure/queue"
	"github.com/smartrestaurant/restaurant-api/internal/pkg/cache"
	"github.com/smartrestaurant/restaurant-api/internal/pkg/config"
	"github.com/smartrestaurant/restaurant-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Smart Restaurant API
// @version                     1.0
// @description                 Accounts, menu, orders, reservations, events and the menu assistant.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "restaurant-api",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		MinPoolSize: cfg.Mongo.MinPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	eventRepo := mongodb.NewEventRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"orders":       orderRepo.EnsureIndexes,
		"reservations": reservationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	readiness := map[string]handler.PingFunc{
		"mongodb": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}

	var keys ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		redisClient, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer redisClient.Close()
		keys = redisdb.NewIdempotencyStore(redisClient)
		readiness["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, Idempotency-Key is ignored")
	}

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpires.Duration(), time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token service")
	}

	var gen ports.TextGenerator
	if cfg.Groq.APIKey != "" {
		client, err := llm.NewClient(llm.Config{
			APIKey:      cfg.Groq.APIKey,
			BaseURL:     cfg.Groq.BaseURL,
			Model:       cfg.Groq.Model,
			MaxTokens:   cfg.Groq.MaxTokens,
			Temperature: cfg.Groq.Temperature,
			Timeout:     cfg.Groq.Timeout,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build generation client")
		}
		gen = client
	} else {
		log.Warn().Msg("GROQ_API_KEY not set, assistant will answer with the fallback reply")
	}

	snapshot := cache.NewSnapshot[[]domain.MenuItem](cfg.Menu.CacheTTL, cache.WithObserver(metrics.ObserveMenuCache))

	authSvc := service.NewAuthService(userRepo, tokens, cfg.Auth.AdminSecret, log)
	menuSvc := service.NewMenuService(menuRepo, snapshot, log)
	orderSvc := service.NewOrderService(orderRepo, keys, log)
	reservationSvc := service.NewReservationService(reservationRepo, log)
	eventSvc := service.NewEventService(eventRepo, log)
	chatSvc := service.NewChatService(menuSvc, gen, cfg.Groq.Timeout, log)

	signals := queue.NewDispatcher(cfg.Chat.SignalWorkers, service.NewSignalLogger(log), log)
	workerCtx, stopWorkers := context.WithCancel(ctx)
	signals.Start(workerCtx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:          authSvc,
		Tokens:        tokens,
		Menu:          menuSvc,
		Orders:        orderSvc,
		Reservations:  reservationSvc,
		Events:        eventSvc,
		Chat:          chatSvc,
		Signals:       signals,
		Readiness:     readiness,
		Logger:        log,
		AllowOrigin:   cfg.ClientURL,
		ChatRateLimit: cfg.Chat.RateLimit,
		ChatRateBurst: cfg.Chat.RateBurst,
	})

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	waitForShutdown(log)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	stopWorkers()
	signals.Wait()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
	log.Info().Msg("server stopped")
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}
