package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gamification-service/internal/config"
	cronpkg "gamification-service/internal/infrastructure/cron"
	infradb "gamification-service/internal/infrastructure/db"
	infrakafka "gamification-service/internal/infrastructure/kafka"
	"gamification-service/internal/infrastructure/postgres"
	infraredis "gamification-service/internal/infrastructure/redis"
	"gamification-service/internal/service"
	"gamification-service/internal/transport/grpc"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App represents the application
type App struct {
	config      *config.Config
	grpcServer  *grpc.Server
	scheduler   *cronpkg.Scheduler
	consumer    *infrakafka.Consumer
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
}

// New creates a new application
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Configuration loaded successfully")

	// Initialize PostgreSQL connection pool
	ctx := context.Background()
	dbPool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	fmt.Println("Connected to PostgreSQL")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	fmt.Println("Connected to Redis")

	// Initialize repositories
	habitRepo := postgres.NewHabitRepository(dbPool)
	completionRepo := postgres.NewHabitCompletionRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	badgeRepo := postgres.NewBadgeRepository(dbPool)
	challengeRepo := postgres.NewDailyChallengeRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// Initialize services
	gamificationService := service.NewGamificationService(
		habitRepo, completionRepo, userRepo, badgeRepo, challengeRepo, notificationRepo,
	)
	fmt.Println("Services initialized")

	// Initialize scheduler (if enabled)
	var scheduler *cronpkg.Scheduler
	if cfg.Scheduler.Enabled {
		reminderGuard := infraredis.NewReminderGuard(redisClient)
		scheduler = cronpkg.NewScheduler(
			gamificationService,
			reminderGuard,
			cfg.Scheduler.ChallengeCron,
			cfg.Scheduler.ReminderCron,
		)
		fmt.Println("Scheduler initialized")
	} else {
		fmt.Println("Scheduler is disabled in configuration")
	}

	// Initialize Kafka consumer
	consumer := infrakafka.NewConsumer(&cfg.Kafka, gamificationService)

	// Initialize gRPC server (health endpoint)
	grpcServer := grpc.NewServer(cfg.GRPC.Port)

	return &App{
		config:      cfg,
		grpcServer:  grpcServer,
		scheduler:   scheduler,
		consumer:    consumer,
		dbPool:      dbPool,
		redisClient: redisClient,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	// Setup signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start scheduler if enabled
	if a.scheduler != nil {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
	}

	// Start Kafka consumer in a goroutine
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	go func() {
		if err := a.consumer.Start(consumerCtx); err != nil {
			fmt.Printf("Kafka consumer error: %v\n", err)
		}
	}()

	// Start gRPC server in a goroutine
	go func() {
		if err := a.grpcServer.Start(); err != nil {
			fmt.Printf("gRPC server error: %v\n", err)
			quit <- syscall.SIGTERM
		}
	}()

	fmt.Printf("%s service started on port %d\n", a.config.Service.Name, a.config.GRPC.Port)
	fmt.Println("Press Ctrl+C to shutdown...")

	// Wait for interrupt signal
	<-quit
	fmt.Println("\nShutting down server...")

	// Graceful shutdown
	a.grpcServer.Stop()

	cancelConsumer()

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if err := a.redisClient.Close(); err != nil {
		fmt.Printf("Error closing Redis client: %v\n", err)
	}

	a.dbPool.Close()

	fmt.Println("Server shutdown complete")
	return nil
}
