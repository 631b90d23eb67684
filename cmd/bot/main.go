package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiethelp/internal/config"
	"quiethelp/internal/conversation"
	"quiethelp/internal/handler"
	"quiethelp/internal/repository"
	"quiethelp/internal/repository/file"
	"quiethelp/internal/repository/postgres"
	"quiethelp/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Quiet Help Bot", zap.String("storage", cfg.StorageDriver))

	// Initialize repositories
	profileRepo, sequenceRepo, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStore()

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		Client: &http.Client{Timeout: cfg.TransportTimeout},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Handler error", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize services
	profileService := service.NewProfileService(profileRepo, logger)
	sequenceService := service.NewSequenceService(sequenceRepo, logger)
	relayService := service.NewRelayService(handler.NewChannelBroadcaster(bot), cfg.ChannelID, logger)

	if next, err := sequenceService.Current(context.Background()); err != nil {
		logger.Fatal("Failed to read question counter", zap.Error(err))
	} else {
		logger.Info("Question counter loaded", zap.Int64("next", next))
	}

	engine := conversation.NewEngine(profileService, sequenceService, relayService, logger)

	// Initialize handler
	h := handler.NewHandler(bot, engine, logger, cfg.EventTimeout)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session sweeper in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSessionSweeper(ctx, engine, cfg.SessionTTL, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// openStore opens the configured profile and sequence repositories
func openStore(cfg *config.Config, logger *zap.Logger) (repository.ProfileRepository, repository.SequenceRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		profiles, err := file.NewProfileRepo(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, err
		}
		sequence, err := file.NewSequenceRepo(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("Using file storage", zap.String("dir", cfg.DataDir))
		return profiles, sequence, func() {}, nil

	default:
		// Connect to database with retries
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, nil, err
		}

		logger.Info("Database connection established")

		// Run migrations
		if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		logger.Info("Database migrations completed")

		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}
		return postgres.NewProfileRepo(db), postgres.NewSequenceRepo(db), closeDB, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, source string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runSessionSweeper periodically drops abandoned conversations
func runSessionSweeper(ctx context.Context, engine *conversation.Engine, ttl time.Duration, logger *zap.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			if removed := engine.Sweep(ttl); removed > 0 {
				logger.Info("Dropped stale sessions", zap.Int("count", removed))
			}
		}
	}
}
