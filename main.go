package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"club-booking/cmd"
	"club-booking/internal/data/cache"
	"club-booking/internal/data/repository"
	"club-booking/internal/events"
	"club-booking/internal/notify"
	"club-booking/internal/schedule"
	"club-booking/internal/usecase"
	"club-booking/internal/wire"
	"club-booking/pkg/database"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.MigrationsEnabled {
		if err := db.Migrate(ctx, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Migrations applied")
	}

	loc, err := time.LoadLocation(config.Schedule.Timezone)
	if err != nil {
		logger.Fatal("Invalid schedule timezone", zap.String("timezone", config.Schedule.Timezone), zap.Error(err))
	}

	deps := usecase.Deps{
		Subscriptions: cache.NewSubscriptionCache(),
		Catalog:       cache.NoopCatalog{},
		Searches:      cache.NewMemorySearches(),
		Publisher:     events.NoopPublisher{},
		Mailer:        notify.NewLogMailer(logger),
		Schedule:      schedule.Options{Location: loc, IncludeEndDay: config.Schedule.IncludeEndDay},
	}

	if config.Redis.URL != "" {
		rdb, err := database.ConnectRedis(ctx, config.Redis.URL)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			deps.Catalog = cache.NewRedisCatalog(rdb, config.Catalog.CacheTTL, logger)
			deps.Searches = cache.NewRedisSearches(rdb)
			logger.Info("Redis connected")
		}
	}

	if config.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(config.AMQP.URL, config.AMQP.Exchange)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			deps.Publisher = publisher
			logger.Info("RabbitMQ connected", zap.String("exchange", config.AMQP.Exchange))
		}
	}

	if config.Mail.PostmarkServerToken != "" {
		mailer, err := notify.NewPostmarkMailer(config.Mail.PostmarkServerToken, config.Mail.PostmarkAccountToken, config.Mail.Sender)
		if err != nil {
			logger.Fatal("Invalid mail configuration", zap.Error(err))
		}
		deps.Mailer = mailer
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, deps, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
