// launching the server, postgres, mongo, redis cache and notification queue
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/club-events/config"
	"github.com/ds124wfegd/club-events/internal/database"
	mongorepo "github.com/ds124wfegd/club-events/internal/database/mongo"
	repository "github.com/ds124wfegd/club-events/internal/database/postgres"
	rediscache "github.com/ds124wfegd/club-events/internal/database/redis"
	"github.com/ds124wfegd/club-events/internal/service"
	"github.com/ds124wfegd/club-events/internal/transport"
	"github.com/ds124wfegd/club-events/internal/validation"
	"github.com/ds124wfegd/club-events/internal/worker"

	"github.com/ds124wfegd/club-events/pkg/mongo"
	"github.com/ds124wfegd/club-events/pkg/postgres"
	"github.com/ds124wfegd/club-events/pkg/rabbitMQ"
	"github.com/ds124wfegd/club-events/pkg/redis"
	"github.com/ds124wfegd/club-events/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Unknown log level %q, using info", cfg.Log.Level)
		logrus.SetLevel(logrus.InfoLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize databases
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	mongoClient, err := mongo.NewMongoClient(ctx, &cfg.Mongo)
	if err != nil {
		logrus.Fatalf("Failed to initialize MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	checks := map[string]transport.HealthCheck{
		"postgres": db.PingContext,
		"mongo": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	orderRepo := mongorepo.NewMerchOrderRepository(mongoClient.Database(cfg.Mongo.Database))

	var eventCache database.EventCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			logrus.Errorf("Failed to initialize Redis: %v. Continuing without event cache...", err)
		} else {
			defer redisClient.Close()
			eventCache = rediscache.NewEventCache(redisClient, cfg.Redis.CacheTTL)
			checks["redis"] = func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}
			logrus.Info("Event cache initialized")
		}
	}

	// Initialize notifications
	var notifier service.Notifier
	if cfg.RabbitMQ.URL != "" {
		queue, err := rabbitMQ.NewRabbitMQ(rabbitMQ.RabbitMQConfig{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		})
		if err != nil {
			logrus.Errorf("Failed to connect to RabbitMQ: %v. Continuing without notifications...", err)
		} else {
			defer queue.Close()
			notifier = service.NewQueueNotifier(queue)
			checks["rabbitmq"] = func(context.Context) error { return queue.HealthCheck() }

			startNotificationWorker(ctx, cfg, queue)
		}
	} else {
		logrus.Warn("RabbitMQ URL not provided, notifications disabled")
	}

	// Initialize services
	validator := validation.New()

	eventService := service.NewEventService(eventRepo, eventCache, validator, time.Now)
	registrationService := service.NewRegistrationService(eventRepo, participantRepo, validator, notifier, time.Now)
	merchService := service.NewMerchService(orderRepo, validator, notifier, cfg.Merch.BasePrice, cfg.Merch.ServiceCharge, time.Now)
	participantService := service.NewParticipantService(eventRepo, participantRepo)
	authService := service.NewAuthService(cfg.Admin.Password, cfg.Admin.SessionSecret, cfg.Admin.SessionTTL, time.Now)

	// Initialize handlers
	eventHandler := transport.NewEventHandler(eventService, time.Now)
	registrationHandler := transport.NewRegistrationHandler(registrationService)
	merchHandler := transport.NewMerchHandler(merchService)
	adminHandler := transport.NewAdminHandler(authService, participantService, cfg.IsProduction())
	healthHandler := transport.NewHealthHandler(cfg.Server.AppVersion, checks)

	if cfg.IsProduction() || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := transport.InitRoutes(
		eventHandler,
		registrationHandler,
		merchHandler,
		adminHandler,
		healthHandler,
		authService,
		cfg.Server.RequestTimeout,
	)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithField("addr", cfg.GetServerAddress()).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}

func startNotificationWorker(ctx context.Context, cfg *config.Config, queue rabbitMQ.Queue) {
	var sender worker.MessageSender
	if cfg.Telegram.BotToken != "" {
		bot, err := telegram.NewBot(cfg.Telegram.BotToken)
		if err != nil {
			logrus.Errorf("Failed to initialize Telegram bot: %v. Notifications will only be logged", err)
		} else {
			sender = bot
			logrus.Info("Telegram bot initialized")
		}
	} else {
		logrus.Warn("Telegram bot token not provided, notifications will only be logged")
	}

	notificationWorker := worker.NewNotificationWorker(queue, sender, cfg.Telegram.ChatID)
	if err := notificationWorker.Start(ctx); err != nil {
		logrus.Errorf("Notification worker error: %v", err)
	}
}
