package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/email"
	mongoadapter "github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/mongo"
	natsadapter "github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/nats"
	paymentadapter "github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/payment"
	redisadapter "github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/redis"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/app/config"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/auth"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/port/rest"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
	natsio "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App owns every process-wide resource: clients are opened once at
// startup, handed to the components that need them, and closed on
// shutdown. Nothing looks them up globally.
type App struct {
	cfg         *config.Config
	log         logger.Logger
	server      *rest.Server
	mongoClient *mongo.Client
	redisClient *redis.Client
	natsConn    *natsio.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s", cfg.Env, cfg.HTTPServer.Port)

	appLogger.Info("Initializing MongoDB client...")
	mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	db := mongoClient.Database(cfg.MongoDB.Database)
	appLogger.Info("MongoDB client initialized successfully")

	var redisClient *redis.Client
	var tokenCache service.TokenCache
	if cfg.Redis.Addr != "" {
		appLogger.Info("Initializing Redis client...")
		redisClient, err = redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		tokenCache = redisadapter.NewTokenCache(redisClient)
		appLogger.Info("Redis token cache initialized")
	} else {
		appLogger.Info("Redis address not configured, token cache disabled")
	}

	var natsConn *natsio.Conn
	var publisher natsadapter.MessagePublisher
	if cfg.NATS.URL != "" {
		appLogger.Info("Connecting to NATS...")
		natsConn, err = natsadapter.NewConnection(cfg.NATS)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		publisher, err = natsadapter.NewPublisher(natsConn)
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		appLogger.Info("NATS publisher initialized")
	} else {
		appLogger.Info("NATS URL not configured, event publishing disabled")
	}

	var mailer emailadapter.Sender
	if cfg.SMTP.Host != "" && cfg.SMTP.SenderEmail != "" {
		mailer, err = emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		appLogger.Info("SMTP receipt sender initialized")
	} else {
		appLogger.Info("SMTP not configured, payment receipts disabled")
	}

	userRepo := mongoadapter.NewUserRepository(db)
	categoryRepo := mongoadapter.NewCategoryRepository(db)
	productRepo := mongoadapter.NewProductRepository(db)
	bookingRepo := mongoadapter.NewBookingRepository(db)
	paymentRepo := mongoadapter.NewPaymentRepository(db)
	reportRepo := mongoadapter.NewReportRepository(db)

	tokens := auth.New(cfg.JWT.Secret, cfg.JWT.TTL)
	intents := paymentadapter.NewStripeIntentCreator(cfg.Stripe)

	userService := service.NewUserService(userRepo, tokens, tokenCache, appLogger)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, appLogger)
	bookingService := service.NewBookingService(bookingRepo, publisher, appLogger)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, productRepo, intents, publisher, mailer, appLogger)
	moderationService := service.NewModerationService(reportRepo, appLogger)

	handlers := rest.Handlers{
		Users:    rest.NewUserHandler(userService, appLogger),
		Catalog:  rest.NewCatalogHandler(catalogService, appLogger),
		Bookings: rest.NewBookingHandler(bookingService, appLogger),
		Payments: rest.NewPaymentHandler(paymentService, appLogger),
		Reports:  rest.NewReportHandler(moderationService, appLogger),
	}

	router := rest.NewRouter(handlers, cfg.HTTPServer.RequestTimeout, appLogger)
	server := rest.NewServer(appLogger, cfg.HTTPServer.Port, router)

	return &App{
		cfg:         cfg,
		log:         appLogger,
		server:      server,
		mongoClient: mongoClient,
		redisClient: redisClient,
		natsConn:    natsConn,
	}, nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped successfully")
	}

	a.log.Info("Closing external connections...")

	if a.natsConn != nil {
		a.natsConn.Close()
		a.log.Info("NATS connection closed")
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed successfully")
		}
	}

	a.log.Info("Application shut down successfully")
}
