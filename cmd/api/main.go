package main

import (
	"context"
	"fmt"
	"time"

	"reporting-srv/config"
	configKafka "reporting-srv/config/kafka"
	configMinIO "reporting-srv/config/minio"
	configPostgre "reporting-srv/config/postgre"
	configRabbitMQ "reporting-srv/config/rabbitmq"
	configRedis "reporting-srv/config/redis"
	_ "reporting-srv/docs" // Import swagger docs
	"reporting-srv/internal/httpserver"
	"reporting-srv/internal/report"
	reportKafkaProducer "reporting-srv/internal/report/delivery/kafka/producer"
	reportRabbitProducer "reporting-srv/internal/report/delivery/rabbitmq/producer"
	"reporting-srv/migrations"
	"reporting-srv/pkg/discord"
	"reporting-srv/pkg/encrypter"
	pkgJWT "reporting-srv/pkg/jwt"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/minio"
	"reporting-srv/pkg/pentaho"
)

// @title       Reporting Service API
// @description Runs stretchy reports as JSON, CSV or XLSX and dispatches Pentaho reports.
// @version     1
// @host        reporting-srv.tantai.dev
// @schemes     https
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name mifos_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
//
// @securityDefinitions.apikey ServiceKey
// @in header
// @name X-Service-Key
// @description Encrypted service key for internal endpoints.
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.AutoMigrate {
		if err := migrations.Up(ctx, postgresDB); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize Pentaho client
	pentahoClient, err := pentaho.New(pentaho.Config{
		URL:          cfg.Pentaho.URL,
		Username:     cfg.Pentaho.Username,
		Password:     cfg.Pentaho.Password,
		SolutionPath: cfg.Pentaho.SolutionPath,
		Timeout:      time.Duration(cfg.Pentaho.Timeout) * time.Second,
	}, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Pentaho client: ", err)
		return
	}
	logger.Infof(ctx, "Pentaho client initialized for %s", cfg.Pentaho.URL)

	// 8. Initialize MinIO (only when Pentaho documents are archived)
	var minioClient minio.MinIO
	if cfg.Pentaho.ArchiveEnabled {
		minioClient, err = configMinIO.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer configMinIO.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 9. Initialize report run publisher
	publisher, closePublisher, err := initializePublisher(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize events publisher: ", err)
		return
	}
	defer closePublisher()

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Reporting backends
		Pentaho:   pentahoClient,
		MinIO:     minioClient,
		Publisher: publisher,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializePublisher builds the report run publisher for the configured events backend.
// A nil publisher disables run events.
func initializePublisher(ctx context.Context, logger log.Logger, cfg *config.Config) (report.Publisher, func(), error) {
	switch cfg.Events.Backend {
	case config.EventsBackendKafka:
		producer, err := configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
		return reportKafkaProducer.New(logger, producer), func() {
			if err := configKafka.DisconnectProducer(); err != nil {
				logger.Warnf(ctx, "Failed to close Kafka producer: %v", err)
			}
		}, nil

	case config.EventsBackendRabbitMQ:
		conn, err := configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			return nil, func() {}, err
		}
		producer, err := reportRabbitProducer.New(logger, conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			configRabbitMQ.Disconnect()
			return nil, func() {}, err
		}
		logger.Infof(ctx, "RabbitMQ publisher ready on exchange %s", cfg.RabbitMQ.Exchange)
		return producer, func() {
			if err := producer.Close(); err != nil {
				logger.Warnf(ctx, "Failed to close RabbitMQ channel: %v", err)
			}
			configRabbitMQ.Disconnect()
		}, nil

	default:
		logger.Info(ctx, "Report run events disabled")
		return nil, func() {}, nil
	}
}
