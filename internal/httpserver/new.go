package httpserver

import (
	"database/sql"
	"errors"

	"reporting-srv/config"
	"reporting-srv/internal/appuser"
	"reporting-srv/internal/report"
	"reporting-srv/internal/reporting"
	"reporting-srv/pkg/discord"
	"reporting-srv/pkg/encrypter"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/minio"
	"reporting-srv/pkg/pentaho"
	pkgRedis "reporting-srv/pkg/redis"
	"reporting-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Reporting backends
	pentahoClient pentaho.IPentaho
	minioClient   minio.MinIO
	publisher     report.Publisher

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Core usecases shared by domains
	appUserUC   appuser.UseCase
	reportingUC reporting.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Reporting backends. MinIO and Publisher are optional.
	Pentaho   pentaho.IPentaho
	MinIO     minio.MinIO
	Publisher report.Publisher

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		pentahoClient: cfg.Pentaho,
		minioClient:   cfg.MinIO,
		publisher:     cfg.Publisher,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.pentahoClient == nil {
		return errors.New("pentahoClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// discord, minio and publisher are optional
	return nil
}
