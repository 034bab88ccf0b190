package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			Issuer:    "mifos-auth-service",
			Audience:  []string{"reporting-srv"},
			SecretKey: "0123456789abcdef0123456789abcdef",
			TTL:       3600,
		},
		Encrypter: EncrypterConfig{Key: "0123456789abcdef0123456789abcdef"},
		Postgres:  PostgresConfig{Host: "localhost", Port: 5432, DBName: "mifos", User: "postgres"},
		Redis:     RedisConfig{Host: "localhost", Port: 6379},
		Pentaho:   PentahoConfig{URL: "http://pentaho:8080/pentaho"},
		Events:    EventsConfig{Backend: EventsBackendNone},
		Cookie:    CookieConfig{Name: "mifos_auth_token"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "short jwt secret", mutate: func(c *Config) { c.JWT.SecretKey = "short" }, wantErr: "jwt.secret_key"},
		{name: "bad encrypter key", mutate: func(c *Config) { c.Encrypter.Key = "0123456789" }, wantErr: "encrypter.key"},
		{name: "missing pentaho url", mutate: func(c *Config) { c.Pentaho.URL = "" }, wantErr: "pentaho.url"},
		{name: "archive needs minio", mutate: func(c *Config) { c.Pentaho.ArchiveEnabled = true }, wantErr: "minio.endpoint"},
		{name: "kafka needs brokers", mutate: func(c *Config) { c.Events.Backend = EventsBackendKafka }, wantErr: "kafka.brokers"},
		{name: "rabbitmq needs url", mutate: func(c *Config) { c.Events.Backend = EventsBackendRabbitMQ }, wantErr: "rabbitmq.url"},
		{name: "unknown backend", mutate: func(c *Config) { c.Events.Backend = "nats" }, wantErr: "events.backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
