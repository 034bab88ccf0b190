package middleware

import (
	"crypto/subtle"
	"strings"

	"reporting-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ServiceKeyHeader  = "X-Service-Key"
	ServiceNameCtxKey = "service_name"
)

// ServiceAuth validates the X-Service-Key header for internal service-to-service calls.
// The header carries encrypt("<serviceName>:<key>") and the key must match internal.service_keys.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		serviceKey := c.GetHeader(ServiceKeyHeader)
		if serviceKey == "" {
			response.Unauthorized(c)
			return
		}

		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Errorf(ctx, "middleware.ServiceAuth: decrypt failed: %v", err)
			response.Unauthorized(c)
			return
		}

		serviceName, keyValue, ok := strings.Cut(decryptedKey, ":")
		if !ok {
			m.l.Errorf(ctx, "middleware.ServiceAuth: invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			return
		}

		configuredKey, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Errorf(ctx, "middleware.ServiceAuth: service not found: %s", serviceName)
			response.Unauthorized(c)
			return
		}

		// do not log key values
		if subtle.ConstantTimeCompare([]byte(keyValue), []byte(configuredKey)) != 1 {
			m.l.Errorf(ctx, "middleware.ServiceAuth: key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			return
		}

		c.Set(ServiceNameCtxKey, serviceName)
		c.Next()
	}
}
