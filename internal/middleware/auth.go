package middleware

import (
	"strings"

	"reporting-srv/pkg/response"
	"reporting-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Priority 1: Authorization header, "Bearer <token>" or plain token
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), bearerPrefix)

		// Priority 2: auth cookie
		if tokenString == "" {
			var err error
			tokenString, err = c.Cookie(m.cookieConfig.Name)
			if err != nil || tokenString == "" {
				response.Unauthorized(c)
				return
			}
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: verify token failed: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
