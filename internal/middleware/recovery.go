package middleware

import (
	"reporting-srv/pkg/discord"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and reports it to Discord when configured.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "middleware.Recovery: panic recovered: %v | %s %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
