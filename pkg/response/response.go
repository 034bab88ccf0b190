package response

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"reporting-srv/pkg/discord"
	"reporting-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data inside the standard envelope with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Forbidden aborts with 403.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   MessageForbidden,
	})
}

// Error writes err. HTTP errors and validation errors are returned as is, anything else
// becomes a 500 and is reported to Discord when d is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stdErrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var collector *errors.ValidationErrorCollector
	if stdErrors.As(err, &collector) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageValidation,
			Errors:    collector.Errors(),
		})
		return
	}

	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// ErrorWithMap looks err up in m before falling back to Error.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range m {
		if stdErrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError answers a recovered panic with 500 and reports the stack trace.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("panic on %s %s: %v\n%s",
			c.Request.Method, c.Request.URL.Path, err, debug.Stack()))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}
