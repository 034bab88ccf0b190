package http

import (
	"reporting-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.GET("", h.ListReports)
		api.GET("/:report_name", h.RunReport)
	}

	internal := r.Group("/internal/v1/reports")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/cache/evict", h.EvictCaches)
	}
}
