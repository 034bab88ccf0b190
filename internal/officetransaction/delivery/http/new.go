package http

import (
	"reporting-srv/internal/middleware"
	"reporting-srv/internal/officetransaction"
	"reporting-srv/pkg/discord"
	"reporting-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      officetransaction.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc officetransaction.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
